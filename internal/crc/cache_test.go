package crc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCachePredefined(t *testing.T) {
	c, err := NewCache(4)
	require.NoError(t, err)
	defer c.Close()

	for _, poly := range []uint32{IEEE, Castagnoli, Koopman} {
		require.True(t, c.Table(poly) == predefined[poly])
		require.True(t, c.Table(poly) == LookupTable(poly))
	}
}

func TestCacheBuildsEqualTables(t *testing.T) {
	c, err := NewCache(0)
	require.NoError(t, err)
	defer c.Close()

	polys := []uint32{1, 0x8408, 0xa833982b, 0xd5828281, 0xffffffff}
	for _, poly := range polys {
		for i := 0; i < 3; i++ {
			require.Equal(t, *MakeTable(poly), *c.Table(poly), "poly %#x", poly)
		}
	}
}

func TestCacheConcurrentReaders(t *testing.T) {
	c, err := NewCache(2)
	require.NoError(t, err)
	defer c.Close()

	buf := []byte("shared across goroutines")
	want := make(map[uint32]uint32)
	polys := []uint32{IEEE, 0x8408, 0xa833982b, 0xd5828281}
	for _, poly := range polys {
		want[poly] = Checksum(MakeTable(poly), buf, 3)
	}

	var wg sync.WaitGroup
	errs := make(chan uint32, 64)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				poly := polys[(i+j)%len(polys)]
				if Checksum(c.Table(poly), buf, 3) != want[poly] {
					errs <- poly
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for poly := range errs {
		t.Errorf("mismatched checksum for poly %#x", poly)
	}
}
