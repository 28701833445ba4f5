package endian_test

import (
	"testing"

	"github.com/kezhuw/seedcrc/internal/endian"
	"github.com/stretchr/testify/require"
)

func TestSeedBytes(t *testing.T) {
	require.Equal(t, [4]byte{0x78, 0x56, 0x34, 0x12}, endian.SeedBytes(0x12345678))
	require.Equal(t, [4]byte{}, endian.SeedBytes(0))
	require.Equal(t, [4]byte{0xff, 0, 0, 0}, endian.SeedBytes(0xff))
}

func TestUint32RoundTrip(t *testing.T) {
	var b [4]byte
	endian.PutUint32(b[:], 0xdeadbeef)
	require.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, b[:])
	require.Equal(t, uint32(0xdeadbeef), endian.Uint32(b[:]))
}
