package crc

import (
	"hash/crc32"
	"math/rand"
	"testing"

	"github.com/kezhuw/seedcrc/internal/endian"
	"github.com/stretchr/testify/suite"
)

type CRCTestSuite struct {
	poly  uint32
	table *Table

	suite.Suite
}

var _ suite.SetupAllSuite = (*CRCTestSuite)(nil)

func (suite *CRCTestSuite) SetupSuite() {
	suite.table = MakeTable(suite.poly)
}

func (suite *CRCTestSuite) TestMatchesStandardLibrary() {
	require := suite.Require()
	std := crc32.MakeTable(suite.poly)
	r := rand.New(rand.NewSource(int64(suite.poly)))
	for _, n := range []int{0, 1, 3, 4, 7, 64, 1000, 4096} {
		buf := make([]byte, n)
		r.Read(buf)
		require.Equal(crc32.Checksum(buf, std), Checksum(suite.table, buf, 0), "length %d", n)
	}
}

func (suite *CRCTestSuite) TestEmptyBuffer() {
	require := suite.Require()
	require.Equal(uint32(0), Checksum(suite.table, nil, 0))
	require.Equal(uint32(0), Checksum(suite.table, []byte{}, 0))
}

func (suite *CRCTestSuite) TestZeroSeedFoldsNothing() {
	require := suite.Require()
	buf := []byte("configuration payload")
	unseeded := CRC{register: initial, table: suite.table}
	require.Equal(unseeded, New(suite.table, 0))
	require.Equal(Update(unseeded, buf).Value(), Checksum(suite.table, buf, 0))
}

func (suite *CRCTestSuite) TestSeedIsLittleEndianPrefix() {
	require := suite.Require()
	buf := []byte("configuration payload")
	for _, seed := range []uint32{1, 0x12345678, 0xffffffff, 0x80000000} {
		prefix := endian.SeedBytes(seed)
		prefixed := append(prefix[:], buf...)
		want := Update(CRC{register: initial, table: suite.table}, prefixed).Value()
		require.Equal(want, Checksum(suite.table, buf, seed), "seed %#x", seed)
	}
}

func (suite *CRCTestSuite) TestSeedSensitivity() {
	require := suite.Require()
	buf := []byte("123456789")
	pairs := [][2]uint32{{1, 2}, {0xdeadbeef, 0xcafebabe}, {0x00000100, 0x00010000}}
	for _, p := range pairs {
		require.NotEqual(Checksum(suite.table, buf, p[0]), Checksum(suite.table, buf, p[1]), "seeds %#x %#x", p[0], p[1])
	}
	require.NotEqual(Checksum(suite.table, buf, 0), Checksum(suite.table, buf, 1))
}

func (suite *CRCTestSuite) TestIncrementalUpdate() {
	require := suite.Require()
	buf := []byte("the quick brown fox jumps over the lazy dog")
	c := New(suite.table, 0x5eed)
	for i := 0; i < len(buf); i += 5 {
		end := i + 5
		if end > len(buf) {
			end = len(buf)
		}
		c = Update(c, buf[i:end])
	}
	require.Equal(Checksum(suite.table, buf, 0x5eed), c.Value())
	require.Equal(c.Register()^initial, c.Value())
}

func (suite *CRCTestSuite) TestDeterministic() {
	require := suite.Require()
	buf := []byte("repeat me")
	first := Checksum(suite.table, buf, 7)
	for i := 0; i < 10; i++ {
		require.Equal(first, Checksum(suite.table, buf, 7))
	}
}

func (suite *CRCTestSuite) TestTableIndependence() {
	require := suite.Require()
	other := MakeTable(suite.poly)
	require.False(other == suite.table)
	require.Equal(*suite.table, *other)
	buf := []byte("independent tables")
	require.Equal(Checksum(suite.table, buf, 99), Checksum(other, buf, 99))
	require.Equal(*suite.table, *LookupTable(suite.poly))
}

func TestCRCIEEE(t *testing.T) {
	suite.Run(t, &CRCTestSuite{poly: IEEE})
}

func TestCRCCastagnoli(t *testing.T) {
	suite.Run(t, &CRCTestSuite{poly: Castagnoli})
}

func TestCRCKoopman(t *testing.T) {
	suite.Run(t, &CRCTestSuite{poly: Koopman})
}

func TestCRCArbitraryPolynomial(t *testing.T) {
	suite.Run(t, &CRCTestSuite{poly: 0xa833982b})
}

type vector struct {
	poly  uint32
	input string
	seed  uint32
	sum   uint32
}

var vectors = []vector{
	{poly: IEEE, input: "123456789", sum: 0xcbf43926},
	{poly: Castagnoli, input: "123456789", sum: 0xe3069283},
	{poly: Koopman, input: "123456789", sum: 0x2d3dd0ae},
	{poly: IEEE, input: "", sum: 0},
	{poly: IEEE, input: "a", sum: 0xe8b7be43},
}

func TestKnownVectors(t *testing.T) {
	for i, v := range vectors {
		got := Checksum(LookupTable(v.poly), []byte(v.input), v.seed)
		if got != v.sum {
			t.Errorf("test=%d poly=%#x input=%q: got %#08x, want %#08x", i, v.poly, v.input, got, v.sum)
		}
	}
}

func TestString(t *testing.T) {
	c := Update(New(LookupTable(IEEE), 0), []byte("123456789"))
	if got, want := c.String(), "3421780262"; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func BenchmarkChecksum(b *testing.B) {
	tab := LookupTable(IEEE)
	buf := make([]byte, 4096)
	rand.Read(buf)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Checksum(tab, buf, 0x1234)
	}
}

func BenchmarkMakeTable(b *testing.B) {
	for i := 0; i < b.N; i++ {
		MakeTable(IEEE)
	}
}
