// Package record frames payloads on a stream, each tagged with a checksum
// that only verifies under the channel it was written for.
//
// Record layout, little-endian:
//
//	checksum uint32 | length uint32 | compression uint8 | payload [length]byte
//
// The checksum covers the compression byte followed by the stored payload and
// starts from the channel's seed.
package record

import (
	"github.com/kezhuw/seedcrc/internal/compress"
	"github.com/kezhuw/seedcrc/internal/crc"
)

const (
	headerSize     = 9 // bytes
	numCompression = 3

	// DefaultMaxSize bounds the stored and the decoded length of a record.
	DefaultMaxSize = 32 * 1024 * 1024 // 32MiB
)

type header [headerSize]byte

// Channel selects the polynomial table and seed records are checksummed with.
type Channel struct {
	Table *crc.Table
	Seed  uint32
}

// typeChecksums returns the running checksums after folding the seed and
// each compression byte.
func (ch Channel) typeChecksums() (sums [numCompression]crc.CRC) {
	var buf [1]byte
	for i := range sums {
		buf[0] = byte(i)
		sums[i] = crc.Update(crc.New(ch.Table, ch.Seed), buf[:])
	}
	return sums
}

func validType(typ compress.Type) bool {
	return int(typ) < numCompression
}
