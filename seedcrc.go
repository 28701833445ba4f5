// Package seedcrc computes CRC-32 checksums over caller chosen polynomials.
//
// A checksum may be seeded: a non-zero seed is folded into the register,
// least significant byte first, before the data, so the same buffer tagged
// for different channels or purposes yields different checksums. A zero seed
// is not folded at all; with seed zero and the IEEE polynomial the result is
// the standard CRC-32 as computed by hash/crc32.
//
// Tables are a pure function of the polynomial. They are built once and
// shared; a table is never modified after it is published, so every function
// in this package is safe for concurrent use.
package seedcrc

import (
	"github.com/kezhuw/seedcrc/internal/crc"
	"github.com/kezhuw/seedcrc/internal/errors"
)

// Predefined polynomials in reflected form.
const (
	IEEE       = crc.IEEE
	Castagnoli = crc.Castagnoli
	Koopman    = crc.Koopman
)

// Size is the size of a checksum in bytes.
const Size = 4

// Table is a 256-word table for a polynomial.
type Table = crc.Table

// MakeTable returns a freshly built Table for poly.
func MakeTable(poly uint32) *Table {
	return crc.MakeTable(poly)
}

// Checksum returns the checksum of the first size bytes of data using poly and
// seed. It fails with a *LengthError matching ErrInvalidLength if size is
// larger than len(data); no byte beyond len(data) is read.
func Checksum(poly uint32, data []byte, size uint32, seed uint32) (uint32, error) {
	return checksum(crc.LookupTable(poly), data, size, seed, nil)
}

// Sum returns the checksum of data using poly and seed.
func Sum(poly uint32, data []byte, seed uint32) uint32 {
	return crc.Checksum(crc.LookupTable(poly), data, seed)
}

// ChecksumTable returns the checksum of data using tab and seed.
func ChecksumTable(tab *Table, data []byte, seed uint32) uint32 {
	return crc.Checksum(tab, data, seed)
}

func checksum(tab *crc.Table, data []byte, size uint32, seed uint32, log Logger) (uint32, error) {
	if uint64(size) > uint64(len(data)) {
		return 0, errors.NewLength(size, len(data))
	}
	return sum(tab, data[:size], seed, log), nil
}

func sum(tab *crc.Table, data []byte, seed uint32, log Logger) uint32 {
	c := crc.Update(crc.New(tab, seed), data)
	if log != nil {
		log.Debugf("seedcrc: precheck %d", c.Register())
		log.Debugf("seedcrc: postcheck %d", c.Value())
	}
	return c.Value()
}
