// Package crc computes seeded CRC-32 checksums using table driven reflected
// polynomials.
//
// A checksum starts from an all-ones register. A non-zero seed is folded in
// first, least significant byte first, so identical buffers used in
// different contexts produce different checksums. A zero seed folds nothing.
package crc

import (
	"strconv"

	"github.com/kezhuw/seedcrc/internal/endian"
)

const initial = 0xffffffff

// CRC is a running checksum bound to its table.
type CRC struct {
	// Saved as a field to avoid accidentally cast.
	register uint32
	table    *Table
}

// New starts a checksum using tab, folding seed into it unless seed is zero.
func New(tab *Table, seed uint32) CRC {
	c := CRC{register: initial, table: tab}
	if seed != 0 {
		b := endian.SeedBytes(seed)
		c.register = update(c.register, tab, b[:])
	}
	return c
}

// Update updates checksum using given bytes.
func Update(c CRC, b []byte) CRC {
	return CRC{update(c.register, c.table, b), c.table}
}

// Register returns the accumulator before final inversion.
func (c CRC) Register() uint32 {
	return c.register
}

// Value returns the finalized checksum.
func (c CRC) Value() uint32 {
	return c.register ^ initial
}

// String implements fmt.Stringer.
func (c CRC) String() string {
	return strconv.FormatUint(uint64(c.Value()), 10)
}

// Checksum returns the finalized checksum of b under tab and seed.
func Checksum(tab *Table, b []byte, seed uint32) uint32 {
	return Update(New(tab, seed), b).Value()
}
