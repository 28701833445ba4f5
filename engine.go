package seedcrc

import (
	"github.com/kezhuw/seedcrc/internal/crc"
)

// Engine computes checksums with a fixed polynomial and default seed.
// An Engine is safe for concurrent use.
type Engine struct {
	poly   uint32
	seed   uint32
	table  *crc.Table
	logger Logger
}

// NewEngine creates an Engine from opts. A nil opts selects the IEEE
// polynomial with no seed and no logging.
func NewEngine(opts *Options) *Engine {
	iopts := convertOptions(opts)
	e := &Engine{poly: iopts.Polynomial, seed: iopts.Seed, table: iopts.Table}
	if iopts.Logger != DiscardLogger {
		e.logger = iopts.Logger
	}
	return e
}

// Polynomial returns the polynomial of this engine.
func (e *Engine) Polynomial() uint32 {
	return e.poly
}

// Seed returns the default seed of this engine.
func (e *Engine) Seed() uint32 {
	return e.seed
}

// Checksum returns the checksum of the first size bytes of data under the
// engine's default seed.
func (e *Engine) Checksum(data []byte, size uint32) (uint32, error) {
	return checksum(e.table, data, size, e.seed, e.logger)
}

// ChecksumSeed is like Checksum, but uses seed in place of the default.
func (e *Engine) ChecksumSeed(data []byte, size uint32, seed uint32) (uint32, error) {
	return checksum(e.table, data, size, seed, e.logger)
}

// Sum returns the checksum of data under the engine's default seed.
func (e *Engine) Sum(data []byte) uint32 {
	return sum(e.table, data, e.seed, e.logger)
}

// SumSeed returns the checksum of data under seed.
func (e *Engine) SumSeed(data []byte, seed uint32) uint32 {
	return sum(e.table, data, seed, e.logger)
}
