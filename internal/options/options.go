package options

import (
	"github.com/kezhuw/seedcrc/internal/compress"
	"github.com/kezhuw/seedcrc/internal/crc"
	"github.com/kezhuw/seedcrc/internal/logger"
	"github.com/kezhuw/seedcrc/internal/record"
)

const (
	DefaultPolynomial    = crc.IEEE
	DefaultCompression   = compress.NoCompression
	DefaultMaxRecordSize = record.DefaultMaxSize
)

type Options struct {
	Polynomial    uint32
	Table         *crc.Table
	Seed          uint32
	Compression   compress.Type
	MaxRecordSize int
	Logger        logger.Logger
}

// Channel returns the record channel selected by opts.
func (opts *Options) Channel() record.Channel {
	return record.Channel{Table: opts.Table, Seed: opts.Seed}
}

var DefaultOptions = Options{
	Polynomial:    DefaultPolynomial,
	Table:         crc.LookupTable(DefaultPolynomial),
	Compression:   DefaultCompression,
	MaxRecordSize: DefaultMaxRecordSize,
	Logger:        logger.Discard,
}
