package seedcrc

import (
	"github.com/kezhuw/seedcrc/internal/compress"
	"github.com/kezhuw/seedcrc/internal/crc"
	"github.com/kezhuw/seedcrc/internal/options"
)

// CompressionType defines compression methods to compress a record payload.
type CompressionType int

const (
	DefaultCompression CompressionType = iota // Points to NoCompression
	NoCompression
	SnappyCompression
	ZstdCompression
)

// Options contains options controlling checksums and records.
type Options struct {
	// Polynomial is the generator polynomial in reflected form.
	//
	// The default value is IEEE. A zero Polynomial selects the default; call
	// Checksum directly to use the zero polynomial.
	Polynomial uint32

	// Seed is folded into every checksum before the data. Zero means no seed.
	//
	// Writers and readers of a record stream must agree on Polynomial and Seed.
	//
	// The default value is 0.
	Seed uint32

	// Compression type used to compress record payloads.
	//
	// The default value points to NoCompression.
	Compression CompressionType

	// MaxRecordSize is the largest record payload in bytes, before and after
	// compression. Writers reject larger payloads; readers treat larger
	// lengths as corruption.
	//
	// The default value is 32MiB.
	MaxRecordSize int

	// Logger receives trace of checksum register values at debug level and
	// record corruption at warn level.
	//
	// The default value is DiscardLogger.
	Logger Logger
}

func (opts *Options) getPolynomial() uint32 {
	if opts.Polynomial == 0 {
		return options.DefaultPolynomial
	}
	return opts.Polynomial
}

func (opts *Options) getCompression() compress.Type {
	switch opts.Compression {
	case NoCompression:
		return compress.NoCompression
	case SnappyCompression:
		return compress.SnappyCompression
	case ZstdCompression:
		return compress.ZstdCompression
	}
	return options.DefaultCompression
}

func (opts *Options) getMaxRecordSize() int {
	if opts.MaxRecordSize <= 0 {
		return options.DefaultMaxRecordSize
	}
	return opts.MaxRecordSize
}

func (opts *Options) getLogger() Logger {
	if opts.Logger == nil {
		return DiscardLogger
	}
	return opts.Logger
}

func convertOptions(opts *Options) *options.Options {
	if opts == nil {
		return &options.DefaultOptions
	}
	var iopts options.Options
	iopts.Polynomial = opts.getPolynomial()
	iopts.Table = crc.LookupTable(iopts.Polynomial)
	iopts.Seed = opts.Seed
	iopts.Compression = opts.getCompression()
	iopts.MaxRecordSize = opts.getMaxRecordSize()
	iopts.Logger = opts.getLogger()
	return &iopts
}
