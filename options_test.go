package seedcrc

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/kezhuw/seedcrc/internal/compress"
	"github.com/kezhuw/seedcrc/internal/crc"
	"github.com/kezhuw/seedcrc/internal/logger"
	"github.com/kezhuw/seedcrc/internal/options"
)

type bufferLogger struct {
	buf *bytes.Buffer
}

func (l *bufferLogger) Debugf(format string, args ...interface{}) {
	l.buf.WriteString(fmt.Sprintf("debug: "+format+"\n", args...))
}

func (l *bufferLogger) Infof(format string, args ...interface{}) {
	l.buf.WriteString(fmt.Sprintf("info: "+format+"\n", args...))
}

func (l *bufferLogger) Warnf(format string, args ...interface{}) {
	l.buf.WriteString(fmt.Sprintf("warn: "+format+"\n", args...))
}

func (l *bufferLogger) Errorf(format string, args ...interface{}) {
	l.buf.WriteString(fmt.Sprintf("error: "+format+"\n", args...))
}

func newBufferLogger(buf *bytes.Buffer) Logger {
	return &bufferLogger{buf: buf}
}

func matchLogger(l logger.Logger, buf *bytes.Buffer) bool {
	if buf == nil {
		return l == DiscardLogger
	}
	buf.Reset()
	l.Debugf("logging %s", "matching")
	return buf.String() == "debug: logging matching\n"
}

type optionsTest struct {
	options       *Options
	polynomial    uint32
	seed          uint32
	compression   compress.Type
	maxRecordSize int
	loggerBuffer  *bytes.Buffer
}

var loggerBuffer = new(bytes.Buffer)

var optionsTests = []optionsTest{
	{
		polynomial:    options.DefaultPolynomial,
		compression:   options.DefaultCompression,
		maxRecordSize: options.DefaultMaxRecordSize,
	},
	{
		options:       &Options{},
		polynomial:    IEEE,
		compression:   compress.NoCompression,
		maxRecordSize: options.DefaultMaxRecordSize,
	},
	{
		options: &Options{
			Polynomial:    Castagnoli,
			Seed:          0xabcdef,
			Compression:   SnappyCompression,
			MaxRecordSize: 4096,
			Logger:        newBufferLogger(loggerBuffer),
		},
		polynomial:    Castagnoli,
		seed:          0xabcdef,
		compression:   compress.SnappyCompression,
		maxRecordSize: 4096,
		loggerBuffer:  loggerBuffer,
	},
	{
		options: &Options{
			Polynomial:    0xa833982b,
			Compression:   ZstdCompression,
			MaxRecordSize: -1,
		},
		polynomial:    0xa833982b,
		compression:   compress.ZstdCompression,
		maxRecordSize: options.DefaultMaxRecordSize,
	},
	{
		options:       &Options{Compression: CompressionType(99)},
		polynomial:    IEEE,
		compression:   options.DefaultCompression,
		maxRecordSize: options.DefaultMaxRecordSize,
	},
}

func TestConvertOptions(t *testing.T) {
	for i, test := range optionsTests {
		opts := convertOptions(test.options)
		switch {
		case opts.Polynomial != test.polynomial:
			t.Errorf("test=%d polynomial got=%#x want=%#x", i, opts.Polynomial, test.polynomial)
		case *opts.Table != *crc.MakeTable(test.polynomial):
			t.Errorf("test=%d table does not match polynomial %#x", i, test.polynomial)
		case opts.Seed != test.seed:
			t.Errorf("test=%d seed got=%#x want=%#x", i, opts.Seed, test.seed)
		case opts.Compression != test.compression:
			t.Errorf("test=%d compression got=%s want=%s", i, opts.Compression, test.compression)
		case opts.MaxRecordSize != test.maxRecordSize:
			t.Errorf("test=%d max record size got=%d want=%d", i, opts.MaxRecordSize, test.maxRecordSize)
		case !matchLogger(opts.Logger, test.loggerBuffer):
			t.Errorf("test=%d logger mismatch", i)
		}
	}
}
