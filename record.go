package seedcrc

import (
	"io"

	"github.com/kezhuw/seedcrc/internal/errors"
	"github.com/kezhuw/seedcrc/internal/record"
)

// Writer frames payloads as records checksummed under one polynomial and
// seed. It is not safe for concurrent use.
type Writer struct {
	w      *record.Writer
	logger Logger
}

// NewWriter creates a Writer appending records to w. Polynomial, Seed,
// Compression and MaxRecordSize are taken from opts.
func NewWriter(w io.Writer, opts *Options) *Writer {
	iopts := convertOptions(opts)
	return &Writer{
		w:      record.NewWriter(w, 0, iopts.Channel(), iopts.Compression, iopts.MaxRecordSize),
		logger: iopts.Logger,
	}
}

// Write appends payload as one record.
func (w *Writer) Write(payload []byte) error {
	offset := w.w.Offset()
	if err := w.w.Write(payload); err != nil {
		w.logger.Errorf("seedcrc: write record at %d: %s", offset, err)
		return err
	}
	w.logger.Debugf("seedcrc: wrote record of %d bytes at %d", len(payload), offset)
	return nil
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int64 {
	return w.w.Offset()
}

// Reader reads and verifies records written by Writer. A record checksummed
// under another polynomial or seed fails with a corruption error.
type Reader struct {
	r      *record.Reader
	logger Logger
}

// NewReader creates a Reader. Polynomial, Seed and MaxRecordSize are taken
// from opts; compression is recorded per record.
func NewReader(r io.Reader, opts *Options) *Reader {
	iopts := convertOptions(opts)
	return &Reader{
		r:      record.NewReader(r, iopts.Channel(), iopts.MaxRecordSize),
		logger: iopts.Logger,
	}
}

// Next returns the payload of the next record. The returned slice is valid
// until the next call to Next. It returns io.EOF after the last record.
func (r *Reader) Next() ([]byte, error) {
	payload, err := r.r.Next()
	if err != nil && errors.IsCorrupt(err) {
		r.logger.Warnf("%s", err)
	}
	return payload, err
}

// Offset returns an offset points after the last record read.
func (r *Reader) Offset() int64 {
	return r.r.Offset()
}
