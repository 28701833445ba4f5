package record

import (
	"io"
	"math"

	"github.com/kezhuw/seedcrc/internal/compress"
	"github.com/kezhuw/seedcrc/internal/crc"
	"github.com/kezhuw/seedcrc/internal/endian"
	"github.com/kezhuw/seedcrc/internal/errors"
	"github.com/kezhuw/seedcrc/internal/iovecs"
)

type Writer struct {
	w           iovecs.Writer
	err         error
	offset      int64
	maxSize     int
	compression compress.Type
	checksums   [numCompression]crc.CRC
	head        header
	buf         []byte
}

// NewWriter creates a record writer appending to w, which is positioned at
// offset. Payloads larger than maxSize are rejected; a non-positive maxSize
// selects DefaultMaxSize.
func NewWriter(w io.Writer, offset int64, ch Channel, typ compress.Type, maxSize int) *Writer {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if limit := int64(math.MaxUint32); int64(maxSize) > limit {
		maxSize = int(limit)
	}
	wr := &Writer{
		w:           iovecs.NewWriter(w),
		offset:      offset,
		maxSize:     maxSize,
		compression: typ,
		checksums:   ch.typeChecksums(),
	}
	if !validType(typ) {
		wr.err = errors.ErrUnsupportedCompression
	}
	return wr
}

func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) Offset() int64 {
	return w.offset
}

// Write appends b as one record. Compressed form is stored only when it is
// smaller than b.
func (w *Writer) Write(b []byte) error {
	if w.err != nil {
		return w.err
	}
	if len(b) > w.maxSize {
		return errors.ErrRecordTooLarge
	}
	stored, typ := b, compress.NoCompression
	if w.compression != compress.NoCompression && len(b) != 0 {
		encoded, err := compress.Encode(w.compression, w.buf[:cap(w.buf)], b)
		if err != nil {
			w.err = err
			return err
		}
		w.buf = encoded
		if len(encoded) < len(b) {
			stored, typ = encoded, w.compression
		}
	}
	sum := crc.Update(w.checksums[typ], stored).Value()
	head := w.head[:]
	endian.PutUint32(head[0:4], sum)
	endian.PutUint32(head[4:8], uint32(len(stored)))
	head[8] = byte(typ)
	n, err := w.w.Writev(head, stored)
	w.offset += n
	if err != nil {
		w.err = err
		return err
	}
	return nil
}
