package record

import (
	"io"

	"github.com/kezhuw/seedcrc/internal/compress"
	"github.com/kezhuw/seedcrc/internal/crc"
	"github.com/kezhuw/seedcrc/internal/endian"
	"github.com/kezhuw/seedcrc/internal/errors"
)

type Reader struct {
	r         io.Reader
	err       error
	offset    int64 // Points after last record read.
	maxSize   int
	checksums [numCompression]crc.CRC
	head      header
	buf       []byte
	decoded   []byte
}

// NewReader creates a record reader. r must be positioned at a record
// boundary.
func NewReader(r io.Reader, ch Channel, maxSize int) *Reader {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Reader{r: r, maxSize: maxSize, checksums: ch.typeChecksums()}
}

// Offset returns an offset points after last successfully read record.
func (r *Reader) Offset() int64 {
	return r.offset
}

func (r *Reader) corrupt(err error) error {
	r.err = errors.NewCorruption("record", r.offset, err)
	return r.err
}

// fill reads exactly len(b) bytes. A clean end of stream is io.EOF only at a
// record boundary.
func (r *Reader) fill(b []byte, boundary bool) error {
	n, err := io.ReadFull(r.r, b)
	switch {
	case err == nil:
		return nil
	case err == io.EOF && n == 0 && boundary:
		r.err = io.EOF
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		r.err = errors.ErrIncompleteRecord
	default:
		r.err = err
	}
	return r.err
}

// Next reads, verifies and decompresses the next record. The returned slice
// is valid until the next call. It returns io.EOF after the last record.
func (r *Reader) Next() ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	head := r.head[:]
	if err := r.fill(head, true); err != nil {
		return nil, err
	}
	sum := endian.Uint32(head[0:4])
	length := endian.Uint32(head[4:8])
	typ := compress.Type(head[8])
	switch {
	case uint64(length) > uint64(r.maxSize):
		return nil, r.corrupt(errors.ErrRecordTooLarge)
	case !validType(typ):
		return nil, r.corrupt(errors.ErrUnsupportedCompression)
	}
	if cap(r.buf) < int(length) {
		r.buf = make([]byte, length)
	}
	payload := r.buf[:length]
	if length != 0 {
		if err := r.fill(payload, false); err != nil {
			return nil, err
		}
	}
	if crc.Update(r.checksums[typ], payload).Value() != sum {
		return nil, r.corrupt(errors.ErrMismatchChecksum)
	}
	if typ != compress.NoCompression {
		decoded, err := compress.Decode(typ, r.decoded[:cap(r.decoded)], payload, r.maxSize)
		switch {
		case err == compress.ErrExceedsLimit:
			return nil, r.corrupt(errors.ErrRecordTooLarge)
		case err != nil:
			return nil, r.corrupt(err)
		}
		r.decoded, payload = decoded, decoded
	}
	r.offset += headerSize + int64(length)
	return payload, nil
}
