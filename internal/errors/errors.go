package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength          = errors.New("seedcrc: size exceeds buffer length")
	ErrIncompleteRecord       = errors.New("seedcrc: incomplete record")
	ErrRecordTooLarge         = errors.New("seedcrc: record too large")
	ErrMismatchChecksum       = errors.New("seedcrc: mismatch checksum")
	ErrUnsupportedCompression = errors.New("seedcrc: unsupported compression")
)

// LengthError reports a size that reaches past the end of a buffer.
type LengthError struct {
	Size uint32
	Len  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: size %d, buffer length %d", ErrInvalidLength, e.Size, e.Len)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

func NewLength(size uint32, n int) error {
	return &LengthError{Size: size, Len: n}
}

func IsInvalidLength(err error) bool {
	return errors.Is(err, ErrInvalidLength)
}

type CorruptionError struct {
	Err      error
	Offset   int64
	Category string
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("seedcrc: corrupt %s at %d: %s", e.Category, e.Offset, e.Err)
}

func (e *CorruptionError) Unwrap() error {
	return e.Err
}

func NewCorruption(category string, offset int64, err error) error {
	return &CorruptionError{Err: err, Offset: offset, Category: category}
}

func IsCorrupt(err error) bool {
	var e *CorruptionError
	return errors.As(err, &e)
}
