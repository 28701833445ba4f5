package seedcrc

import "github.com/kezhuw/seedcrc/internal/errors"

var (
	ErrInvalidLength          = errors.ErrInvalidLength // size exceeds buffer length
	ErrIncompleteRecord       = errors.ErrIncompleteRecord
	ErrRecordTooLarge         = errors.ErrRecordTooLarge
	ErrMismatchChecksum       = errors.ErrMismatchChecksum
	ErrUnsupportedCompression = errors.ErrUnsupportedCompression
)

// LengthError is returned when a size reaches past the end of its buffer.
// It matches ErrInvalidLength under errors.Is.
type LengthError = errors.LengthError

// CorruptionError describes a record that failed verification.
type CorruptionError = errors.CorruptionError

// IsInvalidLength returns a boolean indicating whether the error reports a
// size larger than its buffer.
func IsInvalidLength(err error) bool {
	return errors.IsInvalidLength(err)
}

// IsCorrupt returns a boolean indicating whether the error is a corruption error.
func IsCorrupt(err error) bool {
	return errors.IsCorrupt(err)
}
