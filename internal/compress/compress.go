package compress

import (
	"errors"
	"sync"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

type Type byte

const (
	NoCompression     Type = 0
	SnappyCompression Type = 1
	ZstdCompression   Type = 2
)

var (
	ErrNoCompression          = errors.New("seedcrc: no compression")
	ErrUnsupportedCompression = errors.New("seedcrc: unsupported compression")
	ErrExceedsLimit           = errors.New("seedcrc: decoded size exceeds limit")
)

// zstdMinMemory is the smallest memory limit given to a zstd decoder, so
// frames using the encoder's default window still decode under small limits.
// Exact limits are enforced on the decoded length.
const zstdMinMemory = 8 * 1024 * 1024 // 8MiB

var (
	zstdEnc     *zstd.Encoder
	zstdEncErr  error
	zstdEncOnce sync.Once

	// Decoders are keyed by memory limit. Callers use a handful of limits,
	// usually only the default.
	zstdDecMu sync.Mutex
	zstdDecs  = make(map[int]*zstd.Decoder)
)

func zstdDecoder(limit int) (*zstd.Decoder, error) {
	if limit < zstdMinMemory {
		limit = zstdMinMemory
	}
	zstdDecMu.Lock()
	defer zstdDecMu.Unlock()
	if dec, ok := zstdDecs[limit]; ok {
		return dec, nil
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(limit)))
	if err != nil {
		return nil, err
	}
	zstdDecs[limit] = dec
	return dec, nil
}

func zstdEncoder() (*zstd.Encoder, error) {
	zstdEncOnce.Do(func() {
		zstdEnc, zstdEncErr = zstd.NewWriter(
			nil, zstd.WithZeroFrames(true),
			zstd.WithEncoderCRC(false))
	})
	return zstdEnc, zstdEncErr
}

func (t Type) String() string {
	switch t {
	case NoCompression:
		return "none"
	case SnappyCompression:
		return "snappy"
	case ZstdCompression:
		return "zstd"
	default:
		return "unknown"
	}
}

// Parse maps a compression name back to its Type.
func Parse(name string) (Type, error) {
	switch name {
	case "", "none":
		return NoCompression, nil
	case "snappy":
		return SnappyCompression, nil
	case "zstd":
		return ZstdCompression, nil
	default:
		return NoCompression, ErrUnsupportedCompression
	}
}

// Decode decompresses src into dst. It fails with ErrExceedsLimit if the
// decoded form is longer than limit. Snappy input is rejected before
// allocation; zstd decoding stops once it passes max(limit, 8MiB).
func Decode(typ Type, dst, src []byte, limit int) ([]byte, error) {
	if limit <= 0 {
		return nil, ErrExceedsLimit
	}
	switch typ {
	case NoCompression:
		return nil, ErrNoCompression
	case SnappyCompression:
		n, err := snappy.DecodedLen(src)
		if err != nil {
			return nil, err
		}
		if n > limit {
			return nil, ErrExceedsLimit
		}
		return snappy.Decode(dst, src)
	case ZstdCompression:
		dec, err := zstdDecoder(limit)
		if err != nil {
			return nil, err
		}
		b, err := dec.DecodeAll(src, dst[:0])
		switch err {
		case nil:
			if len(b) > limit {
				return nil, ErrExceedsLimit
			}
			return b, nil
		case zstd.ErrDecoderSizeExceeded, zstd.ErrWindowSizeExceeded:
			return nil, ErrExceedsLimit
		default:
			return nil, err
		}
	default:
		return nil, ErrUnsupportedCompression
	}
}

func Encode(typ Type, dst, src []byte) ([]byte, error) {
	switch typ {
	case NoCompression:
		return nil, ErrNoCompression
	case SnappyCompression:
		return snappy.Encode(dst, src), nil
	case ZstdCompression:
		enc, err := zstdEncoder()
		if err != nil {
			return nil, err
		}
		return enc.EncodeAll(src, dst[:0]), nil
	default:
		return nil, ErrUnsupportedCompression
	}
}
