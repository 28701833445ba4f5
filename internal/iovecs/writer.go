// Package iovecs writes several byte slices as one logical write, using
// writev(2) where the platform supports it.
package iovecs

import (
	"io"
	"os"
)

type Writer interface {
	Write(p []byte) (int, error)
	Writev(slices ...[]byte) (int64, error)
}

type ioWriter struct {
	io.Writer
}

func (w *ioWriter) Writev(slices ...[]byte) (int64, error) {
	var written int64
	for _, b := range slices {
		if len(b) == 0 {
			continue
		}
		n, err := w.Write(b)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func NewWriter(w io.Writer) Writer {
	if iw, ok := w.(Writer); ok {
		return iw
	}
	if f, ok := w.(*os.File); ok {
		if fw := newFileWriter(f); fw != nil {
			return fw
		}
	}
	return &ioWriter{w}
}
