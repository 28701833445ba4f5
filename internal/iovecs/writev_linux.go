package iovecs

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

type fileWriter struct {
	*os.File
	fd int
}

func newFileWriter(f *os.File) Writer {
	return &fileWriter{File: f, fd: int(f.Fd())}
}

func (f *fileWriter) Writev(slices ...[]byte) (int64, error) {
	vecs := make([][]byte, 0, len(slices))
	for _, b := range slices {
		if len(b) != 0 {
			vecs = append(vecs, b)
		}
	}
	var written int64
	for len(vecs) != 0 {
		n, err := unix.Writev(f.fd, vecs)
		if n > 0 {
			written += int64(n)
		}
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return written, err
		}
		if n == 0 {
			return written, io.ErrShortWrite
		}
		// Drop fully written slices and trim a partially written one.
		for n > 0 {
			if n >= len(vecs[0]) {
				n -= len(vecs[0])
				vecs = vecs[1:]
				continue
			}
			vecs[0] = vecs[0][n:]
			n = 0
		}
	}
	return written, nil
}
