package seedcrc

import (
	"io"

	"github.com/kezhuw/seedcrc/internal/logger"
)

type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// DiscardLogger is a nop Logger.
var DiscardLogger Logger = logger.Discard

// WriterLogger returns a Logger writing severity prefixed lines to w. Debug
// lines, which carry checksum register traces, are written only if debug is
// true.
func WriterLogger(w io.Writer, debug bool) Logger {
	return logger.WriterLogger(w, debug)
}

var _ Logger = (logger.Logger)(nil)
var _ logger.Logger = (Logger)(nil)
