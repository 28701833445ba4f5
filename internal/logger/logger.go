package logger

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type LogCloser interface {
	Logger
	io.Closer
}

var Discard LogCloser = nopLogger{}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Close() error                              { return nil }

type writerLogger struct {
	mu    sync.Mutex
	w     io.Writer
	debug bool
}

func (l *writerLogger) printf(severity, format string, args ...interface{}) {
	var buf bytes.Buffer
	buf.WriteString(severity)
	buf.WriteByte(' ')
	fmt.Fprintf(&buf, format, args...)
	if b := buf.Bytes(); b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
	l.mu.Lock()
	l.w.Write(buf.Bytes())
	l.mu.Unlock()
}

func (l *writerLogger) Debugf(format string, args ...interface{}) {
	if l.debug {
		l.printf("DEBUG", format, args...)
	}
}

func (l *writerLogger) Warnf(format string, args ...interface{}) {
	l.printf("WARN", format, args...)
}

func (l *writerLogger) Infof(format string, args ...interface{}) {
	l.printf("INFO", format, args...)
}

func (l *writerLogger) Errorf(format string, args ...interface{}) {
	l.printf("ERROR", format, args...)
}

func (l *writerLogger) Close() error {
	if c, ok := l.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// WriterLogger returns a logger writing one line per message to w. Debug
// messages are dropped unless debug is true.
func WriterLogger(w io.Writer, debug bool) LogCloser {
	return &writerLogger{w: w, debug: debug}
}
