package delpi

import (
	"io"
	"log"
)

// Logger is the leveled sink a Model reports diagnostic messages to.
// NewModel installs noopLogger unless WithLogger is given, so a Logger is
// only ever required when the caller wants to see them.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(format string, v ...interface{}) {}
func (noopLogger) Infof(format string, v ...interface{})  {}
func (noopLogger) Warnf(format string, v ...interface{})  {}
func (noopLogger) Errorf(format string, v ...interface{}) {}

// stdLogger is a Logger backed by the standard log package. verbosity
// gates Debugf: 0 (the default) suppresses it, anything above emits it.
type stdLogger struct {
	l         *log.Logger
	verbosity int
}

// NewStdLogger returns a Logger that writes leveled, prefixed lines to w
// through the standard log package. Debugf is only emitted when verbosity
// is greater than zero.
func NewStdLogger(w io.Writer, verbosity int) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags), verbosity: verbosity}
}

func (s *stdLogger) Debugf(format string, v ...interface{}) {
	if s.verbosity <= 0 {
		return
	}
	s.l.Printf("DEBUG "+format, v...)
}

func (s *stdLogger) Infof(format string, v ...interface{}) {
	s.l.Printf("INFO "+format, v...)
}

func (s *stdLogger) Warnf(format string, v ...interface{}) {
	s.l.Printf("WARN "+format, v...)
}

func (s *stdLogger) Errorf(format string, v ...interface{}) {
	s.l.Printf("ERROR "+format, v...)
}
