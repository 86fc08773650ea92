package huffman

import "log"

// Logger receives diagnostics from a Processor.
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type stdLogger struct {
	l *log.Logger
}

// NewStdLogger returns a Logger that writes to l, or to the standard
// logger if l is nil.
func NewStdLogger(l *log.Logger) Logger {
	if l == nil {
		l = log.Default()
	}
	return &stdLogger{l: l}
}

func (s *stdLogger) Infof(format string, v ...interface{}) {
	s.l.Printf("[INFO] huffman: "+format, v...)
}

func (s *stdLogger) Errorf(format string, v ...interface{}) {
	s.l.Printf("[ERROR] huffman: "+format, v...)
}
