package diag

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Sink receives one diagnostic line at a time, tagged by severity.
// Implementations must not retain the line.
type Sink interface {
	Warning(line string)
	Error(line string)
	Uncaught(line string)
}

// WriterSink writes tagged lines to w and duplicates every line to the
// package logger (see SetLogger).
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Warning(line string) {
	fmt.Fprintf(s.w, "warning: %s\n", line)
	Logger().Warn(line)
}

func (s *WriterSink) Error(line string) {
	fmt.Fprintf(s.w, "error: %s\n", line)
	Logger().Error(line)
}

func (s *WriterSink) Uncaught(line string) {
	fmt.Fprintf(s.w, "uncaught exception: %s\n", line)
	Logger().Error(line, zap.Bool("uncaught", true))
}
