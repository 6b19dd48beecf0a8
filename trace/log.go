package trace

import "log"

// LogSink prints engine events through a *log.Logger.
type LogSink struct {
	l *log.Logger
}

// NewLogSink returns a LogSink; a nil logger uses log.Default().
func NewLogSink(l *log.Logger) *LogSink {
	if l == nil {
		l = log.Default()
	}

	return &LogSink{l: l}
}

// Created logs the grid size.
func (s *LogSink) Created(n int) {
	s.l.Printf("percolation: new %dx%d grid", n, n)
}

// Opened logs the opened coordinate.
func (s *LogSink) Opened(row, col int) {
	s.l.Printf("percolation: open (%d, %d)", row, col)
}
