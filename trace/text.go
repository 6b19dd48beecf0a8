package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformed indicates a text trace that does not follow the format.
var ErrMalformed = errors.New("trace: malformed text trace")

// TextSink writes the plain trace format to an io.Writer.
// Output is buffered; call Flush when the run ends.
type TextSink struct {
	w   *bufio.Writer
	err error
}

// NewTextSink returns a TextSink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: bufio.NewWriter(w)}
}

// Created writes the side length line.
func (s *TextSink) Created(n int) {
	s.printf("%d\n", n)
}

// Opened writes a "row col" line.
func (s *TextSink) Opened(row, col int) {
	s.printf("%d %d\n", row, col)
}

func (s *TextSink) printf(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// Flush writes buffered lines and returns the first error seen.
func (s *TextSink) Flush() error {
	if s.err != nil {
		return s.err
	}
	s.err = s.w.Flush()

	return s.err
}

// Err returns the first write error, if any.
func (s *TextSink) Err() error {
	return s.err
}

// ReadText parses a text trace. Blank lines are skipped.
// Returns ErrMalformed (wrapped with the line number) on bad input.
func ReadText(r io.Reader) (n int, opens [][2]int, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	header := false
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if !header {
			if len(fields) != 1 {
				return 0, nil, fmt.Errorf("%w: line %d: want grid size", ErrMalformed, line)
			}
			if n, err = strconv.Atoi(fields[0]); err != nil {
				return 0, nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
			}
			header = true
			continue
		}
		if len(fields) != 2 {
			return 0, nil, fmt.Errorf("%w: line %d: want \"row col\"", ErrMalformed, line)
		}
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		opens = append(opens, [2]int{row, col})
	}
	if err := sc.Err(); err != nil {
		return 0, nil, err
	}
	if !header {
		return 0, nil, fmt.Errorf("%w: empty trace", ErrMalformed)
	}

	return n, opens, nil
}
