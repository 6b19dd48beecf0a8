package unionfind

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates New was called with a non-positive element count.
	ErrInvalidSize = errors.New("unionfind: element count must be > 0")

	// ErrElementOutOfRange indicates an element outside [0, M-1].
	// Match with errors.Is; the concrete value is a *RangeError.
	ErrElementOutOfRange = errors.New("unionfind: element out of range")
)

// RangeError reports an element that does not belong to the universe.
type RangeError struct {
	Element int // offending element
	Size    int // M; valid elements are [0, Size-1]
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("unionfind: element %d out of range [0, %d]", e.Element, e.Size-1)
}

// Unwrap lets errors.Is(err, ErrElementOutOfRange) succeed.
func (e *RangeError) Unwrap() error {
	return ErrElementOutOfRange
}
