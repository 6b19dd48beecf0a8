package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension indicates a grid side length N ≤ 0.
	ErrInvalidDimension = errors.New("grid: dimension must be > 0")
	// ErrCoordinateOutOfRange indicates a row or column outside [1, N].
	ErrCoordinateOutOfRange = errors.New("grid: coordinate out of range")
)

// CoordinateError carries the rejected coordinate and the valid range [1, N].
type CoordinateError struct {
	Row, Col int
	N        int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("grid: coordinate (%d, %d) out of range [1, %d]", e.Row, e.Col, e.N)
}

// Unwrap lets errors.Is(err, ErrCoordinateOutOfRange) succeed.
func (e *CoordinateError) Unwrap() error {
	return ErrCoordinateOutOfRange
}
