package percolation

import (
	"errors"

	"github.com/katalvlaran/percolation/grid"
)

// Errors callers match with errors.Is.
var (
	// ErrInvalidDimension is returned by New when n ≤ 0.
	ErrInvalidDimension = grid.ErrInvalidDimension
	// ErrCoordinateOutOfRange is returned for row or col outside [1, N].
	// The concrete value is a *grid.CoordinateError.
	ErrCoordinateOutOfRange = grid.ErrCoordinateOutOfRange
	// ErrInternal marks a forest error on an index the grid had already
	// validated.
	ErrInternal = errors.New("percolation: internal invariant violated")
)

// Sink observes engine activity. It is a side channel: implementations must
// not call back into the engine, and their presence never changes a query
// result.
type Sink interface {
	// Created is called once per engine with its side length.
	Created(n int)
	// Opened is called for every Open call that passed coordinate
	// validation, including re-opens of an already open site.
	Opened(row, col int)
}

// nopSink discards every event.
type nopSink struct{}

func (nopSink) Created(int)     {}
func (nopSink) Opened(int, int) {}

// config aggregates engine knobs set by Option values.
type config struct {
	sink Sink
}

// Option configures a Percolation before construction.
type Option func(*config)

// WithSink attaches a diagnostic sink. Panics on nil; omit the option to
// run without one.
func WithSink(s Sink) Option {
	if s == nil {
		panic("percolation: WithSink(nil)")
	}
	return func(c *config) {
		c.sink = s
	}
}
