package trace

import "github.com/katalvlaran/percolation/percolation"

// Buffer is a sink that keeps the events of one engine in memory, so runs
// made on other goroutines can be handed to a Recorder one at a time.
type Buffer struct {
	N     int
	Opens [][2]int
}

// Created resets the buffer for a new n×n run.
func (b *Buffer) Created(n int) {
	b.N = n
	b.Opens = b.Opens[:0]
}

// Opened appends a coordinate.
func (b *Buffer) Opened(row, col int) {
	b.Opens = append(b.Opens, [2]int{row, col})
}

// Replay sends the buffered run to s.
func (b *Buffer) Replay(s percolation.Sink) {
	s.Created(b.N)
	for _, rc := range b.Opens {
		s.Opened(rc[0], rc[1])
	}
}
