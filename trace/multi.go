package trace

import "github.com/katalvlaran/percolation/percolation"

type multiSink []percolation.Sink

// Multi fans every event out to each sink in order.
func Multi(sinks ...percolation.Sink) percolation.Sink {
	return multiSink(sinks)
}

func (m multiSink) Created(n int) {
	for _, s := range m {
		s.Created(n)
	}
}

func (m multiSink) Opened(row, col int) {
	for _, s := range m {
		s.Opened(row, col)
	}
}
