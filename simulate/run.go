package simulate

import (
	"context"
	"errors"

	"github.com/katalvlaran/percolation/percolation"
)

// ErrSourceExhausted indicates the source ran out before the system percolated.
var ErrSourceExhausted = errors.New("simulate: source exhausted before percolation")

// Result summarises one driven run.
type Result struct {
	N      int
	Opened int // sites open when the run stopped
	Draws  int // coordinates taken from the source, skips included
}

// Threshold returns Opened / N², the estimated open-site fraction at which
// the system first percolated.
func (r Result) Threshold() float64 {
	return float64(r.Opened) / float64(r.N*r.N)
}

// Run takes coordinates from src and opens them on p until p percolates.
// Already open sites are skipped. Run stops early with ctx.Err() when ctx is
// done, with ErrSourceExhausted when src runs dry, and with any error from
// p unchanged (e.g. an out-of-range coordinate). The returned Result is
// valid in every case.
func Run(ctx context.Context, p *percolation.Percolation, src Source) (Result, error) {
	res := Result{N: p.N()}
	stop := func(err error) (Result, error) {
		res.Opened = p.OpenCount()
		return res, err
	}

	for !p.Percolates() {
		if err := ctx.Err(); err != nil {
			return stop(err)
		}
		row, col, ok := src.Next()
		if !ok {
			return stop(ErrSourceExhausted)
		}
		res.Draws++

		open, err := p.IsOpen(row, col)
		if err != nil {
			return stop(err)
		}
		if open {
			continue
		}
		if err := p.Open(row, col); err != nil {
			return stop(err)
		}
	}

	return stop(nil)
}
