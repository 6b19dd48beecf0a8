package simulate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolation/percolation"
)

// ErrInvalidTrials indicates a non-positive trial count.
var ErrInvalidTrials = errors.New("simulate: trials must be > 0")

// confidence95 is the two-sided z-score for a 95% interval.
const confidence95 = 1.96

// Summary holds threshold estimates over independent trials.
type Summary struct {
	N          int
	Trials     int
	Thresholds []float64 // per trial, in trial order
	Mean       float64
	StdDev     float64
	ConfLo     float64
	ConfHi     float64
}

// statsConfig aggregates Stats knobs.
type statsConfig struct {
	seed    int64
	workers int
	source  SourceFunc
	sinkFor func(trial int) percolation.Sink
}

// StatsOption customises Stats.
type StatsOption func(*statsConfig)

// WithSeed sets the base seed; trial t uses seed+t.
func WithSeed(seed int64) StatsOption {
	return func(c *statsConfig) {
		c.seed = seed
	}
}

// WithWorkers bounds the number of trials running at once. Panics if k ≤ 0.
func WithWorkers(k int) StatsOption {
	if k <= 0 {
		panic("simulate: WithWorkers(k <= 0)")
	}
	return func(c *statsConfig) {
		c.workers = k
	}
}

// WithSource selects how each trial draws coordinates. Panics on nil.
func WithSource(fn SourceFunc) StatsOption {
	if fn == nil {
		panic("simulate: WithSource(nil)")
	}
	return func(c *statsConfig) {
		c.source = fn
	}
}

// WithTrialSink attaches a sink per trial; fn may return nil for no sink.
// fn is called from worker goroutines and must be safe for concurrent use.
func WithTrialSink(fn func(trial int) percolation.Sink) StatsOption {
	if fn == nil {
		panic("simulate: WithTrialSink(nil)")
	}
	return func(c *statsConfig) {
		c.sinkFor = fn
	}
}

// Stats runs trials independent percolation experiments on n×n grids and
// summarises the thresholds. The first failing trial cancels the rest.
// Complexity: O(trials·n²·α(n²)) time, O(workers·n²) memory.
func Stats(ctx context.Context, n, trials int, opts ...StatsOption) (Summary, error) {
	cfg := statsConfig{
		seed:    1,
		workers: runtime.GOMAXPROCS(0),
		source:  Random,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if n <= 0 {
		return Summary{}, fmt.Errorf("%w: got %d", percolation.ErrInvalidDimension, n)
	}
	if trials <= 0 {
		return Summary{}, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}

	thresholds := make([]float64, trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for t := 0; t < trials; t++ {
		t := t
		g.Go(func() error {
			var popts []percolation.Option
			if cfg.sinkFor != nil {
				if s := cfg.sinkFor(t); s != nil {
					popts = append(popts, percolation.WithSink(s))
				}
			}
			p, err := percolation.New(n, popts...)
			if err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(cfg.seed + int64(t)))
			res, err := Run(gctx, p, cfg.source(n, rng))
			if err != nil {
				return fmt.Errorf("trial %d: %w", t, err)
			}
			thresholds[t] = res.Threshold()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return summarize(n, thresholds), nil
}

// summarize computes mean, sample standard deviation and the 95% interval.
func summarize(n int, xs []float64) Summary {
	s := Summary{N: n, Trials: len(xs), Thresholds: xs}
	for _, x := range xs {
		s.Mean += x
	}
	s.Mean /= float64(len(xs))
	if len(xs) > 1 {
		var ss float64
		for _, x := range xs {
			ss += (x - s.Mean) * (x - s.Mean)
		}
		s.StdDev = math.Sqrt(ss / float64(len(xs)-1))
	}
	half := confidence95 * s.StdDev / math.Sqrt(float64(len(xs)))
	s.ConfLo, s.ConfHi = s.Mean-half, s.Mean+half

	return s
}
