// Package simulate drives percolation engines: it feeds coordinates from a
// Source into Open until the system percolates, and repeats that over
// independent trials to estimate the percolation threshold.
//
// What:
//
//   - Source yields (row, col) pairs. RandomSource draws uniformly with
//     replacement, PermutationSource visits every site once in shuffled
//     order, SliceSource replays a fixed sequence.
//   - Run opens sites until Percolates, skipping already open ones.
//   - Stats runs T trials on a bounded worker pool. Each trial owns its
//     engine and its RNG (seed + trial index), so results do not depend on
//     scheduling.
//
// Estimates:
//
//	threshold_t = opened_t / N²
//	mean        = Σ threshold_t / T
//	stddev      = sqrt(Σ (threshold_t − mean)² / (T−1))   (0 when T = 1)
//	95% CI      = mean ± 1.96·stddev/√T
//
// Errors:
//
//   - ErrSourceExhausted: the source ran dry before the system percolated.
//   - ErrInvalidTrials: Stats called with T ≤ 0.
//   - percolation errors propagate unchanged.
package simulate
