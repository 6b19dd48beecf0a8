// Package percolation is a toolkit for site percolation on N×N grids: open
// sites one at a time and ask, in near-constant time, whether a site is
// connected to the top and whether the grid percolates.
//
// 🚀 What's inside?
//
//	A small, dependency-light set of packages:
//		• unionfind   — weighted quick-union forest with path halving
//		• grid        — 1-based coordinates, site state, two virtual sentinels
//		• percolation — the incremental engine: Open, IsOpen, IsFull, Percolates
//		• trace       — diagnostic sinks: text trace, log, SQLite run log
//		• simulate    — driver loop, coordinate sources, threshold statistics
//		• config      — YAML settings for the percolate command
//
// ✨ Why this layout?
//
//   - The forest knows nothing about rows or columns; the grid knows nothing
//     about unions; the engine glues them together.
//   - Percolates is a single connectivity query between two sentinels, never
//     a search.
//   - No backwash: the bottom sentinel only joins components already
//     connected to the top.
//
// Quick ASCII example (3×3, '~' = full, '.' = open, '#' = blocked):
//
//	# ~ #
//	# ~ #
//	# ~ ~     → percolates
//
// Command line:
//
//	go run ./cmd/percolate run -n 20 --render
//	go run ./cmd/percolate stats -n 200 -t 100
package percolation
