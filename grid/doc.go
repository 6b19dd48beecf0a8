// Package grid models the N×N site lattice used by percolation: coordinate
// translation, per-site open/blocked state, and the two virtual sentinels.
//
// What:
//
//   - Grid maps 1-based (row, col) to a linear index (row-1)·N + col.
//   - Index 0 is the virtual top sentinel; index N·N+1 is the virtual bottom.
//   - Site state is monotonic: Blocked → Open, never back.
//   - OpenClusters groups open sites into 4-connected regions (BFS); it is a
//     from-scratch view meant for reporting and cross-checks, not for the
//     incremental engine.
//
// Why:
//
//   - Keeping index arithmetic and bounds checks in one place lets the engine
//     speak only in validated indices.
//
// Complexity:
//
//   - New:          O(N²) time and memory.
//   - Index, SetOpen, IsOpenAt, IsTopRow, IsBottomRow: O(1).
//   - OpenClusters: O(N²), Memory: O(N²).
//   - Render:       O(N²).
//
// Errors:
//
//   - ErrInvalidDimension: N ≤ 0 at construction.
//   - ErrCoordinateOutOfRange: row or col outside [1, N]; returned as *CoordinateError.
package grid
