// Package percolation answers site-percolation queries on an N×N grid while
// sites are opened one at a time.
//
// What:
//
//   - Percolation owns a grid.Grid (site state) and a unionfind.UF over
//     N·N+2 elements: every site plus a virtual top and a virtual bottom.
//   - Open marks a site open and unions it with its open orthogonal
//     neighbours, with the top sentinel when it sits in row 1, and with the
//     bottom sentinel once its component is full and touches row N.
//   - IsFull is "connected to the top sentinel"; Percolates is "top sentinel
//     connected to bottom sentinel". Both are single connectivity queries.
//
// Backwash:
//
//	The bottom sentinel is only ever joined to components that are already
//	connected to the top. Being connected to the bottom sentinel therefore
//	implies being full, so a bottom-row component that never reached the top
//	is never reported full. Each forest root carries a reaches-bottom flag so
//	a component that becomes full after its bottom-row sites were opened is
//	still joined to the bottom sentinel at that moment.
//
// Complexity:
//
//   - New:        O(N²) time and memory.
//   - Open:       O(α(N²)) amortized (at most six unions).
//   - IsOpen:     O(1).
//   - IsFull:     O(α(N²)) amortized.
//   - Percolates: O(α(N²)) amortized.
//
// Errors:
//
//   - ErrInvalidDimension (grid): N ≤ 0 at construction; no engine is returned.
//   - ErrCoordinateOutOfRange (grid): row or col outside [1, N]; state unchanged.
//   - ErrInternal: the forest rejected a pre-validated index. This is a defect.
//
// A Percolation is not safe for concurrent use. Run independent engines per
// goroutine instead (see package simulate).
package percolation
