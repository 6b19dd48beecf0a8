package grid

import "fmt"

// New constructs an N×N grid with every real site Blocked and both
// sentinels Open. Returns ErrInvalidDimension if n ≤ 0.
// Complexity: O(N²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, n)
	}
	// Zero value of SiteState is Blocked, so only the sentinels need setting.
	state := make([]SiteState, n*n+2)
	state[0] = Open
	state[n*n+1] = Open

	return &Grid{
		n:               n,
		state:           state,
		neighborOffsets: orthogonal,
	}, nil
}

// N returns the side length.
func (g *Grid) N() int {
	return g.n
}

// Size returns the number of indices, N·N+2, sentinels included.
func (g *Grid) Size() int {
	return len(g.state)
}

// Top returns the index of the virtual top sentinel.
func (g *Grid) Top() int {
	return 0
}

// Bottom returns the index of the virtual bottom sentinel.
func (g *Grid) Bottom() int {
	return g.n*g.n + 1
}

// InBounds reports whether (row, col) lies within [1, N]×[1, N].
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// Index maps 1-based (row, col) to its linear index (row-1)·N + col.
// Returns a *CoordinateError wrapping ErrCoordinateOutOfRange on bad input.
// Complexity: O(1).
func (g *Grid) Index(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, &CoordinateError{Row: row, Col: col, N: g.n}
	}

	return g.index(row, col), nil
}

// index is Index without validation.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + col
}

// Coordinate converts a real-site index in [1, N·N] back to (row, col).
// The result is meaningless for sentinel indices.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return (idx-1)/g.n + 1, (idx-1)%g.n + 1
}

// IsTopRow reports whether row is the first row.
func (g *Grid) IsTopRow(row int) bool {
	return row == 1
}

// IsBottomRow reports whether row is the last row.
// For N = 1 the only row is both top and bottom.
func (g *Grid) IsBottomRow(row int) bool {
	return row == g.n
}

// NeighborOffsets returns the (dRow, dCol) offsets of the four orthogonal
// neighbours. Callers combine them with InBounds.
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// SetOpen marks idx Open. It reports true only on a Blocked → Open
// transition; re-opening, sentinels and out-of-range indices return false.
// Complexity: O(1).
func (g *Grid) SetOpen(idx int) bool {
	if idx <= 0 || idx >= len(g.state)-1 || g.state[idx] == Open {
		return false
	}
	g.state[idx] = Open
	g.open++

	return true
}

// IsOpenAt reports whether idx is Open. Out-of-range indices are never open.
func (g *Grid) IsOpenAt(idx int) bool {
	if idx < 0 || idx >= len(g.state) {
		return false
	}

	return g.state[idx] == Open
}

// StateAt returns the state of idx; out-of-range indices read as Blocked.
func (g *Grid) StateAt(idx int) SiteState {
	if g.IsOpenAt(idx) {
		return Open
	}

	return Blocked
}

// OpenCount returns the number of open real sites.
func (g *Grid) OpenCount() int {
	return g.open
}
