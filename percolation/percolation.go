package percolation

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/percolation/grid"
	"github.com/katalvlaran/percolation/unionfind"
)

// Percolation is an N×N percolation system. All sites start blocked.
type Percolation struct {
	grid *grid.Grid
	uf   *unionfind.UF

	// reachesBottom[r] is true when the component rooted at r holds an
	// open bottom-row site. Only entries at current roots are meaningful.
	reachesBottom []bool

	sink Sink
}

// New creates an n×n system with every site blocked.
// Returns ErrInvalidDimension if n ≤ 0.
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Percolation, error) {
	cfg := config{sink: nopSink{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := grid.New(n)
	if err != nil {
		return nil, err
	}
	uf, err := unionfind.New(g.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	p := &Percolation{
		grid:          g,
		uf:            uf,
		reachesBottom: make([]bool, g.Size()),
		sink:          cfg.sink,
	}
	p.reachesBottom[g.Bottom()] = true
	p.sink.Created(n)

	return p, nil
}

// N returns the side length.
func (p *Percolation) N() int {
	return p.grid.N()
}

// OpenCount returns the number of open sites.
func (p *Percolation) OpenCount() int {
	return p.grid.OpenCount()
}

// Open opens site (row, col) and connects it to its open neighbours.
// Opening an already open site changes nothing. Out-of-range coordinates
// return a *grid.CoordinateError and leave the system untouched.
//
// Steps:
//  1. Validate (row, col) and translate to an index.
//  2. Mark the site open; stop here if it already was.
//  3. Union with every in-bounds open neighbour (N, E, S, W).
//  4. Row 1: union with the top sentinel.
//  5. If the component is now full and reaches row N, union it with the
//     bottom sentinel.
//
// Complexity: O(α(N²)) amortized.
func (p *Percolation) Open(row, col int) error {
	idx, err := p.grid.Index(row, col)
	if err != nil {
		return err
	}
	p.sink.Opened(row, col)
	if !p.grid.SetOpen(idx) {
		return nil
	}

	if p.grid.IsBottomRow(row) {
		p.reachesBottom[idx] = true
	}
	for _, d := range p.grid.NeighborOffsets() {
		nr, nc := row+d[0], col+d[1]
		if !p.grid.InBounds(nr, nc) {
			continue
		}
		nidx, _ := p.grid.Index(nr, nc)
		if !p.grid.IsOpenAt(nidx) {
			continue
		}
		if err := p.join(idx, nidx); err != nil {
			return err
		}
	}
	if p.grid.IsTopRow(row) {
		if err := p.join(p.grid.Top(), idx); err != nil {
			return err
		}
	}

	full, err := p.connected(p.grid.Top(), idx)
	if err != nil || !full {
		return err
	}
	root, err := p.root(idx)
	if err != nil {
		return err
	}
	if p.reachesBottom[root] {
		return p.join(idx, p.grid.Bottom())
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Complexity: O(1).
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	idx, err := p.grid.Index(row, col)
	if err != nil {
		return false, err
	}

	return p.grid.IsOpenAt(idx), nil
}

// IsFull reports whether site (row, col) is connected to the top row
// through open sites.
// Complexity: O(α(N²)) amortized.
func (p *Percolation) IsFull(row, col int) (bool, error) {
	idx, err := p.grid.Index(row, col)
	if err != nil {
		return false, err
	}

	return p.connected(p.grid.Top(), idx)
}

// Percolates reports whether an open path joins row 1 to row N.
// Complexity: O(α(N²)) amortized.
func (p *Percolation) Percolates() bool {
	ok, _ := p.uf.Connected(p.grid.Top(), p.grid.Bottom())

	return ok
}

// ClusterSizes returns the sizes of the 4-connected open regions, largest
// first. It rescans the grid and is meant for reporting.
// Complexity: O(N²).
func (p *Percolation) ClusterSizes() []int {
	clusters := p.grid.OpenClusters()
	sizes := make([]int, len(clusters))
	for i, c := range clusters {
		sizes[i] = len(c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// Render draws the grid: '#' blocked, '.' open, '~' full.
func (p *Percolation) Render(w io.Writer) error {
	return p.grid.Render(w, func(row, col int) bool {
		full, _ := p.IsFull(row, col)
		return full
	})
}

// join unions a and b and carries the reaches-bottom flag to the new root.
func (p *Percolation) join(a, b int) error {
	ra, err := p.root(a)
	if err != nil {
		return err
	}
	rb, err := p.root(b)
	if err != nil {
		return err
	}
	if ra == rb {
		return nil
	}
	bottom := p.reachesBottom[ra] || p.reachesBottom[rb]
	if err := p.uf.Union(ra, rb); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	r, err := p.root(a)
	if err != nil {
		return err
	}
	p.reachesBottom[r] = bottom

	return nil
}

func (p *Percolation) root(i int) (int, error) {
	r, err := p.uf.Find(i)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return r, nil
}

func (p *Percolation) connected(a, b int) (bool, error) {
	ok, err := p.uf.Connected(a, b)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return ok, nil
}
