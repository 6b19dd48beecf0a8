package percolation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/grid"
	"github.com/katalvlaran/percolation/percolation"
)

// recordingSink keeps every event it receives.
type recordingSink struct {
	created []int
	opened  [][2]int
}

func (s *recordingSink) Created(n int)       { s.created = append(s.created, n) }
func (s *recordingSink) Opened(row, col int) { s.opened = append(s.opened, [2]int{row, col}) }

// mustNew builds an engine or fails the test.
func mustNew(t *testing.T, n int, opts ...percolation.Option) *percolation.Percolation {
	t.Helper()
	p, err := percolation.New(n, opts...)
	require.NoError(t, err)

	return p
}

// openAll opens coords in order.
func openAll(t *testing.T, p *percolation.Percolation, coords ...[2]int) {
	t.Helper()
	for _, rc := range coords {
		require.NoError(t, p.Open(rc[0], rc[1]), "Open(%d,%d)", rc[0], rc[1])
	}
}

func isFull(t *testing.T, p *percolation.Percolation, row, col int) bool {
	t.Helper()
	full, err := p.IsFull(row, col)
	require.NoError(t, err)

	return full
}

func TestNew_InvalidDimension(t *testing.T) {
	for _, n := range []int{0, -3} {
		p, err := percolation.New(n)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, percolation.ErrInvalidDimension)
		assert.ErrorIs(t, err, grid.ErrInvalidDimension)
	}
}

func TestFresh_NothingOpen(t *testing.T) {
	for _, n := range []int{2, 3, 10} {
		p := mustNew(t, n)
		assert.False(t, p.Percolates(), "n=%d", n)
		assert.Equal(t, 0, p.OpenCount())
		for row := 1; row <= n; row++ {
			for col := 1; col <= n; col++ {
				open, err := p.IsOpen(row, col)
				require.NoError(t, err)
				assert.False(t, open)
				assert.False(t, isFull(t, p, row, col), "never-opened site (%d,%d) is full", row, col)
			}
		}
	}
}

func TestOpen_ThenIsOpen(t *testing.T) {
	const n = 4
	p := mustNew(t, n)
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			require.NoError(t, p.Open(row, col))
			open, err := p.IsOpen(row, col)
			require.NoError(t, err)
			assert.True(t, open, "(%d,%d)", row, col)
		}
	}
	assert.Equal(t, n*n, p.OpenCount())
	assert.True(t, p.Percolates())
}

func TestSingleSite(t *testing.T) {
	p := mustNew(t, 1)
	assert.False(t, p.Percolates())
	openAll(t, p, [2]int{1, 1})
	assert.True(t, p.Percolates())
	assert.True(t, isFull(t, p, 1, 1))
}

func TestTwoByTwo(t *testing.T) {
	t.Run("Vertical", func(t *testing.T) {
		p := mustNew(t, 2)
		openAll(t, p, [2]int{1, 1}, [2]int{2, 1})
		assert.True(t, p.Percolates())
	})
	t.Run("VerticalBottomFirst", func(t *testing.T) {
		p := mustNew(t, 2)
		openAll(t, p, [2]int{2, 1})
		assert.False(t, p.Percolates())
		assert.False(t, isFull(t, p, 2, 1))
		openAll(t, p, [2]int{1, 1})
		assert.True(t, p.Percolates())
		assert.True(t, isFull(t, p, 2, 1))
	})
	t.Run("Diagonal", func(t *testing.T) {
		p := mustNew(t, 2)
		openAll(t, p, [2]int{1, 1}, [2]int{2, 2})
		assert.False(t, p.Percolates())
		assert.True(t, isFull(t, p, 1, 1))
		assert.False(t, isFull(t, p, 2, 2))
	})
}

// TestPercolates_LateMiddleLink opens both halves of a column before the
// middle site that joins them.
func TestPercolates_LateMiddleLink(t *testing.T) {
	p := mustNew(t, 3)
	openAll(t, p, [2]int{3, 2}, [2]int{1, 2})
	assert.False(t, p.Percolates())
	openAll(t, p, [2]int{2, 2})
	assert.True(t, p.Percolates())
	for row := 1; row <= 3; row++ {
		assert.True(t, isFull(t, p, row, 2))
	}
}

func TestOpen_Idempotent(t *testing.T) {
	seq := [][2]int{{1, 2}, {2, 2}, {3, 3}, {2, 3}}

	once := mustNew(t, 3)
	openAll(t, once, seq...)

	twice := mustNew(t, 3)
	for _, rc := range seq {
		openAll(t, twice, rc, rc)
	}

	assert.Equal(t, once.OpenCount(), twice.OpenCount())
	assert.Equal(t, once.Percolates(), twice.Percolates())
	for row := 1; row <= 3; row++ {
		for col := 1; col <= 3; col++ {
			o1, _ := once.IsOpen(row, col)
			o2, _ := twice.IsOpen(row, col)
			assert.Equal(t, o1, o2, "IsOpen(%d,%d)", row, col)
			assert.Equal(t, isFull(t, once, row, col), isFull(t, twice, row, col), "IsFull(%d,%d)", row, col)
		}
	}
}

func TestCoordinateOutOfRange(t *testing.T) {
	const n = 4
	p := mustNew(t, n)
	bad := [][2]int{{0, 1}, {n + 1, 1}, {1, 0}, {1, n + 1}}

	for _, rc := range bad {
		err := p.Open(rc[0], rc[1])
		require.ErrorIs(t, err, percolation.ErrCoordinateOutOfRange)
		var ce *grid.CoordinateError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, rc[0], ce.Row)
		assert.Equal(t, rc[1], ce.Col)
		assert.Equal(t, n, ce.N)

		_, err = p.IsOpen(rc[0], rc[1])
		assert.ErrorIs(t, err, percolation.ErrCoordinateOutOfRange)
		_, err = p.IsFull(rc[0], rc[1])
		assert.ErrorIs(t, err, percolation.ErrCoordinateOutOfRange)
	}
	assert.Equal(t, 0, p.OpenCount(), "rejected calls must not mutate state")
	assert.False(t, p.Percolates())
}

// TestBackwash builds a bottom-row component that never reaches the top
// alongside a percolating column.
//
//	. # # #
//	. # # #
//	. # # .
//	. # . .
func TestBackwash(t *testing.T) {
	p := mustNew(t, 4)
	openAll(t, p, [2]int{4, 3}, [2]int{4, 4}, [2]int{3, 4})
	openAll(t, p, [2]int{1, 1}, [2]int{2, 1}, [2]int{3, 1}, [2]int{4, 1})
	require.True(t, p.Percolates())

	for _, rc := range [][2]int{{4, 3}, {4, 4}, {3, 4}} {
		assert.False(t, isFull(t, p, rc[0], rc[1]), "backwash at (%d,%d)", rc[0], rc[1])
	}
	for row := 1; row <= 4; row++ {
		assert.True(t, isFull(t, p, row, 1))
	}

	// Joining the bottom component to the top makes it full, correctly.
	openAll(t, p, [2]int{4, 2})
	assert.True(t, isFull(t, p, 3, 4))
}

func TestSink(t *testing.T) {
	sink := &recordingSink{}
	p := mustNew(t, 3, percolation.WithSink(sink))
	openAll(t, p, [2]int{1, 1}, [2]int{1, 1}, [2]int{2, 1})
	_ = p.Open(9, 9)

	assert.Equal(t, []int{3}, sink.created)
	assert.Equal(t, [][2]int{{1, 1}, {1, 1}, {2, 1}}, sink.opened)
}

func TestWithSink_NilPanics(t *testing.T) {
	assert.Panics(t, func() { percolation.WithSink(nil) })
}

func TestRenderAndClusters(t *testing.T) {
	p := mustNew(t, 3)
	openAll(t, p, [2]int{1, 1}, [2]int{2, 1}, [2]int{3, 3}, [2]int{2, 3})

	var sb strings.Builder
	require.NoError(t, p.Render(&sb))
	assert.Equal(t, "~##\n~#.\n##.\n", sb.String())
	assert.Equal(t, []int{2, 2}, p.ClusterSizes())
}
