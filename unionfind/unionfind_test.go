package unionfind_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/unionfind"
)

func TestNew_InvalidSize(t *testing.T) {
	for _, m := range []int{0, -1, -100} {
		uf, err := unionfind.New(m)
		assert.Nil(t, uf)
		assert.ErrorIs(t, err, unionfind.ErrInvalidSize)
	}
}

func TestNew_Singletons(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, uf.Len())
	assert.Equal(t, 5, uf.Count())

	for i := 0; i < 5; i++ {
		root, err := uf.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, root)

		size, err := uf.SizeOf(i)
		require.NoError(t, err)
		assert.Equal(t, 1, size)
	}
}

func TestUnion_Transitive(t *testing.T) {
	uf, err := unionfind.New(6)
	require.NoError(t, err)

	require.NoError(t, uf.Union(0, 1))
	require.NoError(t, uf.Union(2, 3))
	ok, err := uf.Connected(0, 3)
	require.NoError(t, err)
	assert.False(t, ok, "0 and 3 joined before their sets were merged")

	require.NoError(t, uf.Union(1, 2))
	ok, err = uf.Connected(0, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uf.Connected(0, 5)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 3, uf.Count()) // {0,1,2,3} {4} {5}
	size, err := uf.SizeOf(3)
	require.NoError(t, err)
	assert.Equal(t, 4, size)
}

func TestUnion_Idempotent(t *testing.T) {
	uf, err := unionfind.New(3)
	require.NoError(t, err)

	require.NoError(t, uf.Union(0, 1))
	require.NoError(t, uf.Union(1, 0))
	require.NoError(t, uf.Union(0, 1))
	require.NoError(t, uf.Union(2, 2))

	assert.Equal(t, 2, uf.Count())
	size, err := uf.SizeOf(0)
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}

func TestOutOfRange(t *testing.T) {
	uf, err := unionfind.New(4)
	require.NoError(t, err)

	cases := []struct {
		name string
		call func() error
		bad  int
	}{
		{"UnionNegA", func() error { return uf.Union(-1, 0) }, -1},
		{"UnionHighB", func() error { return uf.Union(0, 4) }, 4},
		{"ConnectedHighA", func() error { _, err := uf.Connected(7, 0); return err }, 7},
		{"ConnectedNegB", func() error { _, err := uf.Connected(0, -2); return err }, -2},
		{"Find", func() error { _, err := uf.Find(4); return err }, 4},
		{"SizeOf", func() error { _, err := uf.SizeOf(-1); return err }, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.ErrorIs(t, err, unionfind.ErrElementOutOfRange)

			var re *unionfind.RangeError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tc.bad, re.Element)
			assert.Equal(t, 4, re.Size)
		})
	}

	// A rejected Union must not have merged anything.
	assert.Equal(t, 4, uf.Count())
}

// TestAgainstNaiveLabels cross-checks the forest against a quick-find
// labelling under a deterministic random union sequence.
func TestAgainstNaiveLabels(t *testing.T) {
	const m = 200
	r := rand.New(rand.NewSource(7))
	uf, err := unionfind.New(m)
	require.NoError(t, err)

	label := make([]int, m)
	for i := range label {
		label[i] = i
	}
	relabel := func(from, to int) {
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}

	for step := 0; step < 150; step++ {
		a, b := r.Intn(m), r.Intn(m)
		require.NoError(t, uf.Union(a, b))
		if label[a] != label[b] {
			relabel(label[b], label[a])
		}

		for q := 0; q < 20; q++ {
			x, y := r.Intn(m), r.Intn(m)
			got, err := uf.Connected(x, y)
			require.NoError(t, err)
			require.Equal(t, label[x] == label[y], got, "step %d: Connected(%d,%d)", step, x, y)
		}
	}

	distinct := make(map[int]struct{})
	for _, l := range label {
		distinct[l] = struct{}{}
	}
	assert.Equal(t, len(distinct), uf.Count())
}
