package simulate

import "math/rand"

// Source yields coordinates to open. ok is false once the source is exhausted.
type Source interface {
	Next() (row, col int, ok bool)
}

// RandomSource draws (row, col) uniformly from [1, N]² with replacement.
// It never runs dry.
type RandomSource struct {
	n   int
	rng *rand.Rand
}

// NewRandomSource returns a RandomSource over an n×n grid. Panics on a nil rng.
func NewRandomSource(n int, rng *rand.Rand) *RandomSource {
	if rng == nil {
		panic("simulate: NewRandomSource(nil rng)")
	}

	return &RandomSource{n: n, rng: rng}
}

// Next returns the next uniform draw.
func (s *RandomSource) Next() (row, col int, ok bool) {
	return s.rng.Intn(s.n) + 1, s.rng.Intn(s.n) + 1, true
}

// PermutationSource visits every site of an n×n grid exactly once, in an
// order shuffled by rng.
type PermutationSource struct {
	n     int
	order []int
	pos   int
}

// NewPermutationSource returns a PermutationSource. Panics on a nil rng.
func NewPermutationSource(n int, rng *rand.Rand) *PermutationSource {
	if rng == nil {
		panic("simulate: NewPermutationSource(nil rng)")
	}

	return &PermutationSource{n: n, order: rng.Perm(n * n)}
}

// Next returns the next site of the permutation.
func (s *PermutationSource) Next() (row, col int, ok bool) {
	if s.pos >= len(s.order) {
		return 0, 0, false
	}
	k := s.order[s.pos]
	s.pos++

	return k/s.n + 1, k%s.n + 1, true
}

// SliceSource replays a fixed coordinate sequence.
type SliceSource struct {
	coords [][2]int
	pos    int
}

// NewSliceSource returns a SliceSource over coords. The slice is not copied.
func NewSliceSource(coords [][2]int) *SliceSource {
	return &SliceSource{coords: coords}
}

// Next returns the next stored coordinate.
func (s *SliceSource) Next() (row, col int, ok bool) {
	if s.pos >= len(s.coords) {
		return 0, 0, false
	}
	rc := s.coords[s.pos]
	s.pos++

	return rc[0], rc[1], true
}

// SourceFunc builds a fresh Source for one trial on an n×n grid.
type SourceFunc func(n int, rng *rand.Rand) Source

// Random is the SourceFunc for RandomSource.
func Random(n int, rng *rand.Rand) Source { return NewRandomSource(n, rng) }

// Permutation is the SourceFunc for PermutationSource.
func Permutation(n int, rng *rand.Rand) Source { return NewPermutationSource(n, rng) }
