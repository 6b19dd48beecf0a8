package unionfind

import "fmt"

// UF is a weighted quick-union forest with path halving.
// parent[i] == i marks a root; size[r] is only meaningful for roots.
type UF struct {
	parent []int
	size   []int
	count  int // number of disjoint sets
}

// New returns a forest of m singleton sets {0}, {1}, …, {m-1}.
// Returns ErrInvalidSize if m ≤ 0.
// Complexity: O(m) time and memory.
func New(m int) (*UF, error) {
	if m <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, m)
	}
	uf := &UF{
		parent: make([]int, m),
		size:   make([]int, m),
		count:  m,
	}
	for i := 0; i < m; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns M, the number of elements in the universe.
func (uf *UF) Len() int {
	return len(uf.parent)
}

// Count returns the current number of disjoint sets.
func (uf *UF) Count() int {
	return uf.count
}

// validate reports a *RangeError for elements outside [0, M-1].
func (uf *UF) validate(a int) error {
	if a < 0 || a >= len(uf.parent) {
		return &RangeError{Element: a, Size: len(uf.parent)}
	}

	return nil
}

// root walks to the root of a, pointing every visited node at its grandparent.
// a must already be validated.
func (uf *UF) root(a int) int {
	for uf.parent[a] != a {
		uf.parent[a] = uf.parent[uf.parent[a]]
		a = uf.parent[a]
	}

	return a
}

// Find returns the canonical representative of the set containing a.
// The representative may change after a Union.
// Complexity: O(α(M)) amortized.
func (uf *UF) Find(a int) (int, error) {
	if err := uf.validate(a); err != nil {
		return 0, err
	}

	return uf.root(a), nil
}

// Union merges the sets containing a and b. It is a no-op if they are
// already in the same set. Both elements are validated before any mutation.
// Complexity: O(α(M)) amortized.
func (uf *UF) Union(a, b int) error {
	if err := uf.validate(a); err != nil {
		return err
	}
	if err := uf.validate(b); err != nil {
		return err
	}

	ra, rb := uf.root(a), uf.root(b)
	if ra == rb {
		return nil
	}
	// Smaller tree goes under the larger root; ties hang b under a.
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.count--

	return nil
}

// Connected reports whether a and b are in the same set.
// Complexity: O(α(M)) amortized.
func (uf *UF) Connected(a, b int) (bool, error) {
	if err := uf.validate(a); err != nil {
		return false, err
	}
	if err := uf.validate(b); err != nil {
		return false, err
	}

	return uf.root(a) == uf.root(b), nil
}

// SizeOf returns the number of elements in the set containing a.
func (uf *UF) SizeOf(a int) (int, error) {
	if err := uf.validate(a); err != nil {
		return 0, err
	}

	return uf.size[uf.root(a)], nil
}
