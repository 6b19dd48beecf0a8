package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/percolation"
)

// BenchmarkOpenUntilPercolates opens a fixed random permutation of a
// 500×500 grid until it percolates.
// Complexity: O(N²·α(N²)).
func BenchmarkOpenUntilPercolates(b *testing.B) {
	const n = 500
	order := rand.New(rand.NewSource(42)).Perm(n * n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := percolation.New(n)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		for _, k := range order {
			_ = p.Open(k/n+1, k%n+1)
			if p.Percolates() {
				break
			}
		}
	}
}
