package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/unionfind"
)

// BenchmarkUnionConnected measures a mixed workload of random unions and
// connectivity queries on a 1,000,002-element forest (a 1000×1000 grid
// plus two sentinels).
// Complexity: O(α(M)) per operation.
func BenchmarkUnionConnected(b *testing.B) {
	const m = 1000*1000 + 2
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, 1<<16)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(m), r.Intn(m)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		uf, err := unionfind.New(m)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		b.StartTimer()
		for j, p := range pairs {
			if j%2 == 0 {
				_ = uf.Union(p[0], p[1])
			} else {
				_, _ = uf.Connected(p[0], p[1])
			}
		}
	}
}
