package grid

// OpenClusters finds every 4-connected region of open real sites.
// Each cluster is a slice of site indices in BFS discovery order; clusters
// appear in row-major order of their first site. Sentinels are ignored.
//
// To convert an index back to (row, col), use Coordinate.
//
// Time:   O(N²·4).
// Memory: O(N²) for visited flags and output.
func (g *Grid) OpenClusters() [][]int {
	seen := make([]bool, len(g.state))
	var clusters [][]int

	for row := 1; row <= g.n; row++ {
		for col := 1; col <= g.n; col++ {
			i0 := g.index(row, col)
			if g.state[i0] != Open || seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ur, uc := g.Coordinate(queue[qi])
				for _, d := range g.neighborOffsets {
					vr, vc := ur+d[0], uc+d[1]
					if !g.InBounds(vr, vc) {
						continue
					}
					vi := g.index(vr, vc)
					if g.state[vi] == Open && !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			clusters = append(clusters, queue)
		}
	}

	return clusters
}

// Spans reports whether cluster holds a site in the top row and a site in
// the bottom row.
func (g *Grid) Spans(cluster []int) bool {
	var top, bottom bool
	for _, idx := range cluster {
		row, _ := g.Coordinate(idx)
		top = top || g.IsTopRow(row)
		bottom = bottom || g.IsBottomRow(row)
	}

	return top && bottom
}
