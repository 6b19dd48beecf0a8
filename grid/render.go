package grid

import (
	"bufio"
	"io"
)

// Glyphs used by Render.
const (
	GlyphBlocked = '#'
	GlyphOpen    = '.'
	GlyphFull    = '~'
)

// Render writes the grid as N lines of N glyphs: GlyphBlocked for blocked
// sites, GlyphOpen for open sites, GlyphFull where full(row, col) is true.
// A nil full draws every open site as GlyphOpen.
// Complexity: O(N²).
func (g *Grid) Render(w io.Writer, full func(row, col int) bool) error {
	bw := bufio.NewWriter(w)
	for row := 1; row <= g.n; row++ {
		for col := 1; col <= g.n; col++ {
			glyph := byte(GlyphBlocked)
			if g.state[g.index(row, col)] == Open {
				glyph = GlyphOpen
				if full != nil && full(row, col) {
					glyph = GlyphFull
				}
			}
			if err := bw.WriteByte(glyph); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
