package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille character rendering for high-resolution terminal graphs.
//
// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// Unicode braille starts at U+2800 (empty) and uses bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8

const brailleBase = '\u2800'

// brailleDots maps row/column to the bit offset for braille pattern
// [row][col] where row is 0-3 (top to bottom) and col is 0-1 (left to right)
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// brailleCanvas is a grid of braille cells addressed by dot coordinates.
// A canvas of cols x rows cells is a (cols*2) x (rows*4) dot surface with
// the origin at the top-left.
type brailleCanvas struct {
	cols, rows int
	cells      [][]rune
}

func newBrailleCanvas(cols, rows int) *brailleCanvas {
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = make([]rune, cols)
		for j := range cells[i] {
			cells[i][j] = brailleBase
		}
	}
	return &brailleCanvas{cols: cols, rows: rows, cells: cells}
}

// dotWidth and dotHeight are the surface size in dots.
func (c *brailleCanvas) dotWidth() int  { return c.cols * 2 }
func (c *brailleCanvas) dotHeight() int { return c.rows * 4 }

// set lights the dot at (x, y). Dots outside the surface are ignored.
func (c *brailleCanvas) set(x, y int) {
	if x < 0 || y < 0 || x >= c.dotWidth() || y >= c.dotHeight() {
		return
	}
	c.cells[y/4][x/2] |= rune(1) << brailleDots[y%4][x%2]
}

// line draws a segment between two dots using Bresenham's algorithm.
func (c *brailleCanvas) line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	errTerm := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errTerm
		if e2 >= dy {
			errTerm += dy
			x0 += sx
		}
		if e2 <= dx {
			errTerm += dx
			y0 += sy
		}
	}
}

// lines returns one string per cell row, top to bottom.
func (c *brailleCanvas) lines() []string {
	out := make([]string, c.rows)
	for i, row := range c.cells {
		out[i] = string(row)
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// RenderUsageBar renders a horizontal usage bar. Filled cells use the
// threshold color for percent, the rest use the muted track color.
func RenderUsageBar(width int, percent float64) string {
	if width < 1 {
		width = 1
	}

	filled := clampInt(int(clampPercent(percent)/100.0*float64(width)), width)

	fill := lipgloss.NewStyle().Foreground(MetricColor(percent)).Background(ColorSurfaceBg)
	track := lipgloss.NewStyle().Foreground(ColorTextMuted).Background(ColorSurfaceBg)

	return fill.Render(strings.Repeat("█", filled)) + track.Render(strings.Repeat("░", width-filled))
}
