package monitor

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Point is a vertex of a trend polyline in surface coordinates, with the
// origin at the top-left and y growing downwards.
type Point struct {
	X, Y float64
}

// Polyline maps samples onto a width x height surface.
//
// Sample i sits at x = i * width/(N-1) and a value v at y = height - v*height/100,
// so 0 lands on the bottom edge and 100 on the top edge. Values are not
// clamped; out-of-range samples map outside the surface.
//
// Returns nil when there are fewer than two samples or the surface is empty.
func Polyline(samples []float64, width, height float64) []Point {
	n := len(samples)
	if n < 2 || width <= 0 || height <= 0 {
		return nil
	}

	dx := width / float64(n-1)
	points := make([]Point, n)
	for i, v := range samples {
		points[i] = Point{
			X: float64(i) * dx,
			Y: height - v*height/100,
		}
	}
	return points
}

// TrendRenderer draws a sample series as a line graph. It holds no state
// beyond its options, so one renderer can draw any number of series.
type TrendRenderer struct {
	// Clamp limits samples to [0, 100] before mapping.
	Clamp bool
	// Color is the line color. Empty uses ColorLine.
	Color lipgloss.Color
}

// Points returns the polyline for samples, clamping first when enabled.
func (r TrendRenderer) Points(samples []float64, width, height float64) []Point {
	if r.Clamp {
		clamped := make([]float64, len(samples))
		for i, v := range samples {
			clamped[i] = clampPercent(v)
		}
		samples = clamped
	}
	return Polyline(samples, width, height)
}

// Rasterize draws samples onto a braille canvas of cols x rows cells and
// returns the unstyled rows. The polyline spans the dot grid edge to edge:
// the first sample sits in the leftmost dot column and the last in the
// rightmost. With fewer than two samples the canvas stays blank.
func (r TrendRenderer) Rasterize(samples []float64, cols, rows int) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	canvas := newBrailleCanvas(cols, rows)
	maxX := float64(canvas.dotWidth() - 1)
	maxY := float64(canvas.dotHeight() - 1)

	points := r.Points(samples, maxX, maxY)
	for i := 1; i < len(points); i++ {
		a, b, ok := clipSegment(points[i-1], points[i], maxX, maxY)
		if !ok {
			continue
		}
		canvas.line(roundInt(a.X), roundInt(a.Y), roundInt(b.X), roundInt(b.Y))
	}

	return canvas.lines()
}

// Render returns the graph as a styled, newline-separated block.
func (r TrendRenderer) Render(samples []float64, cols, rows int) string {
	lines := r.Rasterize(samples, cols, rows)
	if lines == nil {
		return ""
	}

	color := r.Color
	if color == "" {
		color = ColorLine
	}
	style := lipgloss.NewStyle().Foreground(color).Background(ColorSurfaceBg)

	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// clipSegment clips the segment a-b to the rectangle [0,maxX] x [0,maxY]
// (Liang-Barsky). ok is false when nothing of the segment is visible.
func clipSegment(a, b Point, maxX, maxY float64) (Point, Point, bool) {
	if math.IsNaN(a.Y) || math.IsNaN(b.Y) || math.IsInf(a.Y, 0) || math.IsInf(b.Y, 0) {
		return a, b, false
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, a.X},
		{dx, maxX - a.X},
		{-dy, a.Y},
		{dy, maxY - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	return Point{X: a.X + t0*dx, Y: a.Y + t0*dy},
		Point{X: a.X + t1*dx, Y: a.Y + t1*dy},
		true
}

// clampPercent limits v to [0, 100]. NaN becomes 0.
func clampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
