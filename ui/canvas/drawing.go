// Package canvas provides drawing primitives for the ship canvas.
package canvas

import (
	"image"
	"image/color"
	"math"
	"sort"

	"ship-editor/internal/editor"
	"ship-editor/pkg/colorutil"
	"ship-editor/pkg/geometry"
)

// handleSize is the side length, in pixels, of a vertex handle marker.
const handleSize = 7

// fillPolygon fills a closed polygon using a scanline algorithm. Points are
// in output-image pixel coordinates.
func fillPolygon(output *image.RGBA, points []geometry.Point2D, col color.RGBA) {
	if len(points) < 3 {
		return
	}
	bounds := output.Bounds()

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	n := len(points)
	for y := int(minY); y <= int(maxY); y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}

		// Find all x intersections with polygon edges at this y
		var xIntersections []float64
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]
			if (p1.Y <= float64(y) && p2.Y > float64(y)) ||
				(p2.Y <= float64(y) && p1.Y > float64(y)) {
				t := (float64(y) - p1.Y) / (p2.Y - p1.Y)
				xIntersections = append(xIntersections, p1.X+t*(p2.X-p1.X))
			}
		}
		sort.Float64s(xIntersections)

		// Fill between pairs of intersections
		for i := 0; i+1 < len(xIntersections); i += 2 {
			x1 := int(xIntersections[i])
			x2 := int(xIntersections[i+1])
			for x := x1; x <= x2; x++ {
				if x >= bounds.Min.X && x < bounds.Max.X {
					output.Set(x, y, col)
				}
			}
		}
	}
}

// strokePolygon outlines a closed polygon with the given line thickness.
func strokePolygon(output *image.RGBA, points []geometry.Point2D, col color.RGBA, thickness int) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		drawLine(output, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), col, thickness)
	}
}

// drawLine draws a line using Bresenham's algorithm with thickness.
func drawLine(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	bounds := output.Bounds()

	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	x, y := x1, y1

	half := thickness / 2
	for {
		for ox := -half; ox <= half; ox++ {
			for oy := -half; oy <= half; oy++ {
				px, py := x+ox, y+oy
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					output.Set(px, py, col)
				}
			}
		}

		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// drawHandle draws a square vertex handle centered at the pixel position,
// filled with the given color inside a black border.
func drawHandle(output *image.RGBA, cx, cy int, fill color.RGBA) {
	bounds := output.Bounds()
	half := handleSize / 2
	for y := cy - half; y <= cy+half; y++ {
		for x := cx - half; x <= cx+half; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
				continue
			}
			onBorder := x == cx-half || x == cx+half || y == cy-half || y == cy+half
			if onBorder {
				output.Set(x, y, colorutil.Black)
			} else {
				output.Set(x, y, fill)
			}
		}
	}
}

// drawCentroidMark draws a small cross at the pixel position, marking the
// selected layer's centroid.
func drawCentroidMark(output *image.RGBA, cx, cy int) {
	bounds := output.Bounds()
	const arm = 5
	for o := -arm; o <= arm; o++ {
		if cx+o >= bounds.Min.X && cx+o < bounds.Max.X && cy >= bounds.Min.Y && cy < bounds.Max.Y {
			output.Set(cx+o, cy, colorutil.Magenta)
		}
		if cx >= bounds.Min.X && cx < bounds.Max.X && cy+o >= bounds.Min.Y && cy+o < bounds.Max.Y {
			output.Set(cx, cy+o, colorutil.Magenta)
		}
	}
}

// drawProcedural renders the non-editable procedural design as a spiral of
// dots. It is display-only; no interaction reaches it.
func drawProcedural(output *image.RGBA, d proceduralStyle, cx, cy, radius float64) {
	bounds := output.Bounds()
	const goldenAngle = 2.399963229728653

	for i := 0; i < 400; i++ {
		frac := float64(i) / 400
		angle := float64(i) * goldenAngle
		r := radius * math.Sqrt(frac)
		x := int(cx + r*math.Cos(angle))
		y := int(cy + r*math.Sin(angle))

		col := d.Stroke
		if i%3 == 0 {
			col = d.Fill
		}
		for ox := -1; ox <= 1; ox++ {
			for oy := -1; oy <= 1; oy++ {
				px, py := x+ox, y+oy
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					output.Set(px, py, col)
				}
			}
		}
	}
}

// proceduralStyle carries the colors used by drawProcedural.
type proceduralStyle struct {
	Fill   color.RGBA
	Stroke color.RGBA
}

// strokeThickness converts a layer's relative stroke weight to a pixel line
// thickness at the current radius, with a 2 pixel floor so thin strokes
// stay visible.
func strokeThickness(l *editor.Layer, radius float64) int {
	t := int(l.StrokeW * radius)
	if t < 2 {
		t = 2
	}
	return t
}
