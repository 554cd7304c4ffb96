// Package export serializes a shape set as Go source code.
package export

import (
	"fmt"
	"regexp"
	"strings"

	"ship-editor/internal/editor"
	"ship-editor/pkg/geometry"
)

var nonIdentRe = regexp.MustCompile(`[^A-Za-z0-9]+`)

// identifier converts a design name to a lowerCamelCase Go identifier.
func identifier(name string) string {
	parts := nonIdentRe.Split(name, -1)
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(strings.ToLower(part[:1]))
		} else {
			b.WriteString(strings.ToUpper(part[:1]))
		}
		b.WriteString(part[1:])
	}
	if b.Len() == 0 {
		return "design"
	}
	return b.String()
}

// GoSource renders the shape set as a Go variable declaration that can be
// pasted into a source file. Layers appear topmost-first, matching the
// editor's own ordering. Vertex coordinates are printed with %g, which
// round-trips float64 values exactly.
func GoSource(name string, size float64, shapes editor.ShapeSet) string {
	var all []geometry.Point2D
	for _, l := range shapes {
		all = append(all, l.Vertices...)
	}
	box := geometry.BoundingBox(all)
	center := box.Center()

	var b strings.Builder
	fmt.Fprintf(&b, "// %s, nominal size %g. Bounds %g x %g, centered at (%g, %g).\n",
		name, size, box.Width, box.Height, center.X, center.Y)
	fmt.Fprintf(&b, "var %s = []*editor.Layer{\n", identifier(name))
	for _, l := range shapes {
		b.WriteString("\t{\n")
		b.WriteString("\t\tVertices: []geometry.Point2D{\n")
		for _, v := range l.Vertices {
			fmt.Fprintf(&b, "\t\t\t{X: %g, Y: %g},\n", v.X, v.Y)
		}
		b.WriteString("\t\t},\n")
		fmt.Fprintf(&b, "\t\tFill:    colorutil.NewRGB(%d, %d, %d),\n", l.Fill.R, l.Fill.G, l.Fill.B)
		fmt.Fprintf(&b, "\t\tStroke:  colorutil.NewRGB(%d, %d, %d),\n", l.Stroke.R, l.Stroke.G, l.Stroke.B)
		fmt.Fprintf(&b, "\t\tStrokeW: %g,\n", l.StrokeW)
		b.WriteString("\t},\n")
	}
	b.WriteString("}\n")
	return b.String()
}
