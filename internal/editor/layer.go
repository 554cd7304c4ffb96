// Package editor implements the editable multi-layer polygon model and the
// direct-manipulation interaction logic that mutates it.
package editor

import (
	"fmt"
	"math"

	"ship-editor/internal/catalog"
	"ship-editor/pkg/colorutil"
	"ship-editor/pkg/geometry"
)

// MinVertices is the smallest vertex count a layer may be reduced to.
// Deletions that would go below this are rejected.
const MinVertices = 3

// Layer is one editable closed polygon with its own fill and stroke style.
// The last vertex implicitly connects back to the first. Vertices are in
// shape-relative coordinates and are referenced by positional index only.
type Layer struct {
	Vertices []geometry.Point2D `json:"vertices"`
	Fill     colorutil.RGB      `json:"fill"`
	Stroke   colorutil.RGB      `json:"stroke"`
	StrokeW  float64            `json:"strokeW"`
}

// NewLayerFromDefinition deep-copies a catalog definition's geometry and
// style into a fresh editable layer. The definition is never aliased, so
// later edits cannot leak back into the catalog.
func NewLayerFromDefinition(d *catalog.Definition) *Layer {
	verts := make([]geometry.Point2D, len(d.VertexData))
	copy(verts, d.VertexData)
	return &Layer{
		Vertices: verts,
		Fill:     d.FillColor,
		Stroke:   d.StrokeColor,
		StrokeW:  d.StrokeW,
	}
}

// NewBlankLayer returns a small default diamond. A fresh layer needs edges
// from the start so it can be grabbed and grown with add-vertex mode.
func NewBlankLayer() *Layer {
	return &Layer{
		Vertices: []geometry.Point2D{
			geometry.NewPoint2D(0, -0.5),
			geometry.NewPoint2D(0.5, 0),
			geometry.NewPoint2D(0, 0.5),
			geometry.NewPoint2D(-0.5, 0),
		},
		Fill:    colorutil.NewRGB(128, 128, 128),
		Stroke:  colorutil.NewRGB(230, 230, 230),
		StrokeW: 0.04,
	}
}

// Clone returns a fully independent copy of the layer.
func (l *Layer) Clone() *Layer {
	verts := make([]geometry.Point2D, len(l.Vertices))
	copy(verts, l.Vertices)
	c := *l
	c.Vertices = verts
	return &c
}

// Validate checks the layer for structural corruption: non-finite vertex
// coordinates or a non-finite/negative stroke weight.
func (l *Layer) Validate() error {
	if l == nil {
		return fmt.Errorf("nil layer")
	}
	for i, v := range l.Vertices {
		if !v.IsFinite() {
			return fmt.Errorf("vertex %d is not finite", i)
		}
	}
	if math.IsNaN(l.StrokeW) || math.IsInf(l.StrokeW, 0) || l.StrokeW < 0 {
		return fmt.Errorf("invalid stroke weight %v", l.StrokeW)
	}
	return nil
}

// ShapeSet is the ordered list of layers forming the current design.
// Index 0 is topmost for hit-testing; painting iterates in reverse so the
// topmost layer is drawn last.
type ShapeSet []*Layer

// Clone returns a deep, fully independent copy of the shape set.
func (s ShapeSet) Clone() ShapeSet {
	out := make(ShapeSet, len(s))
	for i, l := range s {
		out[i] = l.Clone()
	}
	return out
}

// Validate checks every layer in the set.
func (s ShapeSet) Validate() error {
	for i, l := range s {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return nil
}
