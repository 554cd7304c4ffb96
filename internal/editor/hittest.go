package editor

import (
	"math"

	"ship-editor/pkg/geometry"
)

// Pixel thresholds for pointer hit-testing.
const (
	// GrabRadiusPx is how close, in pixels, a press must land to a vertex
	// handle to grab it.
	GrabRadiusPx = 10.0
	// EdgeThresholdPx is how close, in pixels, an add-vertex press must
	// land to an edge to insert on it.
	EdgeThresholdPx = 15.0
)

// Sentinels for "nothing hit".
const (
	NoLayer  = -1
	NoVertex = -1
)

// hitVertex returns the lowest-index vertex of the layer whose handle
// contains the pixel position, or NoVertex.
func hitVertex(l *Layer, px geometry.Point2D, view *View) int {
	grabSq := GrabRadiusPx * GrabRadiusPx
	for i, v := range l.Vertices {
		if geometry.SquaredDistance(px, view.RelativeToPixel(v)) <= grabSq {
			return i
		}
	}
	return NoVertex
}

// hitLayer returns the index of the topmost layer containing the
// shape-relative point, or NoLayer. Index 0 is tested first, so overlap
// resolves in favor of the layer drawn on top. A bounding-box check
// rejects layers before the full crossing test runs.
func hitLayer(shapes ShapeSet, rel geometry.Point2D) int {
	for i, l := range shapes {
		if !geometry.BoundingBox(l.Vertices).Contains(rel) {
			continue
		}
		if geometry.PointInPolygon(rel, l.Vertices) {
			return i
		}
	}
	return NoLayer
}

// hitEdge returns the index of the layer edge closest to the
// shape-relative point, provided the pixel distance to it is within the
// edge threshold; otherwise geometry.NoEdge.
func hitEdge(l *Layer, rel geometry.Point2D, view *View) int {
	edge, distSq := geometry.ClosestEdge(l.Vertices, rel)
	if edge == geometry.NoEdge {
		return geometry.NoEdge
	}
	if math.Sqrt(distSq)*view.Radius() > EdgeThresholdPx {
		return geometry.NoEdge
	}
	return edge
}
