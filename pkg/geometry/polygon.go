package geometry

// NoEdge is the sentinel returned by ClosestEdge when a polygon has no edges
// to test (fewer than two vertices).
const NoEdge = -1

// PointInPolygon tests if a point is inside a closed polygon using ray casting.
// Returns false for degenerate polygons (fewer than 3 vertices) and for
// polygons containing malformed (non-finite) vertices.
func PointInPolygon(p Point2D, polygon []Point2D) bool {
	if len(polygon) < 3 {
		return false
	}
	for _, v := range polygon {
		if !v.IsFinite() {
			return false
		}
	}

	inside := false
	n := len(polygon)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := polygon[i], polygon[j]

		// Check if ray from p going right intersects edge pi-pj
		if ((pi.Y > p.Y) != (pj.Y > p.Y)) &&
			(p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}

	return inside
}

// SquaredDistanceToSegment returns the squared distance from p to the segment
// a-b. The projection parameter is clamped to [0,1] so endpoints are handled
// without special cases.
func SquaredDistanceToSegment(p, a, b Point2D) float64 {
	segLenSq := SquaredDistance(a, b)
	if segLenSq == 0 {
		return SquaredDistance(p, a)
	}

	t := ((p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)) / segLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := Point2D{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
	return SquaredDistance(p, closest)
}

// ClosestEdge finds the polygon edge (i, i+1 mod n) with minimum squared
// distance to p. Returns the lower edge index and that squared distance, or
// (NoEdge, 0) for polygons with fewer than 2 vertices.
func ClosestEdge(polygon []Point2D, p Point2D) (int, float64) {
	n := len(polygon)
	if n < 2 {
		return NoEdge, 0
	}

	best := NoEdge
	bestDist := 0.0
	for i := 0; i < n; i++ {
		d := SquaredDistanceToSegment(p, polygon[i], polygon[(i+1)%n])
		if best == NoEdge || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, bestDist
}
