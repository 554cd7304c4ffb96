package editor

import (
	"testing"

	"ship-editor/pkg/geometry"
)

func TestStraightenAxisSnap(t *testing.T) {
	l := &Layer{Vertices: []geometry.Point2D{
		pt(0.03, -1), pt(1, 0.7), pt(-1, 0.72),
	}}
	Straighten(l, 0.1)
	if l.Vertices[0].X != 0 {
		t.Fatalf("near-axis X = %v, want snapped to 0", l.Vertices[0].X)
	}
	if l.Vertices[0].Y != -1 {
		t.Fatalf("Y coordinate disturbed: %v", l.Vertices[0].Y)
	}
}

func TestStraightenMirrorPairing(t *testing.T) {
	// v1 and v2 are an approximate mirror across the vertical axis.
	l := &Layer{Vertices: []geometry.Point2D{
		pt(0, -1), pt(0.5, 0.7), pt(-0.54, 0.72),
	}}
	Straighten(l, 0.1)

	if l.Vertices[1] != pt(0.52, 0.71) {
		t.Fatalf("right wing = %v, want (0.52, 0.71)", l.Vertices[1])
	}
	if l.Vertices[2] != pt(-0.52, 0.71) {
		t.Fatalf("left wing = %v, want (-0.52, 0.71)", l.Vertices[2])
	}
}

func TestStraightenHorizontalMirror(t *testing.T) {
	// Mirrored across the horizontal axis: x shared, y opposed.
	l := &Layer{Vertices: []geometry.Point2D{
		pt(-1, 0), pt(0.7, 0.5), pt(0.72, -0.54),
	}}
	Straighten(l, 0.1)

	if l.Vertices[1] != pt(0.71, 0.52) {
		t.Fatalf("upper vertex = %v, want (0.71, 0.52)", l.Vertices[1])
	}
	if l.Vertices[2] != pt(0.71, -0.52) {
		t.Fatalf("lower vertex = %v, want (0.71, -0.52)", l.Vertices[2])
	}
}

func TestStraightenIdempotent(t *testing.T) {
	l := &Layer{Vertices: []geometry.Point2D{
		pt(0.03, -1), pt(0.5, 0.7), pt(-0.54, 0.72), pt(0.7, -0.3), pt(0.68, 0.26),
	}}
	first := Straighten(l, 0.1)
	if first == 0 {
		t.Fatal("expected adjustments on the first pass")
	}
	if again := Straighten(l, 0.1); again != 0 {
		t.Fatalf("second pass made %d adjustments on straightened geometry", again)
	}
	if third := Straighten(l, 0.1); third != 0 {
		t.Fatalf("third pass made %d adjustments", third)
	}
}

func TestStraightenIgnoresNearAxisPairs(t *testing.T) {
	// Two points hugging the horizontal axis must not be treated as a
	// mirror pair even though their y values sum to near zero.
	l := &Layer{Vertices: []geometry.Point2D{
		pt(0.5, 0.01), pt(0.5, -0.01), pt(-1, 1),
	}}
	Straighten(l, 0.1)
	if l.Vertices[0].Y != 0 || l.Vertices[1].Y != 0 {
		t.Fatal("near-axis y values should snap to zero in pass one")
	}
	if l.Vertices[0].X != 0.5 || l.Vertices[1].X != 0.5 {
		t.Fatalf("near-axis points were mirror-paired: %v %v", l.Vertices[0], l.Vertices[1])
	}
}

func TestStraightenGreedyFirstMatchWins(t *testing.T) {
	// Three mutually compatible vertices: the scan pairs the first two and
	// leaves the third untouched.
	l := &Layer{Vertices: []geometry.Point2D{
		pt(0.5, 0.7), pt(-0.5, 0.7), pt(-0.5, 0.72),
	}}
	Straighten(l, 0.1)
	if l.Vertices[2] != pt(-0.5, 0.72) {
		t.Fatalf("third vertex consumed by greedy pairing: %v", l.Vertices[2])
	}
}
