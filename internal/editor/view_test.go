package editor

import (
	"math"
	"testing"
)

func TestZoomRoundTrip(t *testing.T) {
	v := NewView()
	before := v.PixelsPerUnit()
	for i := 0; i < 5; i++ {
		v.ZoomIn()
	}
	if v.PixelsPerUnit() <= before {
		t.Fatal("zooming in did not increase pixels per unit")
	}
	for i := 0; i < 5; i++ {
		v.ZoomOut()
	}
	if diff := math.Abs(v.PixelsPerUnit() - before); diff > 1e-9 {
		t.Fatalf("pixels per unit drifted by %v after symmetric zoom", diff)
	}
}

func TestZoomClamping(t *testing.T) {
	v := NewView()
	for i := 0; i < 50; i++ {
		v.ZoomOut()
	}
	if got := v.ZoomSize(); got != MinZoomSize {
		t.Errorf("zoom floor = %v, want %v", got, MinZoomSize)
	}
	for i := 0; i < 50; i++ {
		v.ZoomIn()
	}
	if got := v.ZoomSize(); got != MaxZoomSize {
		t.Errorf("zoom ceiling = %v, want %v", got, MaxZoomSize)
	}
}

func TestSetZoomSize(t *testing.T) {
	v := NewView()
	v.SetZoomSize(5000)
	if got := v.ZoomSize(); got != MaxZoomSize {
		t.Errorf("SetZoomSize(5000) = %v, want clamped %v", got, MaxZoomSize)
	}
	v.SetZoomSize(-1)
	if got := v.ZoomSize(); got != DefaultZoomSize {
		t.Errorf("SetZoomSize(-1) = %v, want default %v", got, DefaultZoomSize)
	}
}

func TestPixelRelativeRoundTrip(t *testing.T) {
	v := NewView()
	v.SetNominalSize(60)
	rel := v.PixelToRelative(v.RelativeToPixel(pt(0.25, -0.75)))
	if math.Abs(rel.X-0.25) > 1e-12 || math.Abs(rel.Y+0.75) > 1e-12 {
		t.Fatalf("round trip produced %v", rel)
	}
}

func TestRadiusScalesWithNominalSize(t *testing.T) {
	v := NewView()
	v.SetNominalSize(50)
	small := v.Radius()
	v.SetNominalSize(100)
	if big := v.Radius(); math.Abs(big-2*small) > 1e-9 {
		t.Fatalf("radius at size 100 = %v, want double %v", big, small)
	}
}
