package editor

import (
	"ship-editor/internal/catalog"
	"ship-editor/pkg/geometry"
)

// Zoom limits and step. zoomSize is the number of pixels the largest
// catalog design spans at the current zoom level.
const (
	MinZoomSize     = 80.0
	MaxZoomSize     = 900.0
	DefaultZoomSize = 300.0
	zoomFactor      = 1.2
)

// View maintains the zoom level and converts between shape-relative
// coordinates and canvas pixels. Pixel coordinates are measured from the
// canvas center, which is the shape origin.
type View struct {
	zoomSize    float64
	refSize     float64
	nominalSize float64
}

// NewView creates a view at the default zoom, referenced against the
// largest catalog size so every design fits inside the same pixel extent.
func NewView() *View {
	return &View{
		zoomSize:    DefaultZoomSize,
		refSize:     catalog.MaxSize(),
		nominalSize: catalog.FallbackSize,
	}
}

// ZoomIn magnifies by one step, clamped to the maximum zoom size.
func (v *View) ZoomIn() {
	v.zoomSize = clampZoom(v.zoomSize * zoomFactor)
}

// ZoomOut shrinks by one step, clamped to the minimum zoom size.
func (v *View) ZoomOut() {
	v.zoomSize = clampZoom(v.zoomSize / zoomFactor)
}

func clampZoom(z float64) float64 {
	if z < MinZoomSize {
		return MinZoomSize
	}
	if z > MaxZoomSize {
		return MaxZoomSize
	}
	return z
}

// ZoomSize returns the current zoom size in pixels.
func (v *View) ZoomSize() float64 { return v.zoomSize }

// SetZoomSize restores a saved zoom level, clamped to the valid range.
func (v *View) SetZoomSize(z float64) {
	if z <= 0 {
		z = DefaultZoomSize
	}
	v.zoomSize = clampZoom(z)
}

// SetNominalSize sets the active design's nominal size. Non-positive sizes
// fall back to the blank-design default.
func (v *View) SetNominalSize(size float64) {
	if size <= 0 {
		size = catalog.FallbackSize
	}
	v.nominalSize = size
}

// PixelsPerUnit returns the scale factor from catalog size units to pixels.
func (v *View) PixelsPerUnit() float64 {
	return v.zoomSize / v.refSize
}

// Radius returns the pixel radius of the active design: the number of
// pixels corresponding to 1.0 in shape-relative coordinates.
func (v *View) Radius() float64 {
	return v.nominalSize * v.PixelsPerUnit() / 2
}

// PixelToRelative converts a center-origin pixel position to shape-relative
// coordinates.
func (v *View) PixelToRelative(p geometry.Point2D) geometry.Point2D {
	return p.Scale(1 / v.Radius())
}

// RelativeToPixel converts shape-relative coordinates to a center-origin
// pixel position.
func (v *View) RelativeToPixel(p geometry.Point2D) geometry.Point2D {
	return p.Scale(v.Radius())
}
