// Package canvas provides the interactive ship drawing surface.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/colornames"

	"ship-editor/internal/app"
	"ship-editor/internal/editor"
	"ship-editor/pkg/colorutil"
	"ship-editor/pkg/geometry"
)

// background is the deep-space canvas color.
var background = colornames.Midnightblue

// ShipCanvas renders the current shape set and feeds pointer events into
// the editor session. The widget's center is the shape origin.
type ShipCanvas struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster

	// shiftHeld mirrors the keyboard modifier for drag events, which do
	// not carry modifier information themselves.
	shiftHeld bool
}

// NewShipCanvas creates the canvas and subscribes it to redraw events.
func NewShipCanvas(state *app.State) *ShipCanvas {
	sc := &ShipCanvas{state: state}

	sc.raster = fynecanvas.NewRaster(sc.draw)
	sc.raster.ScaleMode = fynecanvas.ImageScalePixels
	sc.raster.SetMinSize(fyne.NewSize(400, 400))
	sc.ExtendBaseWidget(sc)

	redraw := func(interface{}) { sc.Refresh() }
	for _, ev := range []app.EventType{
		app.EventDesignLoaded,
		app.EventShapeChanged,
		app.EventSelectionChanged,
		app.EventZoomChanged,
		app.EventModeChanged,
	} {
		state.On(ev, redraw)
	}
	return sc
}

// CreateRenderer implements fyne.Widget.
func (sc *ShipCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sc.raster)
}

// SetShiftHeld records the shift key state for drag constraint handling.
func (sc *ShipCanvas) SetShiftHeld(held bool) {
	sc.shiftHeld = held
}

// toCenterPx converts a widget-local event position to center-origin pixel
// coordinates.
func (sc *ShipCanvas) toCenterPx(pos fyne.Position) geometry.Point2D {
	size := sc.Size()
	return geometry.Point2D{
		X: float64(pos.X) - float64(size.Width)/2,
		Y: float64(pos.Y) - float64(size.Height)/2,
	}
}

// MouseDown feeds a press into the interaction state machine.
func (sc *ShipCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	shift := sc.shiftHeld || ev.Modifier&fyne.KeyModifierShift != 0
	sc.state.Session.Press(sc.toCenterPx(ev.Position), shift)
	sc.state.Emit(app.EventSelectionChanged, nil)
	sc.state.Emit(app.EventHistoryChanged, nil)
	sc.Refresh()
}

// MouseUp ends any drag in progress.
func (sc *ShipCanvas) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	sc.state.Session.Release()
	sc.state.Emit(app.EventShapeChanged, nil)
}

// Dragged moves the active drag. Only the canvas repaints per drag frame;
// the heavier shape-changed event fires once on DragEnd.
func (sc *ShipCanvas) Dragged(ev *fyne.DragEvent) {
	if !sc.state.Session.Dragging() {
		return
	}
	sc.state.Session.Drag(sc.toCenterPx(ev.Position), sc.shiftHeld)
	sc.Refresh()
}

// DragEnd ends any drag in progress.
func (sc *ShipCanvas) DragEnd() {
	sc.state.Session.Release()
	sc.state.Emit(app.EventShapeChanged, nil)
}

// draw renders one frame. The session is read-only here; all mutation
// happened synchronously in the event handlers before this runs.
func (sc *ShipCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(output.Pix); i += 4 {
		output.Pix[i] = background.R
		output.Pix[i+1] = background.G
		output.Pix[i+2] = background.B
		output.Pix[i+3] = 255
	}

	session := sc.state.Session
	cx, cy := float64(w)/2, float64(h)/2
	radius := session.View().Radius()

	if d := session.Design(); d != nil && !d.Editable() {
		drawProcedural(output, proceduralStyle{
			Fill:   d.FillColor.ToRGBA(),
			Stroke: d.StrokeColor.ToRGBA(),
		}, cx, cy, radius)
		return output
	}

	shapes := session.Shapes()

	// Layers paint bottom-up so that index 0 lands on top, matching the
	// topmost-first hit-test order.
	for i := len(shapes) - 1; i >= 0; i-- {
		sc.drawLayer(output, shapes[i], i == session.SelectedLayerIndex(), cx, cy, radius)
	}

	if l := session.SelectedLayer(); l != nil {
		c := session.View().RelativeToPixel(geometry.Centroid(l.Vertices))
		drawCentroidMark(output, int(cx+c.X), int(cy+c.Y))

		for i, v := range l.Vertices {
			px := session.View().RelativeToPixel(v)
			fill := colorutil.White
			switch {
			case session.IsVertexSelected(i):
				fill = colorutil.Cyan
			case session.AddVertexMode():
				fill = colorutil.Yellow
			}
			drawHandle(output, int(cx+px.X), int(cy+px.Y), fill)
		}
	}
	return output
}

func (sc *ShipCanvas) drawLayer(output *image.RGBA, l *editor.Layer, selected bool, cx, cy, radius float64) {
	points := make([]geometry.Point2D, len(l.Vertices))
	for i, v := range l.Vertices {
		px := sc.state.Session.View().RelativeToPixel(v)
		points[i] = geometry.Point2D{X: cx + px.X, Y: cy + px.Y}
	}

	fill := l.Fill
	stroke := l.Stroke
	if selected {
		fill = fill.Lighten(0.15)
		stroke = stroke.Lighten(0.3)
	}

	fillPolygon(output, points, fill.ToRGBA())
	strokePolygon(output, points, stroke.ToRGBA(), strokeThickness(l, radius))
}
