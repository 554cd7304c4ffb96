package editor

import (
	"math"
	"reflect"
	"testing"
)

func TestVertexInsertAtEdgeMidpoint(t *testing.T) {
	s := blankSession(t)
	l := s.SelectedLayer()
	v0, v1 := l.Vertices[0], l.Vertices[1]
	count := len(l.Vertices)

	s.ToggleAddVertexMode()
	s.Press(s.View().RelativeToPixel(v0.Midpoint(v1)), false)

	if got := len(l.Vertices); got != count+1 {
		t.Fatalf("vertex count = %d, want %d", got, count+1)
	}
	want := pt((v0.X+v1.X)/2, (v0.Y+v1.Y)/2)
	if l.Vertices[1] != want {
		t.Fatalf("inserted vertex = %v at index 1, want %v", l.Vertices[1], want)
	}
	if l.Vertices[2] != v1 {
		t.Fatal("insertion must shift later vertices, not overwrite them")
	}
}

func TestAddVertexModeConsumesMissedPress(t *testing.T) {
	s := blankSession(t)
	s.ToggleAddVertexMode()

	// A press far from any edge neither inserts nor falls through to the
	// normal selection path.
	count := len(s.SelectedLayer().Vertices)
	s.Press(s.View().RelativeToPixel(pt(8, 8)), false)
	if got := len(s.SelectedLayer().Vertices); got != count {
		t.Fatalf("missed press inserted a vertex, count = %d", got)
	}
	if s.SelectedLayerIndex() != 0 {
		t.Fatal("missed press in add-vertex mode must not clear the layer selection")
	}
}

func TestAddVertexModeRejectsDistantEdge(t *testing.T) {
	s := blankSession(t)
	s.ToggleAddVertexMode()
	l := s.SelectedLayer()
	count := len(l.Vertices)

	// Just past the pixel threshold, measured perpendicular to edge 1->2.
	mid := l.Vertices[1].Midpoint(l.Vertices[2])
	px := s.View().RelativeToPixel(mid).Add(pt(EdgeThresholdPx+5, EdgeThresholdPx+5))
	s.Press(px, false)
	if got := len(l.Vertices); got != count {
		t.Fatalf("distant press inserted a vertex, count = %d", got)
	}
}

func TestHitTestPriorityTopmostWins(t *testing.T) {
	s := blankSession(t)
	s.AddLayer() // identical diamond prepended: full overlap

	// Clear the selection, then click inside the overlap.
	depth := s.HistoryLen()
	s.Press(s.View().RelativeToPixel(pt(9, 9)), false)
	if s.SelectedLayerIndex() != NoLayer {
		t.Fatal("empty-space press must clear the selection")
	}
	s.Press(s.View().RelativeToPixel(pt(0.05, 0.05)), false)
	if got := s.SelectedLayerIndex(); got != 0 {
		t.Fatalf("overlap press selected layer %d, want topmost 0", got)
	}
	if s.HistoryLen() != depth {
		t.Fatal("pure selection changes must not snapshot")
	}
}

func TestPressOnSelectedLayerStartsLayerDrag(t *testing.T) {
	s := blankSession(t)
	l := s.SelectedLayer()
	start := make([]float64, 0, len(l.Vertices)*2)
	for _, v := range l.Vertices {
		start = append(start, v.X, v.Y)
	}

	r := s.View().Radius()
	s.Press(s.View().RelativeToPixel(pt(0.1, 0.1)), false)
	if !s.Dragging() {
		t.Fatal("press on the selected layer must start a layer drag")
	}
	s.Drag(s.View().RelativeToPixel(pt(0.1, 0.1)).Add(pt(r/2, 0)), false)
	s.Release()

	for i, v := range l.Vertices {
		if math.Abs(v.X-(start[2*i]+0.5)) > 1e-9 || math.Abs(v.Y-start[2*i+1]) > 1e-9 {
			t.Fatalf("vertex %d = %v, want translated by (0.5, 0)", i, v)
		}
	}
}

func TestShiftToggleVertexSelection(t *testing.T) {
	s := blankSession(t)
	s.Press(vertexPx(s, 0), true)
	s.Press(vertexPx(s, 2), true)
	if got := s.SelectedVertices(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("selection = %v, want [0 2]", got)
	}
	if s.Dragging() {
		t.Fatal("shift-press must not start a drag")
	}
	if s.CanUndo() {
		t.Fatal("shift-press must not snapshot")
	}

	s.Press(vertexPx(s, 0), true)
	if got := s.SelectedVertices(); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("selection after toggle-off = %v, want [2]", got)
	}
}

func TestMultiVertexDragMovesWholeSelection(t *testing.T) {
	s := blankSession(t)
	l := s.SelectedLayer()
	v2Before := l.Vertices[2]

	s.Press(vertexPx(s, 0), true)
	s.Press(vertexPx(s, 1), true)
	s.Press(vertexPx(s, 0), false) // grab inside the existing selection
	if got := s.SelectedVertices(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("grabbing a selected vertex replaced the set: %v", got)
	}

	r := s.View().Radius()
	s.Drag(vertexPx(s, 0).Add(pt(0, r/4)), false)
	s.Release()

	if math.Abs(l.Vertices[0].Y-(-0.25)) > 1e-9 || math.Abs(l.Vertices[1].Y-0.25) > 1e-9 {
		t.Fatalf("selected vertices not dragged together: %v %v", l.Vertices[0], l.Vertices[1])
	}
	if l.Vertices[2] != v2Before {
		t.Fatal("unselected vertex moved during a multi-select drag")
	}
}

func TestGrabUnselectedVertexReplacesSelection(t *testing.T) {
	s := blankSession(t)
	s.Press(vertexPx(s, 0), true)
	s.Press(vertexPx(s, 1), false)
	if got := s.SelectedVertices(); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("selection = %v, want [1]", got)
	}
	s.Release()
}

func TestAxisLockHorizontal(t *testing.T) {
	s := blankSession(t)
	l := s.SelectedLayer()
	start := l.Vertices[0]
	grab := vertexPx(s, 0)

	s.Press(grab, false)
	// Cumulative travel is past the lock threshold and X-dominant.
	s.Drag(grab.Add(pt(20, 6)), true)
	s.Release()

	r := s.View().Radius()
	want := pt(start.X+20/r, start.Y)
	if math.Abs(l.Vertices[0].X-want.X) > 1e-9 || l.Vertices[0].Y != want.Y {
		t.Fatalf("locked drag moved vertex to %v, want %v", l.Vertices[0], want)
	}
}

func TestAxisLockPersistsUntilModifierReleased(t *testing.T) {
	s := blankSession(t)
	l := s.SelectedLayer()
	start := l.Vertices[0]
	grab := vertexPx(s, 0)
	r := s.View().Radius()

	s.Press(grab, false)
	s.Drag(grab.Add(pt(20, 3)), true) // locks to X
	s.Drag(grab.Add(pt(20, 40)), true)
	if got := l.Vertices[0].Y; got != start.Y {
		t.Fatalf("lock did not persist, Y moved to %v", got)
	}

	// Releasing the modifier clears the lock; the full delta applies.
	s.Drag(grab.Add(pt(20, 40)), false)
	if math.Abs(l.Vertices[0].Y-(start.Y+40/r)) > 1e-9 {
		t.Fatalf("unlocked drag Y = %v", l.Vertices[0].Y)
	}
	s.Release()
}

func TestAxisLockBelowThreshold(t *testing.T) {
	s := blankSession(t)
	l := s.SelectedLayer()
	grab := vertexPx(s, 0)
	r := s.View().Radius()

	s.Press(grab, false)
	s.Drag(grab.Add(pt(2, 3)), true) // under 5px cumulative travel
	s.Release()

	want := pt(0+2/r, -0.5+3/r)
	if math.Abs(l.Vertices[0].X-want.X) > 1e-9 || math.Abs(l.Vertices[0].Y-want.Y) > 1e-9 {
		t.Fatalf("sub-threshold drag constrained early: %v", l.Vertices[0])
	}
}

func TestReleaseClearsDragState(t *testing.T) {
	s := blankSession(t)
	s.Press(vertexPx(s, 0), false)
	if !s.Dragging() {
		t.Fatal("press on a vertex must start a drag")
	}
	s.Release()
	if s.Dragging() {
		t.Fatal("release must clear the drag")
	}
}

func TestPressInsideBoundsOutsidePolygonClearsSelection(t *testing.T) {
	s := sidewinderSession(t)

	// The tail notch sits inside the layer's bounding box but outside
	// the polygon itself, far from any vertex handle.
	notch := s.View().RelativeToPixel(pt(0.5, 0.62))
	s.Press(notch, false)

	if got := s.SelectedLayerIndex(); got != NoLayer {
		t.Fatalf("notch press selected layer %d, want none", got)
	}
}
