package mainwindow

import (
	"testing"

	"ship-editor/internal/app"
)

func TestDeleteSelectionWithShiftRemovesLayer(t *testing.T) {
	mw := &MainWindow{state: app.NewState()}
	if err := mw.state.Session.LoadDesign("Sidewinder"); err != nil {
		t.Fatalf("loading Sidewinder: %v", err)
	}

	mw.shiftHeld = true
	mw.deleteSelection()

	if got := len(mw.state.Session.Shapes()); got != 0 {
		t.Errorf("layer count = %d after shift-delete, want 0", got)
	}
	if !mw.state.Session.CanUndo() {
		t.Error("layer delete must snapshot history")
	}
}

func TestDeleteSelectionWithoutShiftRemovesVertices(t *testing.T) {
	mw := &MainWindow{state: app.NewState()}
	if err := mw.state.Session.LoadDesign("Sidewinder"); err != nil {
		t.Fatalf("loading Sidewinder: %v", err)
	}
	session := mw.state.Session

	// Grab the first vertex handle to select it, then release.
	session.Press(session.View().RelativeToPixel(session.Shapes()[0].Vertices[0]), false)
	session.Release()

	mw.deleteSelection()

	if got := len(session.Shapes()); got != 1 {
		t.Fatalf("layer count = %d after plain delete, want 1", got)
	}
	if got := len(session.Shapes()[0].Vertices); got != 3 {
		t.Errorf("vertex count = %d after plain delete, want 3", got)
	}
}
