package editor

import (
	"fmt"
	"log"
	"sort"

	"ship-editor/internal/catalog"
	"ship-editor/pkg/colorutil"
)

// EditorSession owns all mutable editing state for the currently loaded
// design: the shape set, selection, interaction state, history, and view.
// All mutation happens synchronously inside event handlers; the session is
// not safe for concurrent use; the UI toolkit delivers events on a
// single goroutine, so it does not need to be.
type EditorSession struct {
	shapes  ShapeSet
	view    *View
	history *History
	design  *catalog.Definition

	selectedLayer int
	selectedVerts map[int]struct{}
	drag          drag
	addVertexMode bool
}

// NewSession creates an empty session with nothing loaded.
func NewSession() *EditorSession {
	return &EditorSession{
		view:          NewView(),
		history:       NewHistory(),
		selectedLayer: NoLayer,
		selectedVerts: make(map[int]struct{}),
	}
}

// LoadDesign replaces the shape set with a deep copy of the named catalog
// design. History and all selection/interaction state are discarded. A
// procedural design loads with no shape set at all, which disables every
// editing operation until something editable is selected.
func (s *EditorSession) LoadDesign(name string) error {
	d := catalog.Get(name)
	if d == nil {
		return fmt.Errorf("unknown design %q", name)
	}
	s.resetFor(d.Size)
	s.design = d
	if !d.Editable() {
		s.shapes = nil
		return nil
	}
	s.shapes = ShapeSet{NewLayerFromDefinition(d)}
	s.selectedLayer = 0
	return nil
}

// LoadBlank replaces the shape set with a single default layer not backed
// by any catalog entry. History is discarded.
func (s *EditorSession) LoadBlank() {
	s.resetFor(catalog.FallbackSize)
	s.design = nil
	s.shapes = ShapeSet{NewBlankLayer()}
	s.selectedLayer = 0
}

func (s *EditorSession) resetFor(nominalSize float64) {
	s.history.Clear()
	s.clearSelection()
	s.drag = drag{}
	s.addVertexMode = false
	s.view.SetNominalSize(nominalSize)
}

func (s *EditorSession) clearSelection() {
	s.selectedLayer = NoLayer
	s.clearVertexSelection()
}

func (s *EditorSession) clearVertexSelection() {
	s.selectedVerts = make(map[int]struct{})
}

// Editable reports whether the current selection can be edited. A
// procedural design has no shape set and disables the whole state machine.
func (s *EditorSession) Editable() bool {
	return s.shapes != nil
}

// Shapes returns the live shape set, topmost layer first. Render code must
// treat it as read-only for the duration of a frame.
func (s *EditorSession) Shapes() ShapeSet { return s.shapes }

// Design returns the catalog definition backing the session, or nil when
// editing a blank design.
func (s *EditorSession) Design() *catalog.Definition { return s.design }

// View returns the session's coordinate transform.
func (s *EditorSession) View() *View { return s.view }

// SelectedLayerIndex returns the active layer index, or NoLayer.
func (s *EditorSession) SelectedLayerIndex() int { return s.selectedLayer }

// SelectedLayer returns the active layer, or nil when none is selected.
func (s *EditorSession) SelectedLayer() *Layer {
	if s.selectedLayer < 0 || s.selectedLayer >= len(s.shapes) {
		return nil
	}
	return s.shapes[s.selectedLayer]
}

// SelectedVertices returns the multi-selected vertex indices in ascending
// order.
func (s *EditorSession) SelectedVertices() []int {
	out := make([]int, 0, len(s.selectedVerts))
	for i := range s.selectedVerts {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// IsVertexSelected reports whether the vertex index is in the selection.
func (s *EditorSession) IsVertexSelected(i int) bool {
	_, ok := s.selectedVerts[i]
	return ok
}

// AddVertexMode reports whether edge-insertion mode is active.
func (s *EditorSession) AddVertexMode() bool { return s.addVertexMode }

// ToggleAddVertexMode flips edge-insertion mode. It can only be enabled
// while a layer is selected; turning it off clears the vertex selection
// and any drag in progress.
func (s *EditorSession) ToggleAddVertexMode() {
	if !s.addVertexMode && s.SelectedLayer() == nil {
		return
	}
	s.addVertexMode = !s.addVertexMode
	if !s.addVertexMode {
		s.clearVertexSelection()
		s.drag = drag{}
	}
}

// CanUndo reports whether an undo snapshot is available.
func (s *EditorSession) CanUndo() bool { return s.history.CanUndo() }

// HistoryLen returns the current undo stack depth.
func (s *EditorSession) HistoryLen() int { return s.history.Len() }

// Undo restores the most recent snapshot and resets selection and
// interaction state to neutral. Returns false when nothing was restored,
// either because the stack was empty or because it was found corrupted.
func (s *EditorSession) Undo() bool {
	restored, ok := s.history.Restore()
	if !ok {
		return false
	}
	s.shapes = restored
	s.clearSelection()
	s.drag = drag{}
	s.addVertexMode = false
	return true
}

// AddLayer prepends a blank layer, which becomes topmost and selected.
func (s *EditorSession) AddLayer() {
	if !s.Editable() {
		return
	}
	s.history.Snapshot(s.shapes)
	s.shapes = append(ShapeSet{NewBlankLayer()}, s.shapes...)
	s.selectedLayer = 0
	s.clearVertexSelection()
}

// DeleteSelectedLayer removes the active layer from the shape set. With no
// layer selected this is a no-op.
func (s *EditorSession) DeleteSelectedLayer() {
	if s.SelectedLayer() == nil {
		return
	}
	s.history.Snapshot(s.shapes)
	i := s.selectedLayer
	s.shapes = append(s.shapes[:i], s.shapes[i+1:]...)
	s.clearSelection()
}

// DeleteSelectedVertices removes every multi-selected vertex from the
// active layer. The deletion is rejected, leaving the layer untouched, if
// it would drop the vertex count below MinVertices.
func (s *EditorSession) DeleteSelectedVertices() {
	l := s.SelectedLayer()
	if l == nil || len(s.selectedVerts) == 0 {
		return
	}
	if len(l.Vertices)-len(s.selectedVerts) < MinVertices {
		log.Printf("editor: rejecting vertex delete, %d - %d would fall below %d",
			len(l.Vertices), len(s.selectedVerts), MinVertices)
		return
	}
	s.history.Snapshot(s.shapes)
	kept := l.Vertices[:0]
	for i, v := range l.Vertices {
		if !s.IsVertexSelected(i) {
			kept = append(kept, v)
		}
	}
	l.Vertices = kept
	s.clearVertexSelection()
}

// SetFillColor changes the active layer's fill.
func (s *EditorSession) SetFillColor(c colorutil.RGB) {
	if l := s.SelectedLayer(); l != nil && l.Fill != c {
		s.history.Snapshot(s.shapes)
		l.Fill = c
	}
}

// SetStrokeColor changes the active layer's stroke color.
func (s *EditorSession) SetStrokeColor(c colorutil.RGB) {
	if l := s.SelectedLayer(); l != nil && l.Stroke != c {
		s.history.Snapshot(s.shapes)
		l.Stroke = c
	}
}

// SetStrokeWeight changes the active layer's stroke weight. Negative
// weights are clamped to zero.
func (s *EditorSession) SetStrokeWeight(w float64) {
	if w < 0 {
		w = 0
	}
	if l := s.SelectedLayer(); l != nil && l.StrokeW != w {
		s.history.Snapshot(s.shapes)
		l.StrokeW = w
	}
}

// StraightenSelected runs the symmetry normalizer on the active layer and
// returns the number of coordinate adjustments made.
func (s *EditorSession) StraightenSelected() int {
	l := s.SelectedLayer()
	if l == nil {
		return 0
	}
	s.history.Snapshot(s.shapes)
	return Straighten(l, DefaultStraightenThreshold)
}
