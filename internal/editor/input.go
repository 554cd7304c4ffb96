package editor

import (
	"math"

	"ship-editor/pkg/geometry"
)

// axisLockThresholdPx is how far the pointer must travel, cumulatively from
// the press position, before a shift-constrained drag locks to an axis.
const axisLockThresholdPx = 5.0

type axis int

const (
	axisNone axis = iota
	axisX
	axisY
)

type dragKind int

const (
	dragNone dragKind = iota
	dragVertices
	dragLayer
)

// drag is the state of an in-progress drag. The zero value means no drag.
type drag struct {
	kind    dragKind
	startPx geometry.Point2D
	lastPx  geometry.Point2D
	origins map[int]geometry.Point2D
	lock    axis
}

// Press handles a pointer press at a center-origin pixel position. Press
// targets are resolved in priority order: edge insertion while add-vertex
// mode is active, then vertex handles of the selected layer, then layer
// containment topmost-first, and finally empty space, which clears the
// layer selection.
func (s *EditorSession) Press(px geometry.Point2D, shift bool) {
	if !s.Editable() {
		return
	}
	rel := s.view.PixelToRelative(px)

	// Add-vertex mode intercepts every press while active.
	if s.addVertexMode {
		l := s.SelectedLayer()
		if l == nil {
			return
		}
		e := hitEdge(l, rel, s.view)
		if e == geometry.NoEdge {
			return
		}
		s.history.Snapshot(s.shapes)
		s.insertVertexAfter(l, e)
		s.clearVertexSelection()
		return
	}

	if l := s.SelectedLayer(); l != nil {
		if v := hitVertex(l, px, s.view); v != NoVertex {
			if shift {
				// Pure selection change: toggling membership never
				// starts a drag and never snapshots.
				if s.IsVertexSelected(v) {
					delete(s.selectedVerts, v)
				} else {
					s.selectedVerts[v] = struct{}{}
				}
				return
			}
			if !s.IsVertexSelected(v) {
				s.clearVertexSelection()
				s.selectedVerts[v] = struct{}{}
			}
			s.history.Snapshot(s.shapes)
			s.beginVertexDrag(l, px)
			return
		}
	}

	if li := hitLayer(s.shapes, rel); li != NoLayer {
		if li == s.selectedLayer {
			s.history.Snapshot(s.shapes)
			s.clearVertexSelection()
			s.drag = drag{kind: dragLayer, startPx: px, lastPx: px}
		} else {
			s.selectedLayer = li
			s.clearVertexSelection()
		}
		return
	}

	// Empty space always clears the selection while a design is editable.
	s.clearSelection()
}

func (s *EditorSession) insertVertexAfter(l *Layer, edge int) {
	n := len(l.Vertices)
	mid := l.Vertices[edge].Midpoint(l.Vertices[(edge+1)%n])
	l.Vertices = append(l.Vertices, geometry.Point2D{})
	copy(l.Vertices[edge+2:], l.Vertices[edge+1:])
	l.Vertices[edge+1] = mid
}

func (s *EditorSession) beginVertexDrag(l *Layer, px geometry.Point2D) {
	origins := make(map[int]geometry.Point2D, len(s.selectedVerts))
	for i := range s.selectedVerts {
		if i < len(l.Vertices) {
			origins[i] = l.Vertices[i]
		}
	}
	s.drag = drag{kind: dragVertices, startPx: px, origins: origins}
}

// Drag handles pointer movement while a button is held. Outside of an
// active drag it does nothing.
func (s *EditorSession) Drag(px geometry.Point2D, shift bool) {
	switch s.drag.kind {
	case dragVertices:
		l := s.SelectedLayer()
		if l == nil {
			return
		}
		delta := s.constrain(px.Sub(s.drag.startPx), px, shift)
		relDelta := delta.Scale(1 / s.view.Radius())
		for i, origin := range s.drag.origins {
			if i < len(l.Vertices) {
				l.Vertices[i] = origin.Add(relDelta)
			}
		}
	case dragLayer:
		l := s.SelectedLayer()
		if l == nil {
			return
		}
		step := s.constrain(px.Sub(s.drag.lastPx), px, shift)
		relStep := step.Scale(1 / s.view.Radius())
		for i := range l.Vertices {
			l.Vertices[i] = l.Vertices[i].Add(relStep)
		}
		s.drag.lastPx = px
	}
}

// constrain applies the shift axis lock to a drag delta. The lock engages
// once cumulative travel from the press exceeds the threshold, sticks to
// whichever axis dominates at that moment, and releases with the modifier.
func (s *EditorSession) constrain(delta, px geometry.Point2D, shift bool) geometry.Point2D {
	if !shift {
		s.drag.lock = axisNone
		return delta
	}
	if s.drag.lock == axisNone {
		cum := px.Sub(s.drag.startPx)
		if cum.X*cum.X+cum.Y*cum.Y > axisLockThresholdPx*axisLockThresholdPx {
			if math.Abs(cum.X) >= math.Abs(cum.Y) {
				s.drag.lock = axisX
			} else {
				s.drag.lock = axisY
			}
		}
	}
	switch s.drag.lock {
	case axisX:
		delta.Y = 0
	case axisY:
		delta.X = 0
	}
	return delta
}

// Release ends any drag in progress. The history snapshot was already
// taken at press time, so nothing else happens here.
func (s *EditorSession) Release() {
	s.drag = drag{}
}

// Dragging reports whether a vertex or layer drag is in progress.
func (s *EditorSession) Dragging() bool {
	return s.drag.kind != dragNone
}
