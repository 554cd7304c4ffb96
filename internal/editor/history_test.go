package editor

import (
	"math"
	"reflect"
	"testing"

	"ship-editor/pkg/geometry"
)

func pt(x, y float64) geometry.Point2D { return geometry.Point2D{X: x, Y: y} }

func triangleSet(offset float64) ShapeSet {
	return ShapeSet{{
		Vertices: []geometry.Point2D{
			pt(offset, -1), pt(offset+1, 1), pt(offset-1, 1),
		},
		StrokeW: 0.04,
	}}
}

func TestHistoryBound(t *testing.T) {
	h := NewHistory()
	for i := 0; i < HistoryCap+5; i++ {
		h.Snapshot(triangleSet(float64(i)))
	}
	if got := h.Len(); got != HistoryCap {
		t.Fatalf("stack depth = %d, want %d", got, HistoryCap)
	}

	// The newest HistoryCap snapshots come back in reverse order; the
	// oldest 5 must be gone.
	for i := HistoryCap + 4; i >= 5; i-- {
		s, ok := h.Restore()
		if !ok {
			t.Fatalf("restore %d failed with entries remaining", i)
		}
		if want := triangleSet(float64(i)); !reflect.DeepEqual(s, want) {
			t.Fatalf("restore %d returned wrong snapshot: %v", i, s[0].Vertices)
		}
	}
	if _, ok := h.Restore(); ok {
		t.Fatal("evicted snapshots should be unrecoverable")
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	h := NewHistory()
	set := triangleSet(0)
	h.Snapshot(set)
	set[0].Vertices[0] = pt(99, 99)

	restored, ok := h.Restore()
	if !ok {
		t.Fatal("restore failed")
	}
	if restored[0].Vertices[0] != pt(0, -1) {
		t.Fatalf("snapshot aliased live data: %v", restored[0].Vertices[0])
	}
}

func TestSnapshotSkipsInvalidSet(t *testing.T) {
	h := NewHistory()
	bad := triangleSet(0)
	bad[0].Vertices[1] = pt(math.NaN(), 0)
	h.Snapshot(bad)
	if h.Len() != 0 {
		t.Fatal("invalid shape set must not be recorded")
	}

	// The edit itself proceeds unprotected; a later valid snapshot works.
	h.Snapshot(triangleSet(1))
	if h.Len() != 1 {
		t.Fatal("valid snapshot after a skipped one was not recorded")
	}
}

func TestRestoreCorruptedStackClears(t *testing.T) {
	h := NewHistory()
	h.Snapshot(triangleSet(0))
	h.Snapshot(triangleSet(1))

	// Corruption can only arise outside the Snapshot path; inject it.
	bad := triangleSet(2)
	bad[0].StrokeW = math.Inf(1)
	h.stack = append(h.stack, bad)

	if _, ok := h.Restore(); ok {
		t.Fatal("restoring a corrupted snapshot must fail")
	}
	if h.CanUndo() {
		t.Fatal("a corrupted stack must be cleared entirely")
	}
}

func TestRestoreEmpty(t *testing.T) {
	h := NewHistory()
	if s, ok := h.Restore(); ok || s != nil {
		t.Fatal("empty history restored something")
	}
}
