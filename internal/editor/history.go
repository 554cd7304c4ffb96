package editor

import "log"

// HistoryCap bounds the undo stack; the oldest snapshot is evicted when a
// new one would exceed it.
const HistoryCap = 30

// History is a bounded stack of shape-set snapshots. Every mutating action
// pushes a snapshot before the mutation is applied, so popping restores the
// exact pre-action state.
type History struct {
	stack []ShapeSet
	cap   int
}

// NewHistory creates an empty history with the default capacity.
func NewHistory() *History {
	return &History{cap: HistoryCap}
}

// Snapshot deep-copies the shape set onto the stack. A set that fails
// structural validation is not recorded: the edit proceeds unprotected
// rather than blocking the user.
func (h *History) Snapshot(s ShapeSet) {
	if err := s.Validate(); err != nil {
		log.Printf("history: skipping snapshot of invalid shape set: %v", err)
		return
	}
	h.stack = append(h.stack, s.Clone())
	if len(h.stack) > h.cap {
		h.stack = h.stack[1:]
	}
}

// Restore pops the most recent snapshot and returns an independent copy of
// it. If the popped snapshot fails validation the whole stack is treated as
// corrupted and cleared, and ok is false; the caller's shape set is left
// untouched either way.
func (h *History) Restore() (s ShapeSet, ok bool) {
	n := len(h.stack)
	if n == 0 {
		return nil, false
	}
	top := h.stack[n-1]
	h.stack = h.stack[:n-1]
	if err := top.Validate(); err != nil {
		log.Printf("history: discarding corrupted undo stack: %v", err)
		h.stack = nil
		return nil, false
	}
	return top.Clone(), true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.stack) }

// CanUndo reports whether a snapshot is available to restore.
func (h *History) CanUndo() bool { return len(h.stack) > 0 }

// Clear drops every snapshot. Called whenever a different design is loaded.
func (h *History) Clear() { h.stack = nil }
