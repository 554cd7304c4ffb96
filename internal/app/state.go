// Package app provides shared application state and events.
package app

import (
	"sync"

	"ship-editor/internal/editor"
)

// State ties the editor session to the UI through an event bus. Widgets
// register listeners for the events they care about and emit events after
// driving the session, so no widget needs a direct reference to another.
type State struct {
	mu sync.RWMutex

	// Session owns all editing state for the loaded design.
	Session *editor.EditorSession

	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventDesignLoaded EventType = iota
	EventShapeChanged
	EventSelectionChanged
	EventZoomChanged
	EventHistoryChanged
	EventModeChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates the application state with a fresh editor session.
func NewState() *State {
	return &State{
		Session:   editor.NewSession(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// LoadDesign loads a catalog design into the session and announces it.
func (s *State) LoadDesign(name string) error {
	if err := s.Session.LoadDesign(name); err != nil {
		return err
	}
	s.Emit(EventDesignLoaded, name)
	s.Emit(EventShapeChanged, nil)
	s.Emit(EventSelectionChanged, nil)
	s.Emit(EventHistoryChanged, nil)
	return nil
}

// LoadBlank loads a fresh blank design into the session and announces it.
func (s *State) LoadBlank() {
	s.Session.LoadBlank()
	s.Emit(EventDesignLoaded, "")
	s.Emit(EventShapeChanged, nil)
	s.Emit(EventSelectionChanged, nil)
	s.Emit(EventHistoryChanged, nil)
}

// Undo restores the previous snapshot and announces the result.
func (s *State) Undo() {
	if !s.Session.Undo() {
		// A failed restore can still mean the stack was cleared as
		// corrupted; listeners re-check undo availability either way.
		s.Emit(EventHistoryChanged, nil)
		return
	}
	s.Emit(EventShapeChanged, nil)
	s.Emit(EventSelectionChanged, nil)
	s.Emit(EventHistoryChanged, nil)
	s.Emit(EventModeChanged, nil)
}
