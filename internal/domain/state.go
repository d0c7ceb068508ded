// Package domain contains the core data types for the rosterbook
// application. This package has almost zero external dependencies and is
// imported by every other internal package (engine, repo, service, handler).
package domain

import "github.com/google/uuid"

// State is one immutable snapshot of the whole dataset: the tag catalog,
// the kid roster, the event list, and the transient tag-selection buffers
// (active filters and in-progress forms, keyed by a caller-chosen name).
//
// Engine operations never mutate a State in place; they clone, modify
// the clone, and return it. A caller either adopts the returned snapshot
// or discards it, which is what makes tag propagation atomic: no reader
// ever observes a half-propagated rename.
type State struct {
	Catalog Catalog
	Kids    []Kid
	Events  []Event
	Buffers map[string][]string
}

// NewState returns an empty but fully initialized snapshot.
func NewState() State {
	return State{
		Catalog: Catalog{},
		Buffers: map[string][]string{},
	}
}

// Clone returns a deep copy of the snapshot.
func (s State) Clone() State {
	out := State{
		Catalog: s.Catalog.Clone(),
		Kids:    make([]Kid, len(s.Kids)),
		Events:  make([]Event, len(s.Events)),
		Buffers: make(map[string][]string, len(s.Buffers)),
	}
	for i, k := range s.Kids {
		out.Kids[i] = k.Clone()
	}
	for i, e := range s.Events {
		out.Events[i] = e.Clone()
	}
	for name, tags := range s.Buffers {
		out.Buffers[name] = append([]string(nil), tags...)
	}
	return out
}

// Kid returns the kid with the given id, if present.
func (s State) Kid(id uuid.UUID) (Kid, bool) {
	for _, k := range s.Kids {
		if k.ID == id {
			return k, true
		}
	}
	return Kid{}, false
}

// Event returns the event with the given id, if present.
func (s State) Event(id uuid.UUID) (Event, bool) {
	for _, e := range s.Events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}
