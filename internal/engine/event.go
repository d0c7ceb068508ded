package engine

import (
	"github.com/google/uuid"

	"github.com/okerlund/rosterbook/internal/domain"
)

// AddEvent appends the event to the snapshot. The caller is responsible
// for assigning the id and validating title and time window.
func AddEvent(s domain.State, event domain.Event) domain.State {
	next := s.Clone()
	event.Tags = rewriteTags(event.Tags, "", "")
	next.Events = append(next.Events, event)
	return next
}

// UpdateEvent overwrites the mutable fields (title, time window, tags) of
// an existing event. The participant list, suggestion baseline, and notes
// are preserved. Reports false when the event is unknown.
func UpdateEvent(s domain.State, event domain.Event) (domain.State, bool) {
	idx := eventIndex(s, event.ID)
	if idx < 0 {
		return s, false
	}
	next := s.Clone()
	e := &next.Events[idx]
	e.Title = event.Title
	e.Start = event.Start
	e.End = event.End
	e.Tags = rewriteTags(event.Tags, "", "")
	return next, true
}

// DeleteEvent removes the event. Nothing else cascades; kids and the
// catalog are untouched. Reports false when the event is unknown.
func DeleteEvent(s domain.State, eventID uuid.UUID) (domain.State, bool) {
	idx := eventIndex(s, eventID)
	if idx < 0 {
		return s, false
	}
	next := s.Clone()
	next.Events = append(next.Events[:idx], next.Events[idx+1:]...)
	return next, true
}
