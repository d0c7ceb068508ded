package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/okerlund/rosterbook/internal/domain"
)

// ConfirmAssignment appends each picked kid not already on the event as a
// Pending participation. The first confirmation for an event sets its
// suggestion baseline to now; later confirmations leave it unchanged.
// The baseline marks the first time suggestions were acted upon.
// No-op on an unknown event id.
func ConfirmAssignment(s domain.State, eventID uuid.UUID, kidIDs []uuid.UUID, now time.Time) domain.State {
	idx := eventIndex(s, eventID)
	if idx < 0 {
		return s
	}
	next := s.Clone()
	e := &next.Events[idx]
	for _, kidID := range kidIDs {
		if e.HasParticipant(kidID) {
			continue
		}
		e.Participants = append(e.Participants, domain.Participation{
			KidID:  kidID,
			Status: domain.StatusPending,
		})
	}
	if e.SuggestedAt == nil {
		t := now
		e.SuggestedAt = &t
	}
	return next
}

// CycleStatus advances the kid's participation status one step in the
// Pending → InProgress → Confirmed → Pending cycle.
// No-op on unknown event or kid ids.
func CycleStatus(s domain.State, eventID, kidID uuid.UUID) domain.State {
	idx := eventIndex(s, eventID)
	if idx < 0 || !s.Events[idx].HasParticipant(kidID) {
		return s
	}
	next := s.Clone()
	e := &next.Events[idx]
	for i := range e.Participants {
		if e.Participants[i].KidID == kidID {
			e.Participants[i].Status = e.Participants[i].Status.Next()
			break
		}
	}
	return next
}

// RemoveParticipant deletes the kid's participation from the event.
// No-op on unknown event or kid ids.
func RemoveParticipant(s domain.State, eventID, kidID uuid.UUID) domain.State {
	idx := eventIndex(s, eventID)
	if idx < 0 || !s.Events[idx].HasParticipant(kidID) {
		return s
	}
	next := s.Clone()
	e := &next.Events[idx]
	kept := e.Participants[:0]
	for _, p := range e.Participants {
		if p.KidID != kidID {
			kept = append(kept, p)
		}
	}
	e.Participants = kept
	return next
}

// SetSuggestNote stores a free-text note for the kid on the event. An
// empty note deletes the entry. No-op on an unknown event id.
func SetSuggestNote(s domain.State, eventID, kidID uuid.UUID, note string) domain.State {
	idx := eventIndex(s, eventID)
	if idx < 0 {
		return s
	}
	next := s.Clone()
	e := &next.Events[idx]
	if note == "" {
		delete(e.SuggestNotes, kidID)
		return next
	}
	if e.SuggestNotes == nil {
		e.SuggestNotes = map[uuid.UUID]string{}
	}
	e.SuggestNotes[kidID] = note
	return next
}

// eventIndex returns the slice index of the event, or -1 if absent.
func eventIndex(s domain.State, eventID uuid.UUID) int {
	for i, e := range s.Events {
		if e.ID == eventID {
			return i
		}
	}
	return -1
}
