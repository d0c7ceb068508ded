package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the tri-state assignment status of one kid on one event.
// The numeric values are part of the persisted document contract.
type Status int

const (
	StatusPending Status = iota
	StatusInProgress
	StatusConfirmed
)

// Next advances the status one step in the Pending → InProgress →
// Confirmed → Pending cycle.
func (s Status) Next() Status {
	return (s + 1) % 3
}

// Participation links one kid to one event. KidID is a weak reference:
// deleting a kid cascades the participation out of every event, so a
// live state snapshot never holds a dangling KidID.
type Participation struct {
	KidID  uuid.UUID
	Status Status
}

// Event is a time-bounded activity with a tag set and an ordered
// participant list.
//
// SuggestedAt is the suggestion baseline: the instant suggestions were
// first acted on for this event. It is nil until the first confirmed
// assignment and never changes afterwards. SuggestNotes carries
// free-text per-kid notes from the suggestion flow; a nil map means no
// notes.
type Event struct {
	ID           uuid.UUID
	Title        string
	Start        time.Time
	End          time.Time
	Tags         []string
	Participants []Participation
	SuggestedAt  *time.Time
	SuggestNotes map[uuid.UUID]string
}

// Clone returns a deep copy of the event.
func (e Event) Clone() Event {
	out := e
	out.Tags = append([]string(nil), e.Tags...)
	out.Participants = append([]Participation(nil), e.Participants...)
	if e.SuggestedAt != nil {
		t := *e.SuggestedAt
		out.SuggestedAt = &t
	}
	if e.SuggestNotes != nil {
		out.SuggestNotes = make(map[uuid.UUID]string, len(e.SuggestNotes))
		for id, note := range e.SuggestNotes {
			out.SuggestNotes[id] = note
		}
	}
	return out
}

// HasParticipant reports whether kidID is already on the participant list.
func (e Event) HasParticipant(kidID uuid.UUID) bool {
	for _, p := range e.Participants {
		if p.KidID == kidID {
			return true
		}
	}
	return false
}
