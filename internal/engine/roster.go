package engine

import (
	"github.com/google/uuid"

	"github.com/okerlund/rosterbook/internal/domain"
)

// AddKid appends the kid to the roster. The caller (service layer) is
// responsible for assigning the id and creation time and for validating
// the name.
func AddKid(s domain.State, kid domain.Kid) domain.State {
	next := s.Clone()
	kid.Tags = rewriteTags(kid.Tags, "", "")
	next.Kids = append(next.Kids, kid)
	return next
}

// UpdateKid overwrites the mutable fields (name, tags) of an existing
// kid. Reports false when the kid is unknown; the snapshot is returned
// unchanged in that case.
func UpdateKid(s domain.State, kid domain.Kid) (domain.State, bool) {
	idx := kidIndex(s, kid.ID)
	if idx < 0 {
		return s, false
	}
	next := s.Clone()
	next.Kids[idx].Name = kid.Name
	next.Kids[idx].Tags = rewriteTags(kid.Tags, "", "")
	return next, true
}

// DeleteKid removes the kid from the roster and cascades: its
// participation and suggestion note are dropped from every event.
// Reports false when the kid is unknown.
func DeleteKid(s domain.State, kidID uuid.UUID) (domain.State, bool) {
	idx := kidIndex(s, kidID)
	if idx < 0 {
		return s, false
	}
	next := s.Clone()
	next.Kids = append(next.Kids[:idx], next.Kids[idx+1:]...)
	for i := range next.Events {
		e := &next.Events[i]
		kept := e.Participants[:0]
		for _, p := range e.Participants {
			if p.KidID != kidID {
				kept = append(kept, p)
			}
		}
		e.Participants = kept
		delete(e.SuggestNotes, kidID)
	}
	return next, true
}

// kidIndex returns the slice index of the kid, or -1 if absent.
func kidIndex(s domain.State, kidID uuid.UUID) int {
	for i, k := range s.Kids {
		if k.ID == kidID {
			return i
		}
	}
	return -1
}
