package repo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/okerlund/rosterbook/internal/domain"
)

// Wire shape of the persisted document. This is the only storage
// contract: timestamps are epoch milliseconds, event start/end are
// ISO-8601 strings, and participation status is its numeric value.
// Transient selection buffers are display state and are not persisted.
type document struct {
	TagCatalog map[string][]string `json:"tagCatalog"`
	Kids       []docKid            `json:"kids"`
	Events     []docEvent          `json:"events"`
}

type docKid struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Tags      []string `json:"tags"`
	CreatedAt int64    `json:"createdAt"`
}

type docEvent struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Start        string             `json:"start"`
	End          string             `json:"end"`
	Tags         []string           `json:"tags"`
	Participants []docParticipation `json:"participants"`
	SuggestedAt  *int64             `json:"suggestedAt,omitempty"`
	SuggestNotes map[string]string  `json:"suggestNotes,omitempty"`
}

type docParticipation struct {
	KidID  string `json:"kidId"`
	Status int    `json:"status"`
}

// EncodeDocument serializes a snapshot into the wire shape.
func EncodeDocument(s domain.State) ([]byte, error) {
	doc := document{
		TagCatalog: map[string][]string{},
		Kids:       []docKid{},
		Events:     []docEvent{},
	}
	for name, tags := range s.Catalog {
		doc.TagCatalog[name] = append([]string{}, tags...)
	}
	for _, k := range s.Kids {
		doc.Kids = append(doc.Kids, docKid{
			ID:        k.ID.String(),
			Name:      k.Name,
			Tags:      append([]string{}, k.Tags...),
			CreatedAt: k.CreatedAt.UnixMilli(),
		})
	}
	for _, e := range s.Events {
		de := docEvent{
			ID:           e.ID.String(),
			Title:        e.Title,
			Start:        e.Start.UTC().Format(time.RFC3339),
			End:          e.End.UTC().Format(time.RFC3339),
			Tags:         append([]string{}, e.Tags...),
			Participants: []docParticipation{},
		}
		for _, p := range e.Participants {
			de.Participants = append(de.Participants, docParticipation{
				KidID:  p.KidID.String(),
				Status: int(p.Status),
			})
		}
		if e.SuggestedAt != nil {
			ms := e.SuggestedAt.UnixMilli()
			de.SuggestedAt = &ms
		}
		if len(e.SuggestNotes) > 0 {
			de.SuggestNotes = map[string]string{}
			for kidID, note := range e.SuggestNotes {
				de.SuggestNotes[kidID.String()] = note
			}
		}
		doc.Events = append(doc.Events, de)
	}
	return json.Marshal(doc)
}

// DecodeDocument deserializes a stored document into a snapshot.
// Decoding is lenient by contract: malformed JSON yields an empty
// snapshot, entities with unparsable ids are skipped, and malformed or
// missing optional fields decode to their defaults (no baseline = never
// triaged, no notes = empty mapping). Load never fails hard; in-memory
// state is the source of truth and a bad document must not block startup.
func DecodeDocument(data []byte) domain.State {
	s := domain.NewState()

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return s
	}

	for name, tags := range doc.TagCatalog {
		if name == "" {
			continue
		}
		s.Catalog[name] = append([]string{}, tags...)
	}

	for _, dk := range doc.Kids {
		id, err := uuid.Parse(dk.ID)
		if err != nil {
			continue
		}
		s.Kids = append(s.Kids, domain.Kid{
			ID:        id,
			Name:      dk.Name,
			Tags:      append([]string{}, dk.Tags...),
			CreatedAt: time.UnixMilli(dk.CreatedAt).UTC(),
		})
	}

	for _, de := range doc.Events {
		id, err := uuid.Parse(de.ID)
		if err != nil {
			continue
		}
		e := domain.Event{
			ID:    id,
			Title: de.Title,
			Start: parseInstant(de.Start),
			End:   parseInstant(de.End),
			Tags:  append([]string{}, de.Tags...),
		}
		for _, dp := range de.Participants {
			kidID, err := uuid.Parse(dp.KidID)
			if err != nil {
				continue
			}
			e.Participants = append(e.Participants, domain.Participation{
				KidID:  kidID,
				Status: parseStatus(dp.Status),
			})
		}
		if de.SuggestedAt != nil {
			t := time.UnixMilli(*de.SuggestedAt).UTC()
			e.SuggestedAt = &t
		}
		for kidRaw, note := range de.SuggestNotes {
			kidID, err := uuid.Parse(kidRaw)
			if err != nil {
				continue
			}
			if e.SuggestNotes == nil {
				e.SuggestNotes = map[uuid.UUID]string{}
			}
			e.SuggestNotes[kidID] = note
		}
		s.Events = append(s.Events, e)
	}

	return s
}

// parseInstant parses an ISO-8601 timestamp, falling back to the zero
// instant when the string is malformed or missing.
func parseInstant(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// parseStatus clamps unknown numeric statuses to Pending.
func parseStatus(n int) domain.Status {
	if n < int(domain.StatusPending) || n > int(domain.StatusConfirmed) {
		return domain.StatusPending
	}
	return domain.Status(n)
}
