package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okerlund/rosterbook/internal/domain"
	"github.com/okerlund/rosterbook/internal/engine"
	"github.com/okerlund/rosterbook/internal/store"
)

// EventService implements business logic for events: CRUD, the candidate
// suggestion flow, the per-participant status cycle, the attention
// detector, and the calendar projection.
type EventService struct {
	store *store.Store
}

// NewEventService constructs an EventService over the shared store.
func NewEventService(st *store.Store) *EventService {
	return &EventService{store: st}
}

// List returns all events. Always returns a non-nil slice.
func (s *EventService) List() []domain.Event {
	events := s.store.Snapshot().Events
	if events == nil {
		return []domain.Event{}
	}
	return events
}

// Get returns a single event by id.
func (s *EventService) Get(id uuid.UUID) (domain.Event, error) {
	e, ok := s.store.Snapshot().Event(id)
	if !ok {
		return domain.Event{}, fmt.Errorf("service.EventService.Get: %w", domain.ErrNotFound)
	}
	return e, nil
}

// Create validates and adds a new event.
// Returns domain.ErrValidation for a blank title or a start that is not
// strictly before the end.
func (s *EventService) Create(title string, start, end time.Time, tags []string) (domain.Event, error) {
	if err := validateEvent(title, start, end); err != nil {
		return domain.Event{}, err
	}
	event := domain.Event{
		ID:    uuid.New(),
		Title: title,
		Start: start,
		End:   end,
		Tags:  tags,
	}
	next, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		return engine.AddEvent(cur, event), nil
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Create: %w", err)
	}
	created, _ := next.Event(event.ID)
	return created, nil
}

// Update overwrites an event's title, time window, and tags. Assignment
// state rides along untouched. Returns domain.ErrValidation for invalid
// input, domain.ErrNotFound when the event does not exist.
func (s *EventService) Update(id uuid.UUID, title string, start, end time.Time, tags []string) (domain.Event, error) {
	if err := validateEvent(title, start, end); err != nil {
		return domain.Event{}, err
	}
	next, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		updated, ok := engine.UpdateEvent(cur, domain.Event{ID: id, Title: title, Start: start, End: end, Tags: tags})
		if !ok {
			return cur, fmt.Errorf("service.EventService.Update: %w", domain.ErrNotFound)
		}
		return updated, nil
	})
	if err != nil {
		return domain.Event{}, err
	}
	event, _ := next.Event(id)
	return event, nil
}

// Delete removes an event. Nothing else cascades.
// Returns domain.ErrNotFound when the event does not exist.
func (s *EventService) Delete(id uuid.UUID) error {
	_, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		next, ok := engine.DeleteEvent(cur, id)
		if !ok {
			return cur, fmt.Errorf("service.EventService.Delete: %w", domain.ErrNotFound)
		}
		return next, nil
	})
	return err
}

// Candidates returns the ranked suggestion list for an event: every
// unassigned kid matching the optional query, scored against the event's
// tags, zero scores dropped.
func (s *EventService) Candidates(eventID uuid.UUID, query string) ([]engine.Candidate, error) {
	snap := s.store.Snapshot()
	event, ok := snap.Event(eventID)
	if !ok {
		return nil, fmt.Errorf("service.EventService.Candidates: %w", domain.ErrNotFound)
	}
	excluded := make(map[uuid.UUID]bool, len(event.Participants))
	for _, p := range event.Participants {
		excluded[p.KidID] = true
	}
	return engine.RankCandidates(event, snap.Kids, excluded, query), nil
}

// Confirm records the picked suggestions on the event. Unknown kid ids
// are dropped rather than stored as dangling references; kids already on
// the event are skipped. The first confirmation stamps the event's
// suggestion baseline. Returns domain.ErrNotFound on an unknown event.
func (s *EventService) Confirm(eventID uuid.UUID, kidIDs []uuid.UUID) (domain.Event, error) {
	next, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		if _, ok := cur.Event(eventID); !ok {
			return cur, fmt.Errorf("service.EventService.Confirm: %w", domain.ErrNotFound)
		}
		known := make([]uuid.UUID, 0, len(kidIDs))
		for _, id := range kidIDs {
			if _, ok := cur.Kid(id); ok {
				known = append(known, id)
			}
		}
		return engine.ConfirmAssignment(cur, eventID, known, time.Now().UTC()), nil
	})
	if err != nil {
		return domain.Event{}, err
	}
	event, _ := next.Event(eventID)
	return event, nil
}

// Cycle advances one participant's status one step. A stale kid id is a
// silent no-op per the engine's failure semantics.
// Returns domain.ErrNotFound on an unknown event.
func (s *EventService) Cycle(eventID, kidID uuid.UUID) (domain.Event, error) {
	next, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		if _, ok := cur.Event(eventID); !ok {
			return cur, fmt.Errorf("service.EventService.Cycle: %w", domain.ErrNotFound)
		}
		return engine.CycleStatus(cur, eventID, kidID), nil
	})
	if err != nil {
		return domain.Event{}, err
	}
	event, _ := next.Event(eventID)
	return event, nil
}

// RemoveParticipant unlinks a kid from an event. A stale kid id is a
// silent no-op. Returns domain.ErrNotFound on an unknown event.
func (s *EventService) RemoveParticipant(eventID, kidID uuid.UUID) error {
	_, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		if _, ok := cur.Event(eventID); !ok {
			return cur, fmt.Errorf("service.EventService.RemoveParticipant: %w", domain.ErrNotFound)
		}
		return engine.RemoveParticipant(cur, eventID, kidID), nil
	})
	return err
}

// SetNote stores a free-text suggestion note for a kid on an event; an
// empty note clears it. Returns domain.ErrNotFound on an unknown event.
func (s *EventService) SetNote(eventID, kidID uuid.UUID, note string) error {
	_, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		if _, ok := cur.Event(eventID); !ok {
			return cur, fmt.Errorf("service.EventService.SetNote: %w", domain.ErrNotFound)
		}
		return engine.SetSuggestNote(cur, eventID, kidID, note), nil
	})
	return err
}

// Attention returns the event's novelty warnings: unassigned kids created
// after the baseline whose score beats the warning threshold.
// Returns domain.ErrNotFound on an unknown event.
func (s *EventService) Attention(eventID uuid.UUID) ([]engine.Candidate, error) {
	snap := s.store.Snapshot()
	event, ok := snap.Event(eventID)
	if !ok {
		return nil, fmt.Errorf("service.EventService.Attention: %w", domain.ErrNotFound)
	}
	return engine.Attention(event, snap.Kids), nil
}

// AttentionCounts returns the badge count for every event in one pass,
// for list displays that show all badges at once.
func (s *EventService) AttentionCounts() map[uuid.UUID]int {
	snap := s.store.Snapshot()
	counts := make(map[uuid.UUID]int, len(snap.Events))
	for _, e := range snap.Events {
		counts[e.ID] = len(engine.Attention(e, snap.Kids))
	}
	return counts
}

// Calendar returns the filtered day-bucket projection: events matching
// the AND-semantics tag filter and the free-text query, restricted to
// those visible given the visible kid ids (nil means all kids visible),
// grouped by calendar day.
func (s *EventService) Calendar(tags []string, query string, visible []uuid.UUID) []engine.DayGroup {
	snap := s.store.Snapshot()

	var visibleSet map[uuid.UUID]bool
	if visible != nil {
		visibleSet = make(map[uuid.UUID]bool, len(visible))
		for _, id := range visible {
			visibleSet[id] = true
		}
	}

	matched := engine.FilterEvents(snap, tags, query)
	shown := matched[:0:0]
	for _, e := range matched {
		if engine.EventVisible(e, visibleSet) {
			shown = append(shown, e)
		}
	}
	return engine.DayBuckets(shown)
}

// validateEvent enforces business rules common to Create and Update.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - Start must be strictly before end.
func validateEvent(title string, start, end time.Time) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: start must be before end", domain.ErrValidation)
	}
	return nil
}
