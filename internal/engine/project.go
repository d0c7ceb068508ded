package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okerlund/rosterbook/internal/domain"
)

// DayGroup is one calendar day's worth of events, ordered by start instant.
type DayGroup struct {
	Day    time.Time
	Events []domain.Event
}

// EventVisible reports whether the event should be displayed given the set
// of visible kid ids. Events with no participants are always visible so
// unassigned events are never lost; otherwise at least one participant
// must be visible. A nil set means every kid is visible.
func EventVisible(event domain.Event, visible map[uuid.UUID]bool) bool {
	if len(event.Participants) == 0 || visible == nil {
		return true
	}
	for _, p := range event.Participants {
		if visible[p.KidID] {
			return true
		}
	}
	return false
}

// DayBuckets groups events by calendar day. An event occupies every day
// between its start and end inclusive (date-only comparison, time of day
// ignored), so multi-day events appear in each spanned day's bucket.
// Days are ordered ascending; events within a day by start instant.
func DayBuckets(events []domain.Event) []DayGroup {
	buckets := map[time.Time][]domain.Event{}
	for _, e := range events {
		for d := dateOf(e.Start); !d.After(dateOf(e.End)); d = d.AddDate(0, 0, 1) {
			buckets[d] = append(buckets[d], e)
		}
	}

	out := make([]DayGroup, 0, len(buckets))
	for day, evs := range buckets {
		sort.SliceStable(evs, func(i, j int) bool {
			return evs[i].Start.Before(evs[j].Start)
		})
		out = append(out, DayGroup{Day: day, Events: evs})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day)
	})
	return out
}

// FilterEvents returns the events matching a tag filter and a free-text
// query, ordered by start instant. Tag filtering is must-match-all: the
// event carries every filter tag. The query matches case-insensitively
// against title, tags, participant names, and suggestion notes.
func FilterEvents(s domain.State, tags []string, query string) []domain.Event {
	query = strings.ToLower(strings.TrimSpace(query))

	out := []domain.Event{}
	for _, e := range s.Events {
		if !hasAllTags(e.Tags, tags) {
			continue
		}
		if query != "" && !eventMatchesQuery(s, e, query) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// SetBuffer replaces the named transient tag-selection buffer, dropping
// duplicate tags. Buffers exist so rename/delete propagation reaches
// active filters and in-progress forms, not just persisted entities.
// No-op on a blank name.
func SetBuffer(s domain.State, name string, tags []string) domain.State {
	if strings.TrimSpace(name) == "" {
		return s
	}
	next := s.Clone()
	next.Buffers[name] = rewriteTags(tags, "", "")
	return next
}

// ClearBuffer discards the named buffer.
func ClearBuffer(s domain.State, name string) domain.State {
	if _, ok := s.Buffers[name]; !ok {
		return s
	}
	next := s.Clone()
	delete(next.Buffers, name)
	return next
}

// dateOf truncates an instant to its calendar date in UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// hasAllTags reports whether have contains every tag in want.
func hasAllTags(have, want []string) bool {
	set := make(map[string]bool, len(have))
	for _, t := range have {
		set[t] = true
	}
	for _, t := range want {
		if !set[t] {
			return false
		}
	}
	return true
}

// eventMatchesQuery reports whether the lowercased query is a substring
// of the event title, any tag, any participant's name, or any note.
func eventMatchesQuery(s domain.State, e domain.Event, query string) bool {
	if strings.Contains(strings.ToLower(e.Title), query) {
		return true
	}
	for _, t := range e.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	for _, p := range e.Participants {
		if kid, ok := s.Kid(p.KidID); ok {
			if strings.Contains(strings.ToLower(kid.Name), query) {
				return true
			}
		}
	}
	for _, note := range e.SuggestNotes {
		if strings.Contains(strings.ToLower(note), query) {
			return true
		}
	}
	return false
}
