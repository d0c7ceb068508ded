package engine

import "github.com/okerlund/rosterbook/internal/domain"

// Attention returns the kids the event should be warned about: roster
// members created after the event's suggestion baseline, not currently
// assigned, whose score against the event's tags is strictly greater
// than one. A single shared tag is not a strong enough signal.
//
// Events with no baseline were never triaged and produce no warnings;
// neither do events with no tags, since scoring would be meaningless.
// The result is ordered like RankCandidates: score descending, name
// ascending. The badge count is len of the returned slice.
func Attention(event domain.Event, roster []domain.Kid) []Candidate {
	if event.SuggestedAt == nil || len(event.Tags) == 0 {
		return []Candidate{}
	}

	out := []Candidate{}
	for _, kid := range roster {
		if !kid.CreatedAt.After(*event.SuggestedAt) {
			continue
		}
		if event.HasParticipant(kid.ID) {
			continue
		}
		score := Score(kid.Tags, event.Tags)
		if score > 1 {
			out = append(out, Candidate{Kid: kid, Score: score})
		}
	}
	sortCandidates(out)
	return out
}
