package engine

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/okerlund/rosterbook/internal/domain"
)

// Candidate pairs a kid with its match score against one event.
type Candidate struct {
	Kid   domain.Kid
	Score int
}

// Score returns the number of tags present in both sets. There is no
// normalization by set size; a kid with many tags is not penalized.
func Score(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	n := 0
	seen := make(map[string]bool, len(b))
	for _, t := range b {
		if set[t] && !seen[t] {
			seen[t] = true
			n++
		}
	}
	return n
}

// RankCandidates scores every kid in the roster against the event's tags
// and returns the ranked suggestion list.
//
//   - Kids whose id is in excluded (already assigned) are skipped.
//   - A non-empty query keeps only kids whose name or any tag contains it
//     as a case-insensitive substring.
//   - Zero-score kids are dropped.
//   - Order: score descending, ties by name ascending. Deterministic for
//     identical inputs.
func RankCandidates(event domain.Event, roster []domain.Kid, excluded map[uuid.UUID]bool, query string) []Candidate {
	query = strings.ToLower(strings.TrimSpace(query))

	out := []Candidate{}
	for _, kid := range roster {
		if excluded[kid.ID] {
			continue
		}
		if query != "" && !kidMatchesQuery(kid, query) {
			continue
		}
		score := Score(kid.Tags, event.Tags)
		if score == 0 {
			continue
		}
		out = append(out, Candidate{Kid: kid, Score: score})
	}
	sortCandidates(out)
	return out
}

// sortCandidates orders by score descending, then name ascending.
func sortCandidates(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		return cands[i].Kid.Name < cands[j].Kid.Name
	})
}

// kidMatchesQuery reports whether the lowercased query is a substring of
// the kid's name or any of its tags.
func kidMatchesQuery(kid domain.Kid, query string) bool {
	if strings.Contains(strings.ToLower(kid.Name), query) {
		return true
	}
	for _, t := range kid.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}
