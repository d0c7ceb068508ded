package engine_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okerlund/rosterbook/internal/domain"
	"github.com/okerlund/rosterbook/internal/engine"
)

func TestAttention_specScenario(t *testing.T) {
	// E1 was triaged at baseline; P1 got assigned then. P2 arrives later
	// with two shared tags and must be flagged; P3 arrives later with only
	// one shared tag and must not.
	baseline := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	p1 := domain.Kid{ID: uuid.New(), Name: "P1", Tags: []string{"north"}, CreatedAt: baseline.Add(-time.Hour)}
	p2 := domain.Kid{ID: uuid.New(), Name: "P2", Tags: []string{"north", "south"}, CreatedAt: baseline.Add(10 * time.Second)}
	p3 := domain.Kid{ID: uuid.New(), Name: "P3", Tags: []string{"north"}, CreatedAt: baseline.Add(10 * time.Second)}

	e1 := domain.Event{
		ID:           uuid.New(),
		Tags:         []string{"north", "south"},
		Participants: []domain.Participation{{KidID: p1.ID}},
		SuggestedAt:  &baseline,
	}

	got := engine.Attention(e1, []domain.Kid{p1, p2, p3})

	require.Len(t, got, 1)
	assert.Equal(t, p2.ID, got[0].Kid.ID)
	assert.Equal(t, 2, got[0].Score)
}

func TestAttention_noBaselineMeansNoWarnings(t *testing.T) {
	// Never warn on events that were never triaged.
	e := domain.Event{ID: uuid.New(), Tags: []string{"a", "b"}}
	strong := domain.Kid{ID: uuid.New(), Name: "Kid", Tags: []string{"a", "b"}, CreatedAt: time.Now()}

	assert.Empty(t, engine.Attention(e, []domain.Kid{strong}))
}

func TestAttention_noTagsMeansNoWarnings(t *testing.T) {
	baseline := time.Now()
	e := domain.Event{ID: uuid.New(), SuggestedAt: &baseline}
	k := domain.Kid{ID: uuid.New(), Name: "Kid", Tags: []string{"a", "b"}, CreatedAt: baseline.Add(time.Minute)}

	assert.Empty(t, engine.Attention(e, []domain.Kid{k}))
}

func TestAttention_excludesPreBaselineAndAssigned(t *testing.T) {
	baseline := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	old := domain.Kid{ID: uuid.New(), Name: "Old", Tags: []string{"a", "b"}, CreatedAt: baseline.Add(-time.Minute)}
	assigned := domain.Kid{ID: uuid.New(), Name: "Assigned", Tags: []string{"a", "b"}, CreatedAt: baseline.Add(time.Minute)}
	e := domain.Event{
		ID:           uuid.New(),
		Tags:         []string{"a", "b"},
		Participants: []domain.Participation{{KidID: assigned.ID}},
		SuggestedAt:  &baseline,
	}

	// Neither a perfect-scoring kid created before the baseline nor an
	// already-assigned one may appear, regardless of score.
	assert.Empty(t, engine.Attention(e, []domain.Kid{old, assigned}))
}

func TestAttention_ordersLikeRankCandidates(t *testing.T) {
	baseline := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	after := baseline.Add(time.Minute)
	e := domain.Event{ID: uuid.New(), Tags: []string{"a", "b", "c"}, SuggestedAt: &baseline}

	kids := []domain.Kid{
		{ID: uuid.New(), Name: "Zoe", Tags: []string{"a", "b"}, CreatedAt: after},
		{ID: uuid.New(), Name: "Amy", Tags: []string{"a", "b"}, CreatedAt: after},
		{ID: uuid.New(), Name: "Ben", Tags: []string{"a", "b", "c"}, CreatedAt: after},
	}

	got := engine.Attention(e, kids)

	require.Len(t, got, 3)
	assert.Equal(t, "Ben", got[0].Kid.Name) // highest score first
	assert.Equal(t, "Amy", got[1].Kid.Name) // tie broken by name
	assert.Equal(t, "Zoe", got[2].Kid.Name)
}
