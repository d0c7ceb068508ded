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

// ---- EventVisible ----------------------------------------------------------

func TestEventVisible_unassignedEventsAlwaysShow(t *testing.T) {
	e := domain.Event{ID: uuid.New()}

	assert.True(t, engine.EventVisible(e, map[uuid.UUID]bool{}))
}

func TestEventVisible_needsOneVisibleParticipant(t *testing.T) {
	shown, hidden := uuid.New(), uuid.New()
	e := domain.Event{
		ID:           uuid.New(),
		Participants: []domain.Participation{{KidID: shown}, {KidID: hidden}},
	}

	assert.True(t, engine.EventVisible(e, map[uuid.UUID]bool{shown: true}))
	assert.False(t, engine.EventVisible(e, map[uuid.UUID]bool{uuid.New(): true}))
}

func TestEventVisible_nilSetMeansEveryoneVisible(t *testing.T) {
	e := domain.Event{
		ID:           uuid.New(),
		Participants: []domain.Participation{{KidID: uuid.New()}},
	}

	assert.True(t, engine.EventVisible(e, nil))
}

// ---- DayBuckets ------------------------------------------------------------

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayBuckets_multiDayEventAppearsInEachDay(t *testing.T) {
	// Overnight event: Day1 18:00 → Day2 09:00 occupies both days.
	overnight := domain.Event{
		ID:    uuid.New(),
		Title: "Overnight",
		Start: time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC),
	}
	morning := domain.Event{
		ID:    uuid.New(),
		Title: "Morning",
		Start: time.Date(2026, 6, 2, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC),
	}

	got := engine.DayBuckets([]domain.Event{morning, overnight})

	require.Len(t, got, 2)
	assert.Equal(t, day(2026, 6, 1), got[0].Day)
	require.Len(t, got[0].Events, 1)
	assert.Equal(t, "Overnight", got[0].Events[0].Title)

	assert.Equal(t, day(2026, 6, 2), got[1].Day)
	require.Len(t, got[1].Events, 2)
	// Within a day, ordered by start instant: 08:00 before 18:00.
	assert.Equal(t, "Morning", got[1].Events[0].Title)
	assert.Equal(t, "Overnight", got[1].Events[1].Title)
}

func TestDayBuckets_daysAscending(t *testing.T) {
	later := domain.Event{ID: uuid.New(), Start: day(2026, 6, 5), End: day(2026, 6, 5)}
	earlier := domain.Event{ID: uuid.New(), Start: day(2026, 6, 3), End: day(2026, 6, 3)}

	got := engine.DayBuckets([]domain.Event{later, earlier})

	require.Len(t, got, 2)
	assert.True(t, got[0].Day.Before(got[1].Day))
}

// ---- FilterEvents ----------------------------------------------------------

func filterState() domain.State {
	s := domain.NewState()
	kid := domain.Kid{ID: uuid.New(), Name: "Mira"}
	s.Kids = []domain.Kid{kid}
	s.Events = []domain.Event{
		{
			ID: uuid.New(), Title: "Forest hike",
			Start: day(2026, 6, 2), End: day(2026, 6, 2),
			Tags: []string{"outdoor", "north"},
		},
		{
			ID: uuid.New(), Title: "Chess night",
			Start: day(2026, 6, 1), End: day(2026, 6, 1),
			Tags:         []string{"indoor"},
			Participants: []domain.Participation{{KidID: kid.ID}},
			SuggestNotes: map[uuid.UUID]string{kid.ID: "bring the travel board"},
		},
	}
	return s
}

func TestFilterEvents_tagFilterIsMustMatchAll(t *testing.T) {
	s := filterState()

	both := engine.FilterEvents(s, []string{"outdoor", "north"}, "")
	require.Len(t, both, 1)
	assert.Equal(t, "Forest hike", both[0].Title)

	// An event carrying only one of the two filter tags does not match.
	assert.Empty(t, engine.FilterEvents(s, []string{"outdoor", "indoor"}, ""))
}

func TestFilterEvents_queryMatchesAcrossFields(t *testing.T) {
	s := filterState()

	byTitle := engine.FilterEvents(s, nil, "FOREST")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Forest hike", byTitle[0].Title)

	byTag := engine.FilterEvents(s, nil, "indoor")
	require.Len(t, byTag, 1)
	assert.Equal(t, "Chess night", byTag[0].Title)

	byKidName := engine.FilterEvents(s, nil, "mira")
	require.Len(t, byKidName, 1)
	assert.Equal(t, "Chess night", byKidName[0].Title)

	byNote := engine.FilterEvents(s, nil, "travel board")
	require.Len(t, byNote, 1)
	assert.Equal(t, "Chess night", byNote[0].Title)
}

func TestFilterEvents_orderedByStart(t *testing.T) {
	s := filterState()

	got := engine.FilterEvents(s, nil, "")

	require.Len(t, got, 2)
	assert.Equal(t, "Chess night", got[0].Title)
	assert.Equal(t, "Forest hike", got[1].Title)
}

// ---- Buffers ---------------------------------------------------------------

func TestSetBuffer_dedupesAndClearWorks(t *testing.T) {
	s := domain.NewState()

	next := engine.SetBuffer(s, "filter", []string{"a", "b", "a"})
	assert.Equal(t, []string{"a", "b"}, next.Buffers["filter"])

	next = engine.ClearBuffer(next, "filter")
	assert.NotContains(t, next.Buffers, "filter")
}
