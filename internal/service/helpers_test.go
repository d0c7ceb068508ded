package service_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/okerlund/rosterbook/internal/domain"
	"github.com/okerlund/rosterbook/internal/store"
)

// nopDocStore discards every save; service tests exercise the in-memory
// snapshot, not persistence.
type nopDocStore struct{}

func (nopDocStore) Save(context.Context, domain.State) error { return nil }

// newTestStore builds a store seeded with the given snapshot. The long
// debounce keeps the flusher quiet for the duration of a test.
func newTestStore(initial domain.State) *store.Store {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return store.New(initial, nopDocStore{}, logger, time.Hour)
}
