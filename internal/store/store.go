// Package store owns the application state snapshot and its persistence
// schedule. Engine operations are pure; the store is the single logical
// writer that adopts each returned snapshot and flushes it to the
// document repo after a short quiescent delay.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/okerlund/rosterbook/internal/domain"
)

// DocumentStore is the slice of the document repo the store depends on.
// Defined here, in the consumer package, so tests can inject a fake
// without touching the database layer.
type DocumentStore interface {
	Save(ctx context.Context, s domain.State) error
}

// flushTimeout bounds one flush attempt including retries.
const flushTimeout = 10 * time.Second

// Store serializes state transitions and schedules debounced flushes.
//
// Persistence is best-effort by design: a failed flush is logged and
// swallowed, in-memory state stays the source of truth, and the next
// successful flush supersedes the failed one. Flushes are serialized so
// an older snapshot can never overwrite a newer one.
type Store struct {
	docs     DocumentStore
	log      *slog.Logger
	debounce time.Duration

	mu    sync.Mutex
	state domain.State
	timer *time.Timer

	flushMu sync.Mutex
	wg      sync.WaitGroup
}

// New constructs a Store seeded with the initial snapshot.
func New(initial domain.State, docs DocumentStore, log *slog.Logger, debounce time.Duration) *Store {
	return &Store{
		docs:     docs,
		log:      log,
		debounce: debounce,
		state:    initial,
	}
}

// Snapshot returns the current state value. Snapshots are immutable by
// convention: engine operations clone before modifying, so handing out
// the value directly is safe.
func (st *Store) Snapshot() domain.State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

// Apply runs mutate against the current snapshot and adopts the result.
// When mutate returns an error the state is left untouched and no flush
// is scheduled. Mutations run under the store lock, which gives the
// single-writer execution model: every operation runs to completion
// before the next is observed.
func (st *Store) Apply(mutate func(domain.State) (domain.State, error)) (domain.State, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	next, err := mutate(st.state)
	if err != nil {
		return st.state, err
	}
	st.state = next
	st.scheduleFlushLocked()
	return next, nil
}

// scheduleFlushLocked resets the debounce timer. A burst of mutations
// results in one flush after the burst goes quiet.
func (st *Store) scheduleFlushLocked() {
	if st.timer != nil && st.timer.Stop() {
		// Previous timer cancelled before firing; retire its wg slot.
		st.wg.Done()
	}
	st.wg.Add(1)
	st.timer = time.AfterFunc(st.debounce, func() {
		defer st.wg.Done()
		st.flush()
	})
}

// flush persists the latest snapshot, retrying briefly on failure.
// Serialized via flushMu so concurrent timers cannot reorder writes.
func (st *Store) flush() {
	st.flushMu.Lock()
	defer st.flushMu.Unlock()

	snapshot := st.Snapshot()

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(100*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := st.docs.Save(ctx, snapshot); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		st.log.Error("state flush failed", "error", err)
		return
	}
	st.log.Debug("state flushed")
}

// Close cancels any pending debounce timer and performs a final
// synchronous flush so a clean shutdown never loses the tail of changes.
func (st *Store) Close() {
	st.mu.Lock()
	if st.timer != nil && st.timer.Stop() {
		// Timer cancelled before firing; its flush will not run.
		st.wg.Done()
	}
	st.mu.Unlock()

	st.wg.Wait()
	st.flush()
}
