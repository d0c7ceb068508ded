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

// RosterService implements business logic for the kid roster.
type RosterService struct {
	store *store.Store
}

// NewRosterService constructs a RosterService over the shared store.
func NewRosterService(st *store.Store) *RosterService {
	return &RosterService{store: st}
}

// List returns all kids. Always returns a non-nil slice so callers can
// safely range over it.
func (s *RosterService) List() []domain.Kid {
	kids := s.store.Snapshot().Kids
	if kids == nil {
		return []domain.Kid{}
	}
	return kids
}

// Create validates and adds a new kid. The creation time is recorded so
// the attention detector can compare it to event baselines later.
// Returns domain.ErrValidation when the name is blank.
func (s *RosterService) Create(name string, tags []string) (domain.Kid, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Kid{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	kid := domain.Kid{
		ID:        uuid.New(),
		Name:      name,
		Tags:      tags,
		CreatedAt: time.Now().UTC(),
	}
	next, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		return engine.AddKid(cur, kid), nil
	})
	if err != nil {
		return domain.Kid{}, fmt.Errorf("service.RosterService.Create: %w", err)
	}
	created, _ := next.Kid(kid.ID)
	return created, nil
}

// Update overwrites a kid's name and tags. Returns domain.ErrValidation
// on a blank name, domain.ErrNotFound when the kid does not exist.
func (s *RosterService) Update(id uuid.UUID, name string, tags []string) (domain.Kid, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Kid{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	next, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		updated, ok := engine.UpdateKid(cur, domain.Kid{ID: id, Name: name, Tags: tags})
		if !ok {
			return cur, fmt.Errorf("service.RosterService.Update: %w", domain.ErrNotFound)
		}
		return updated, nil
	})
	if err != nil {
		return domain.Kid{}, err
	}
	kid, _ := next.Kid(id)
	return kid, nil
}

// Delete removes a kid and cascades its participations and notes out of
// every event. Returns domain.ErrNotFound when the kid does not exist.
func (s *RosterService) Delete(id uuid.UUID) error {
	_, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		next, ok := engine.DeleteKid(cur, id)
		if !ok {
			return cur, fmt.Errorf("service.RosterService.Delete: %w", domain.ErrNotFound)
		}
		return next, nil
	})
	return err
}
