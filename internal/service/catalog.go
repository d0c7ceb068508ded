// Package service contains the business logic for the rosterbook API.
// Services validate inputs, surface sentinel errors, and orchestrate
// engine calls through the store. No snapshot manipulation lives here;
// services depend on the pure engine for that.
package service

import (
	"fmt"
	"strings"

	"github.com/okerlund/rosterbook/internal/domain"
	"github.com/okerlund/rosterbook/internal/engine"
	"github.com/okerlund/rosterbook/internal/store"
)

// CatalogService implements business logic for the tag catalog.
type CatalogService struct {
	store *store.Store
}

// NewCatalogService constructs a CatalogService over the shared store.
func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// Get returns the current catalog.
func (s *CatalogService) Get() domain.Catalog {
	return s.store.Snapshot().Catalog
}

// AddCategory creates an empty category. Adding an existing category is
// an idempotent no-op. Returns domain.ErrValidation on a blank name.
func (s *CatalogService) AddCategory(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: category name is required", domain.ErrValidation)
	}
	_, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		return engine.AddCategory(cur, name), nil
	})
	return err
}

// AddTag appends a tag to a category. Adding an existing tag is an
// idempotent no-op. Returns domain.ErrValidation on blank input and
// domain.ErrNotFound when the category does not exist.
func (s *CatalogService) AddTag(category, tag string) error {
	if strings.TrimSpace(category) == "" || strings.TrimSpace(tag) == "" {
		return fmt.Errorf("%w: category and tag are required", domain.ErrValidation)
	}
	_, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		if _, ok := cur.Catalog[strings.TrimSpace(category)]; !ok {
			return cur, fmt.Errorf("service.CatalogService.AddTag: %w", domain.ErrNotFound)
		}
		return engine.AddTag(cur, category, tag), nil
	})
	return err
}
