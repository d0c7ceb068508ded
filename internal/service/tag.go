package service

import (
	"fmt"
	"strings"

	"github.com/okerlund/rosterbook/internal/domain"
	"github.com/okerlund/rosterbook/internal/engine"
	"github.com/okerlund/rosterbook/internal/store"
)

// TagService implements tag-level operations: the global rename/delete
// propagation and the transient tag-selection buffers those operations
// must also reach.
type TagService struct {
	store *store.Store
}

// NewTagService constructs a TagService over the shared store.
func NewTagService(st *store.Store) *TagService {
	return &TagService{store: st}
}

// Rename replaces from with to everywhere the tag is referenced: every
// catalog category, every kid, every event, and every selection buffer.
// Renaming a tag onto an existing one silently merges the two.
// Renaming a tag to itself is a no-op. Returns domain.ErrValidation when
// either name is blank.
func (s *TagService) Rename(from, to string) error {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return fmt.Errorf("%w: both tag names are required", domain.ErrValidation)
	}
	if strings.TrimSpace(from) == strings.TrimSpace(to) {
		return nil
	}
	_, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		return engine.RenameTag(cur, from, to), nil
	})
	return err
}

// Delete drops the tag from everywhere it is referenced. Kids and events
// themselves are untouched. Returns domain.ErrValidation on a blank name.
func (s *TagService) Delete(tag string) error {
	if strings.TrimSpace(tag) == "" {
		return fmt.Errorf("%w: tag name is required", domain.ErrValidation)
	}
	_, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		return engine.DeleteTag(cur, tag), nil
	})
	return err
}

// Buffers returns the current transient tag-selection buffers.
func (s *TagService) Buffers() map[string][]string {
	return s.store.Snapshot().Buffers
}

// SetBuffer replaces the named selection buffer (an active filter or an
// in-progress form's tag picks) so propagation covers it.
// Returns domain.ErrValidation on a blank name.
func (s *TagService) SetBuffer(name string, tags []string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: buffer name is required", domain.ErrValidation)
	}
	_, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		return engine.SetBuffer(cur, name, tags), nil
	})
	return err
}

// ClearBuffer discards the named buffer. Clearing an unknown buffer is a
// no-op.
func (s *TagService) ClearBuffer(name string) error {
	_, err := s.store.Apply(func(cur domain.State) (domain.State, error) {
		return engine.ClearBuffer(cur, name), nil
	})
	return err
}
