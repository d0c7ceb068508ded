// Package engine implements the tag-aware matching core as pure functions
// over domain.State snapshots. Every operation takes the current snapshot
// and returns the next one; nothing here performs I/O or mutates shared
// memory. Orchestration, validation surfacing, and persistence live in the
// service and store layers.
package engine

import (
	"strings"

	"github.com/okerlund/rosterbook/internal/domain"
)

// AddCategory creates an empty tag set under name.
// No-op if the name is blank or the category already exists.
func AddCategory(s domain.State, name string) domain.State {
	name = strings.TrimSpace(name)
	if name == "" {
		return s
	}
	if _, ok := s.Catalog[name]; ok {
		return s
	}
	next := s.Clone()
	next.Catalog[name] = []string{}
	return next
}

// AddTag appends tag to the named category.
// No-op if either name is blank, the category does not exist, or the
// category already holds the tag.
func AddTag(s domain.State, category, tag string) domain.State {
	category = strings.TrimSpace(category)
	tag = strings.TrimSpace(tag)
	if category == "" || tag == "" {
		return s
	}
	if _, ok := s.Catalog[category]; !ok {
		return s
	}
	if s.Catalog.Has(category, tag) {
		return s
	}
	next := s.Clone()
	next.Catalog[category] = append(next.Catalog[category], tag)
	return next
}
