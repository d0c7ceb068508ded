package engine

import (
	"strings"

	"github.com/okerlund/rosterbook/internal/domain"
)

// Tags are referenced by value, so a rename is structurally a bulk
// find-and-replace and a delete a bulk removal. Every collection that can
// hold tag strings; the catalog, each kid, each event, and each transient
// selection buffer; goes through the same rewrite routine. Centralizing
// the rewrite is what keeps the no-dangling-tag invariant: a collection
// that is never enumerated here is a propagation bug.

// RenameTag replaces from with to in every tag-holding collection,
// deduplicating where to already existed (silent merge).
// No-op if either name is blank after trimming or the names are equal.
func RenameTag(s domain.State, from, to string) domain.State {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if from == "" || to == "" || from == to {
		return s
	}
	return propagate(s, from, to)
}

// DeleteTag removes tag from every tag-holding collection. Kids and
// events themselves are untouched; only the reference is dropped.
// No-op if the name is blank after trimming.
func DeleteTag(s domain.State, tag string) domain.State {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return s
	}
	return propagate(s, tag, "")
}

// propagate applies a single replace-then-dedupe transform across the
// whole snapshot. An empty replacement means removal.
func propagate(s domain.State, from, to string) domain.State {
	next := s.Clone()
	for name, tags := range next.Catalog {
		next.Catalog[name] = rewriteTags(tags, from, to)
	}
	for i := range next.Kids {
		next.Kids[i].Tags = rewriteTags(next.Kids[i].Tags, from, to)
	}
	for i := range next.Events {
		next.Events[i].Tags = rewriteTags(next.Events[i].Tags, from, to)
	}
	for name, tags := range next.Buffers {
		next.Buffers[name] = rewriteTags(tags, from, to)
	}
	return next
}

// rewriteTags replaces from with to in one tag list, preserving order and
// dropping duplicates introduced by the replacement. to == "" removes the
// tag instead.
func rewriteTags(tags []string, from, to string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		if t == from {
			t = to
		}
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
