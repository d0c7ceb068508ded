package domain

import "sort"

// Catalog is the category → tag-set registry from which tags are chosen.
// Tag identity is the string value itself; there is no separate tag entity.
// Within one category a tag appears at most once; the same tag string may
// appear in multiple categories, and renames/deletes apply across all of
// them at once.
type Catalog map[string][]string

// Clone returns a deep copy of the catalog. Mutating the copy never
// affects the original.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for name, tags := range c {
		out[name] = append([]string(nil), tags...)
	}
	return out
}

// Categories returns all category names sorted alphabetically.
func (c Catalog) Categories() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether category holds the given tag.
func (c Catalog) Has(category, tag string) bool {
	for _, t := range c[category] {
		if t == tag {
			return true
		}
	}
	return false
}
