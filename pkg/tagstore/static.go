package tagstore

import (
	"sort"
	"strings"
)

// StaticStore is an in-memory Store with a fixed tag list. Useful for tests
// and for running the analyzer without a tag database.
type StaticStore struct {
	tags []Tag
}

// NewStaticStore builds a store over the given tags.
func NewStaticStore(tags []Tag) *StaticStore {
	copied := make([]Tag, len(tags))
	copy(copied, tags)
	return &StaticStore{tags: copied}
}

// ListTags returns all tags.
func (s *StaticStore) ListTags() ([]Tag, error) {
	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	return out, nil
}

// TagExists reports whether a tag with this name exists (case-insensitive).
func (s *StaticStore) TagExists(name string) (bool, error) {
	for _, tag := range s.tags {
		if strings.EqualFold(tag.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

// PopularTags returns up to n tags by descending usage count.
func (s *StaticStore) PopularTags(n int) ([]Tag, error) {
	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UsageCount > out[j].UsageCount
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}
