// Package tagstore provides read access to the blog's tag vocabulary for
// the suggestion engine, plus a SQLite-backed implementation.
package tagstore

// Tag is a stored tag with its usage count across posts.
type Tag struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	UsageCount int    `json:"usage_count"`
}

// Store is the read-only tag query surface the analysis pipeline consumes.
// Lookups are point-in-time reads with no transactional guarantee against
// concurrent writers.
type Store interface {
	// ListTags returns all tags.
	ListTags() ([]Tag, error)

	// TagExists reports whether a tag with this name exists.
	// Matching is case-insensitive.
	TagExists(name string) (bool, error)

	// PopularTags returns up to n tags ordered by descending usage count.
	PopularTags(n int) ([]Tag, error)
}
