package tagstore

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA temp_store = MEMORY;

CREATE TABLE IF NOT EXISTS tags (
    tag_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE COLLATE NOCASE,
    usage_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_tags_usage ON tags(usage_count DESC);
`

// SQLiteStore is a Store backed by a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// Open opens or creates the tag database at the given path.
// Use ":memory:" for an in-memory store.
func Open(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open tag database: %w", err)
	}

	store := &SQLiteStore{db: db, path: dbPath}
	if err := store.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize tag schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(schema)
	return err
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ListTags returns all tags ordered by name.
func (s *SQLiteStore) ListTags() ([]Tag, error) {
	rows, err := s.db.Query(`
		SELECT tag_id, name, usage_count
		FROM tags
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// TagExists reports whether a tag with this name exists (case-insensitive).
func (s *SQLiteStore) TagExists(name string) (bool, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM tags WHERE name = ?`, name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check tag existence: %w", err)
	}
	return count > 0, nil
}

// FindTag returns the tag with this name, or (nil, nil) when absent.
func (s *SQLiteStore) FindTag(name string) (*Tag, error) {
	var tag Tag
	err := s.db.QueryRow(`
		SELECT tag_id, name, usage_count
		FROM tags
		WHERE name = ?
	`, name).Scan(&tag.ID, &tag.Name, &tag.UsageCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}
	return &tag, nil
}

// PopularTags returns up to n tags by descending usage count. Name breaks
// ties so results are deterministic.
func (s *SQLiteStore) PopularTags(n int) ([]Tag, error) {
	rows, err := s.db.Query(`
		SELECT tag_id, name, usage_count
		FROM tags
		ORDER BY usage_count DESC, name
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular tags: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// AddTag inserts a tag if it doesn't exist and returns its ID.
func (s *SQLiteStore) AddTag(name string) (int64, error) {
	_, err := s.db.Exec(`INSERT OR IGNORE INTO tags (name) VALUES (?)`, name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert tag: %w", err)
	}

	var id int64
	if err := s.db.QueryRow(`SELECT tag_id FROM tags WHERE name = ?`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to read back tag id: %w", err)
	}
	return id, nil
}

// IncrementUsage bumps a tag's usage count by one.
func (s *SQLiteStore) IncrementUsage(name string) error {
	res, err := s.db.Exec(`UPDATE tags SET usage_count = usage_count + 1 WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to increment tag usage: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("tag %q not found", name)
	}
	return nil
}

func scanTags(rows *sql.Rows) ([]Tag, error) {
	var tags []Tag
	for rows.Next() {
		var tag Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.UsageCount); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return tags, nil
}
