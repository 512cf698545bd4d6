// Package caching stores fetched post markup on disk so repeated analysis
// of the same URL skips the network.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache is a file-based cache keyed by URL with a freshness TTL.
type Cache struct {
	dir string
	ttl time.Duration
}

// NewCache creates the cache directory if needed.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// key hashes the URL into a stable filename.
func (c *Cache) key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("post-%x.html", hash)
}

// Get returns the cached markup for a URL and whether it was fresh.
// Expired or unreadable entries count as misses.
func (c *Cache) Get(url string) ([]byte, bool) {
	filePath := filepath.Join(c.dir, c.key(url))

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores the markup for a URL, overwriting any previous entry.
func (c *Cache) Set(url string, data []byte) error {
	filePath := filepath.Join(c.dir, c.key(url))
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
