// Package storage persists encoded analysis results to disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Storage struct{}

// FileStats holds metadata about a stored result without reading it.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// SaveResult writes an encoded result, creating parent directories as
// needed.
func (s *Storage) SaveResult(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating result directory: %w", err)
		}
	}
	if err := os.WriteFile(filePath, content, 0o644); err != nil {
		return fmt.Errorf("error saving result: %w", err)
	}
	return nil
}

// ReadResult loads a previously saved result.
func (s *Storage) ReadResult(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("error reading result: %w", err)
	}
	return data, nil
}

// HasResult reports whether a result file already exists.
func (s *Storage) HasResult(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil || !os.IsNotExist(err)
}

// GetFileStats returns size and modification time for a stored result.
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting result stats: %w", err)
	}
	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
