// Package store persists the rolling reading history. Both backends enforce
// the same cap: appending past the limit discards the oldest entries.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"weathermon/internal/reading"
)

type Store interface {
	// Append adds one reading, trimming the history to the cap. Errors are
	// returned to the caller; the monitoring loop decides whether to carry on.
	Append(r reading.Reading) error
	// LoadAll returns the full history, oldest first. An absent or empty
	// file is an empty history, not an error, and is never created by a read.
	LoadAll() ([]reading.Reading, error)
}

// FileStore keeps the history as a single pretty-printed JSON array,
// rewritten wholesale on every append.
type FileStore struct {
	path  string
	limit int
}

func NewFileStore(path string, limit int) *FileStore {
	return &FileStore{path: path, limit: limit}
}

func (s *FileStore) Append(r reading.Reading) error {
	history, err := s.LoadAll()
	if err != nil {
		return err
	}

	history = append(history, r)
	if len(history) > s.limit {
		history = history[len(history)-s.limit:]
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) LoadAll() ([]reading.Reading, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var history []reading.Reading
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return history, nil
}
