// Package storage owns the in-memory real-estate document and its
// on-disk mirror: one pretty-printed JSON file holding the whole
// catalog.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"realty/pkg/model"
)

// Store holds the current document in memory and mirrors it to a file.
// A single mutex serializes every read-modify-persist sequence; plain
// reads take it only long enough to fetch the document pointer, so they
// observe a possibly concurrently mutated snapshot.
type Store struct {
	mu   sync.Mutex
	path string
	doc  *model.RealEstate
}

// Open loads the persisted document at cfg.DataFile. A missing file is
// replaced with a freshly written empty document; an unreadable or
// corrupt file is tolerated by resetting to an empty document rather
// than failing startup.
func Open(cfg Config) (*Store, error) {
	s := &Store{path: cfg.DataFile, doc: model.NewRealEstate()}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	raw, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		doc := model.NewRealEstate()
		if jsonErr := json.Unmarshal(raw, doc); jsonErr != nil {
			slog.Warn("Data file unreadable, starting from an empty document",
				"path", s.path, "error", jsonErr)
			doc = model.NewRealEstate()
		}
		s.doc = doc
	case os.IsNotExist(err):
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
	default:
		slog.Warn("Data file unreadable, starting from an empty document",
			"path", s.path, "error", err)
	}

	return s, nil
}

// Get returns the current in-memory document. The document is shared,
// not copied; mutations must go through Update.
func (s *Store) Get() *model.RealEstate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Update runs fn under the store lock and persists the document when fn
// reports a change. The lock is held for the full read-modify-persist
// sequence. Errors from fn are returned as-is; persist failures are
// wrapped as model.ErrPersistence.
func (s *Store) Update(fn func(doc *model.RealEstate) (changed bool, err error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed, err := fn(s.doc)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return s.persistLocked()
}

// Persist serializes the full document and overwrites the backing file.
func (s *Store) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}
	// Create-if-absent, truncate-if-present. Not crash-atomic; a torn
	// write is tolerated by the load path.
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}
	return nil
}
