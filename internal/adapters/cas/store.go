// Package cas persists read records in a flat JSON state file.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReadRecordStore = (*Store)(nil)

// Store implements ports.ReadRecordStore using a flat JSON file keyed by manifest path.
type Store struct {
	path    string
	mu      sync.RWMutex
	records map[string]domain.ReadRecord
}

// NewStore creates a new ReadRecordStore backed by the file at the given path.
// A missing file is an empty store; nothing is written until Put.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    filepath.Clean(path),
		records: make(map[string]domain.ReadRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.records); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
	}

	return nil
}

// save must be called with s.mu held.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the record for a manifest path.
func (s *Store) Get(path string) (*domain.ReadRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[path]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record and flushes the state file.
func (s *Store) Put(record domain.ReadRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.Path] = record
	return s.save()
}
