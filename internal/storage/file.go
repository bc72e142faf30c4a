package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileStore persists keys to a YAML file. Values are loaded once at open
// and rewritten wholesale on every mutation; the file holds credentials,
// so it is created with owner-only permissions.
type FileStore struct {
	path   string
	values map[string]string
}

// OpenFile loads a FileStore from path, creating an empty store if the
// file does not exist yet.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("parsing store %s: %w", path, err)
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return s, nil
}

// Get returns the value for key.
func (s *FileStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and rewrites the backing file.
func (s *FileStore) Set(key, value string) error {
	s.values[key] = value
	return s.flush()
}

// Delete removes key and rewrites the backing file.
func (s *FileStore) Delete(key string) error {
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flush()
}

func (s *FileStore) flush() error {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("marshaling store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing store %s: %w", s.path, err)
	}
	return nil
}
