// Package storage provides the small key-value persistence layer used for
// session credentials. Keeping it behind an interface lets the session and
// transport layers be tested without touching the real filesystem.
package storage

// Store is a persistent string key-value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)
	// Set stores value under key.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Memory is an in-memory Store for tests.
type Memory struct {
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value for key.
func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}

// Delete removes key.
func (m *Memory) Delete(key string) error {
	delete(m.values, key)
	return nil
}
