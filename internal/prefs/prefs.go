// Package prefs keeps small durable key/value preferences, such as the file
// the address book was last opened from or saved to.
package prefs

import (
	"strings"
	"sync"
)

// KeyFilePath is the key under which the current address file is stored.
const KeyFilePath = "file_path"

// Store is a durable string key/value store scoped to this application.
type Store interface {
	// Get returns the value for key and whether it is set.
	Get(key string) (string, bool, error)
	// Set stores value under key.
	Set(key, value string) error
	// Clear removes key. Clearing a missing key is not an error.
	Clear(key string) error
}

// CurrentFile reads and writes the current-file setting.
type CurrentFile struct {
	store Store
}

// NewCurrentFile wraps store.
func NewCurrentFile(store Store) *CurrentFile {
	return &CurrentFile{store: store}
}

// Get returns the current file path, or false when none is associated.
func (c *CurrentFile) Get() (string, bool, error) {
	path, ok, err := c.store.Get(KeyFilePath)
	if err != nil || !ok || strings.TrimSpace(path) == "" {
		return "", false, err
	}
	return path, true, nil
}

// Set records path as the current file. An empty path clears the setting.
func (c *CurrentFile) Set(path string) error {
	if strings.TrimSpace(path) == "" {
		return c.Clear()
	}
	return c.store.Set(KeyFilePath, path)
}

// Clear forgets the current file.
func (c *CurrentFile) Clear() error {
	return c.store.Clear(KeyFilePath)
}

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
