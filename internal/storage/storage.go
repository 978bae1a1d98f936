// Package storage is the client's persistent key-value store, the analog of
// the device storage the mobile app kept its token and theme in. Values live
// in a single JSON file under the user config directory. No encryption.
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// The only keys this client persists.
const (
	KeyToken = "auth_token"
	KeyTheme = "theme_preference"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Store is a file-backed key-value store. Safe for concurrent use.
type Store struct {
	path string

	mu     sync.RWMutex
	values map[string]string
}

// New opens (or creates) the store file under dir.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	s := &Store{
		path:   filepath.Join(dir, "storage.json"),
		values: make(map[string]string),
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.values); err != nil {
			// A corrupt store file is treated as empty, the same way the
			// device storage layer handed back nulls for unreadable keys.
			s.values = make(map[string]string)
		}
	}
	return s, nil
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key and flushes to disk.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flush()
}

// Delete removes key and flushes to disk. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flush()
}

// Token returns the persisted bearer token, if any.
func (s *Store) Token() (string, bool) {
	v, err := s.Get(KeyToken)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

// SetToken persists the bearer token.
func (s *Store) SetToken(token string) error {
	return s.Set(KeyToken, token)
}

// ClearToken removes the persisted bearer token.
func (s *Store) ClearToken() error {
	return s.Delete(KeyToken)
}

func (s *Store) flush() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
