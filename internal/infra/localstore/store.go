// internal/infra/localstore/store.go
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store is a file-backed key-value snapshot store. Each key maps to one
// JSON file under the data directory. It is the durability fallback of
// last resort when Firestore is unreachable, so writes are atomic
// (tmp + rename) and reads tolerate missing files.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New creates the data directory if needed and returns a Store.
func New(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("localstore: dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Get reads the raw value for key. ok is false when the key has never
// been written (or was removed).
func (s *Store) Get(key string) (data []byte, ok bool, err error) {
	if s == nil {
		return nil, false, errors.New("localstore: store is nil")
	}
	path, err := s.path(key)
	if err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("localstore: read %s: %w", key, err)
	}
	return b, true, nil
}

// Set writes the raw value for key atomically.
func (s *Store) Set(key string, data []byte) error {
	if s == nil {
		return errors.New("localstore: store is nil")
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("localstore: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("localstore: rename %s: %w", key, err)
	}
	return nil
}

// Remove deletes the value for key. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	if s == nil {
		return errors.New("localstore: store is nil")
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: remove %s: %w", key, err)
	}
	return nil
}

// GetJSON unmarshals the value for key into v. ok is false when absent.
// A malformed value returns an error; callers treat that as "no snapshot".
func (s *Store) GetJSON(key string, v any) (ok bool, err error) {
	b, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("localstore: parse %s: %w", key, err)
	}
	return true, nil
}

// SetJSON marshals v and stores it under key.
func (s *Store) SetJSON(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: marshal %s: %w", key, err)
	}
	return s.Set(key, b)
}

func (s *Store) path(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("localstore: key is empty")
	}
	// Keys are fixed strings chosen by this codebase; reject separators anyway.
	if strings.ContainsAny(key, "/\\") {
		return "", fmt.Errorf("localstore: invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
