// Package notes persists the player's free-text notes field.
package notes

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Key is the identifier the notes field is stored under.
const Key = "escapeRoomNotes"

// ErrNotFound is returned by Load when nothing was saved under the key.
var ErrNotFound = errors.New("notes not found")

// Store is the interface for notes persistence.
type Store interface {
	// Load returns the text saved under key.
	Load(ctx context.Context, key string) (string, error)

	// Save replaces the text saved under key.
	Save(ctx context.Context, key, text string) error

	Close() error
}

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open creates the store for backend. path is a directory for the file backend
// and a database file for sqlite; it is ignored for memory.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(path)
	case BackendSQLite:
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("unknown notes backend %q", backend)
}

// LoadText returns the saved notes, treating a missing entry as empty.
func LoadText(ctx context.Context, s Store) (string, error) {
	text, err := s.Load(ctx, Key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return text, err
}

// MemoryStore is an in-memory implementation of Store.
type MemoryStore struct {
	mu    sync.RWMutex
	notes map[string]string
}

// NewMemoryStore creates a new in-memory notes store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		notes: make(map[string]string),
	}
}

func (s *MemoryStore) Load(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	text, ok := s.notes[key]
	if !ok {
		return "", ErrNotFound
	}
	return text, nil
}

func (s *MemoryStore) Save(_ context.Context, key, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes[key] = text
	return nil
}

func (s *MemoryStore) Close() error { return nil }
