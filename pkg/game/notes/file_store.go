package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type noteFile struct {
	Key     string    `json:"key"`
	Text    string    `json:"text"`
	SavedAt time.Time `json:"saved_at"`
}

// FileStore persists notes as one JSON file per key.
type FileStore struct {
	mu      sync.Mutex
	dataDir string
}

// NewFileStore creates a file-based notes store. dataDir is created if needed.
func NewFileStore(dataDir string) (*FileStore, error) {
	if dataDir == "" {
		return nil, errors.New("empty notes directory")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) filePath(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}

func (s *FileStore) Load(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}

	var f noteFile
	if err := json.Unmarshal(data, &f); err != nil {
		return "", fmt.Errorf("decoding notes %s: %w", key, err)
	}
	return f.Text, nil
}

// Save writes to a temporary file and renames it over the old one.
func (s *FileStore) Save(ctx context.Context, key, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(noteFile{Key: key, Text: text, SavedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return err
	}

	path := s.filePath(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *FileStore) Close() error { return nil }
