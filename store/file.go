package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const fileExt = ".kv"

// FileStore is a file-backed KeyValueStore: one file per key under a base
// directory. Writes go through a temp file and rename, so a crash never
// leaves a half-written value behind.
type FileStore struct {
	basePath string
	mu       sync.Mutex
}

// NewFileStore creates a file store rooted at basePath, creating the
// directory if needed.
func NewFileStore(basePath string) (*FileStore, error) {
	if basePath == "" {
		return nil, errors.New("storage path required")
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve storage path: %w", err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create storage path: %w", err)
	}

	return &FileStore{basePath: abs}, nil
}

// Get retrieves a value. Returns ErrNotFound if the key has no file.
func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(data), nil
}

// Set stores a value, overwriting any existing entry.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.basePath, ".kv-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, err = tmp.WriteString(value)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ListKeys returns every stored key.
func (s *FileStore) ListKeys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != fileExt {
			continue
		}
		key, err := decodeKey(name[:len(name)-len(fileExt)])
		if err != nil {
			// Stray file in the store directory, not ours.
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// DeleteMany removes every key in keys. Missing keys are skipped.
func (s *FileStore) DeleteMany(ctx context.Context, keys []string) error {
	for _, key := range keys {
		if err := s.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// path maps a key to its file. Keys are base64-encoded so separators and
// prefix colons never escape the base directory.
func (s *FileStore) path(key string) string {
	return filepath.Join(s.basePath, encodeKey(key)+fileExt)
}

func encodeKey(key string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(key))
}

func decodeKey(name string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(name)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Verify FileStore implements KeyValueStore
var _ KeyValueStore = (*FileStore)(nil)
