// Package cachestore implements the backing stores of the compilation cache.
package cachestore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
)

const fileExtension = ".cache"

// FileStore keeps one file per key in a directory.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

// NewFileStore creates a store rooted at dir. The directory is created on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: filepath.Clean(dir)}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+fileExtension)
}

// Fetch reads the blob stored under key.
func (s *FileStore) Fetch(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	//nolint:gosec // Path is cleaned and built from a fixed key
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, "failed to read cache file"), "path", s.path(key))
	}
	return data, true, nil
}

// Save writes the blob under key.
func (s *FileStore) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}

	//nolint:gosec // Path is cleaned and built from a fixed key
	if err := os.WriteFile(s.path(key), data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cache file"), "path", s.path(key))
	}
	return nil
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}
