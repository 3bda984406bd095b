package cachestore

import (
	"path/filepath"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	badgerDirName  = "badger"
	sqliteFileName = "compilation.db"
)

// Factory opens the backing store named by the configuration.
type Factory struct {
	memory *MemoryStore
}

// NewFactory creates a Factory. All memory stores it opens share one instance.
func NewFactory() *Factory {
	return &Factory{memory: NewMemoryStore()}
}

// Known reports whether provider names a supported backing store.
func Known(provider string) bool {
	switch provider {
	case "", domain.CacheProviderNone, domain.CacheProviderFile, domain.CacheProviderBadger,
		domain.CacheProviderSQLite, domain.CacheProviderMemory:
		return true
	default:
		return false
	}
}

// Open returns the store for provider under cacheDir. The none provider returns a nil store.
func (f *Factory) Open(provider, cacheDir string) (ports.CacheStore, error) {
	switch provider {
	case domain.CacheProviderNone, "":
		return nil, nil
	case domain.CacheProviderFile:
		return NewFileStore(cacheDir), nil
	case domain.CacheProviderBadger:
		store, err := OpenBadger(filepath.Join(cacheDir, badgerDirName))
		if err != nil {
			return nil, err
		}
		return store, nil
	case domain.CacheProviderSQLite:
		store, err := OpenSQLite(filepath.Join(cacheDir, sqliteFileName))
		if err != nil {
			return nil, err
		}
		return store, nil
	case domain.CacheProviderMemory:
		return f.memory, nil
	default:
		return nil, zerr.With(domain.ErrUnknownCacheProvider, "provider", provider)
	}
}

// Paths returns the files and directories the persistent providers may create under cacheDir.
func Paths(cacheDir string) []string {
	return []string{
		filepath.Join(cacheDir, domain.CacheBlobKey+fileExtension),
		filepath.Join(cacheDir, badgerDirName),
		filepath.Join(cacheDir, sqliteFileName),
		filepath.Join(cacheDir, sqliteFileName+"-wal"),
		filepath.Join(cacheDir, sqliteFileName+"-shm"),
	}
}
