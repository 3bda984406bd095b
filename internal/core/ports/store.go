package ports

// CacheStore is the backing persistent store of the compilation cache.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Fetch returns the blob stored under key.
	// Returns nil, false, nil if not found.
	Fetch(key string) ([]byte, bool, error)

	// Save stores the blob under key, replacing any previous value.
	Save(key string, data []byte) error

	// Close releases the store.
	Close() error
}
