// Package compcache implements the compilation cache: a buffered two-level key space that is
// loaded once from a backing store at the start of a weaving pass and flushed once at its end.
package compcache

import (
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

// UnitOfWork is the in-memory view of the cache: prefix to key to encoded value.
type UnitOfWork map[string]map[string][]byte

// Cache buffers reads and writes for one weaving pass.
// A Cache is not safe for concurrent use.
type Cache struct {
	store         ports.CacheStore
	fingerprinter ports.Fingerprinter
	logger        ports.Logger

	uow    UnitOfWork
	loaded bool
}

// New creates a cache over the given backing store. A nil store keeps everything in memory
// and turns Flush into a no-op.
func New(store ports.CacheStore, fingerprinter ports.Fingerprinter, logger ports.Logger) *Cache {
	return &Cache{
		store:         store,
		fingerprinter: fingerprinter,
		logger:        logger,
		uow:           make(UnitOfWork),
	}
}

// Load reads the persisted blob into the unit of work. Only the first call has an effect.
// A missing or undecodable blob yields an empty unit of work.
func (c *Cache) Load() {
	if c.loaded {
		return
	}
	c.loaded = true

	if c.store == nil {
		return
	}

	blob, ok, err := c.store.Fetch(domain.CacheBlobKey)
	if err != nil {
		c.logger.Warn(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()).Error())
		return
	}
	if !ok {
		return
	}

	uow, err := decodeBlob(blob)
	if err != nil {
		c.logger.Warn(err.Error())
		return
	}
	c.uow = uow
}

// Fetch returns the encoded value stored under prefix and key.
func (c *Cache) Fetch(prefix, key string) ([]byte, bool) {
	entries, ok := c.uow[prefix]
	if !ok {
		return nil, false
	}
	value, ok := entries[key]
	return value, ok
}

// Save stores the encoded value under prefix and key, replacing any previous value.
func (c *Cache) Save(prefix, key string, value []byte) {
	entries, ok := c.uow[prefix]
	if !ok {
		entries = make(map[string][]byte)
		c.uow[prefix] = entries
	}
	entries[key] = value
}

// Flush writes the whole unit of work back to the backing store as a single blob.
// Store failures are logged and otherwise ignored.
func (c *Cache) Flush() {
	if c.store == nil {
		return
	}

	blob, err := encodeBlob(c.uow)
	if err != nil {
		c.logger.Warn(err.Error())
		return
	}

	if err := c.store.Save(domain.CacheBlobKey, blob); err != nil {
		c.logger.Warn(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()).Error())
	}
}

// Use loads the cache, runs fn and flushes on every exit path of fn, panics included.
func (c *Cache) Use(fn func() error) error {
	c.Load()
	defer c.Flush()
	return fn()
}

// Stats returns the number of entries per prefix.
func (c *Cache) Stats() map[string]int {
	stats := make(map[string]int, len(c.uow))
	for prefix, entries := range c.uow {
		stats[prefix] = len(entries)
	}
	return stats
}
