package cachestore

import (
	"time"

	"github.com/viccon/sturdyc"
)

const (
	memoryCapacity     = 64
	memoryShards       = 1
	memoryTTL          = 24 * time.Hour
	memoryEvictionPerc = 10
)

// MemoryStore keeps blobs in process memory. It outlives a single pass, so serial rebuilds
// in one process share it.
type MemoryStore struct {
	client *sturdyc.Client[[]byte]
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		client: sturdyc.New[[]byte](memoryCapacity, memoryShards, memoryTTL, memoryEvictionPerc),
	}
}

// Fetch reads the blob stored under key.
func (s *MemoryStore) Fetch(key string) ([]byte, bool, error) {
	data, ok := s.client.Get(key)
	return data, ok, nil
}

// Save stores the blob under key.
func (s *MemoryStore) Save(key string, data []byte) error {
	s.client.Set(key, data)
	return nil
}

// Close keeps the contents so the next pass can reuse them.
func (s *MemoryStore) Close() error {
	return nil
}
