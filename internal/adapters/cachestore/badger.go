package cachestore

import (
	"errors"
	"os"

	"github.com/dgraph-io/badger/v4"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
)

// BadgerStore keeps blobs in a BadgerDB key-value database.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens or creates a database in dir. An empty dir opens an in-memory database.
func OpenBadger(dir string) (*BadgerStore, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return nil, zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
		}
		opts = badger.DefaultOptions(dir)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheOpenFailed.Error()), "path", dir)
	}
	return &BadgerStore{db: db}, nil
}

// Fetch reads the blob stored under key.
func (s *BadgerStore) Fetch(key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}
	return data, true, nil
}

// Save writes the blob under key.
func (s *BadgerStore) Save(key string, data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
