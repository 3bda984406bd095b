package cachestore

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS compilation_cache (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// SQLiteStore keeps blobs in a single SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database file at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheOpenFailed.Error()), "path", path)
	}

	for _, stmt := range []string{"PRAGMA busy_timeout=5000", sqliteSchema} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheOpenFailed.Error()), "path", path)
		}
	}

	return &SQLiteStore{db: db}, nil
}

// Fetch reads the blob stored under key.
func (s *SQLiteStore) Fetch(key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT value FROM compilation_cache WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}
	return data, true, nil
}

// Save writes the blob under key.
func (s *SQLiteStore) Save(key string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO compilation_cache (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, data,
	)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
