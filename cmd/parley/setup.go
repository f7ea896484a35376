package main

import (
	"os"

	"github.com/questline/parley/storage"
	"github.com/questline/parley/storage/filesystem"
	"github.com/questline/parley/storage/sqlite/zombiezen"
)

// NewHistoryRepository selects the history backend by path: an
// existing directory means JSON-lines files, anything else a SQLite
// database (created on first use). The returned func closes the
// backend.
func NewHistoryRepository(path string) (storage.HistoryRepository, func() error, error) {
	noop := func() error { return nil }

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		store, err := filesystem.NewHistoryStore(path)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, noop, err
	}

	if err := zombiezen.CreateSchemas(pool, "history.sql"); err != nil {
		pool.Close()
		return nil, noop, err
	}

	return zombiezen.NewHistoryStore(pool), pool.Close, nil
}
