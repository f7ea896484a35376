// Package filesystem stores command history as an append-only
// JSON-lines file inside a directory.
package filesystem

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/questline/parley/storage"
)

const historyFile = "history.jsonl"

type HistoryStore struct {
	path string
}

var _ storage.HistoryRepository = (*HistoryStore)(nil)

// NewHistoryStore creates a store rooted at dir. The directory must
// exist; the history file is created on first append.
func NewHistoryStore(dir string) (*HistoryStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("history directory %q: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("history path %q is not a directory", dir)
	}

	return &HistoryStore{path: filepath.Join(dir, historyFile)}, nil
}

func (h *HistoryStore) Append(rec storage.Record) error {
	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	line, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	line = append(line, '\n')
	if _, err := f.Write(line); err != nil {
		return err
	}

	return nil
}

func (h *HistoryStore) List(limit int) ([]storage.Record, error) {
	return h.read(limit, func(storage.Record) bool { return true })
}

func (h *HistoryStore) FindByAction(action string, limit int) ([]storage.Record, error) {
	return h.read(limit, func(rec storage.Record) bool {
		return rec.Command.Action == action
	})
}

func (h *HistoryStore) read(limit int, keep func(storage.Record) bool) ([]storage.Record, error) {
	f, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// no history yet
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var records []storage.Record

	id := 0
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		id++

		var rec storage.Record
		if err := json.Unmarshal(scan.Bytes(), &rec); err != nil {
			// a torn trailing line is skipped, not fatal
			continue
		}

		rec.Id = id
		if keep(rec) {
			records = append(records, rec)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}

	// newest first
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}
