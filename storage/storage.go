package storage

import (
	"time"

	"github.com/questline/parley/intent"
)

// Record is one parsed command kept in history.
type Record struct {
	Id        int            `json:"id"`
	Text      string         `json:"text"`
	Command   intent.Command `json:"command"`
	CreatedAt time.Time      `json:"created_at"`
}

// HistoryReader defines read operations for command history storage
type HistoryReader interface {
	// List returns the most recent records, newest first, at most
	// limit of them (limit <= 0 returns all).
	List(limit int) ([]Record, error)

	// FindByAction returns the records whose primary action equals
	// action, newest first.
	FindByAction(action string, limit int) ([]Record, error)
}

// HistoryWriter defines write operations for command history storage
type HistoryWriter interface {
	// Append persists a parsed command to history
	Append(rec Record) error
}

// HistoryRepository combines read and write operations
type HistoryRepository interface {
	HistoryReader
	HistoryWriter
}
