package zombiezen

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/questline/parley/intent"
	"github.com/questline/parley/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type HistoryStore struct {
	pool *sqlitex.Pool
}

var _ storage.HistoryRepository = (*HistoryStore)(nil)

func NewHistoryStore(pool *sqlitex.Pool) *HistoryStore {
	return &HistoryStore{pool: pool}
}

func (h *HistoryStore) Append(rec storage.Record) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	data, err := json.Marshal(rec.Command)
	if err != nil {
		return err
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return sqlitex.Execute(conn,
		"INSERT INTO commands (text, action, target, modifier, subject, data, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		&sqlitex.ExecOptions{
			Args: []interface{}{
				rec.Text,
				rec.Command.Action,
				rec.Command.Target,
				rec.Command.Modifier,
				rec.Command.Subject,
				string(data),
				createdAt.Format(time.RFC3339),
			},
		})
}

func (h *HistoryStore) List(limit int) ([]storage.Record, error) {
	return h.query("", limit)
}

func (h *HistoryStore) FindByAction(action string, limit int) ([]storage.Record, error) {
	return h.query(action, limit)
}

func (h *HistoryStore) query(action string, limit int) ([]storage.Record, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var queryBuilder strings.Builder
	var args []interface{}

	queryBuilder.WriteString("SELECT id, text, data, created_at FROM commands")
	if action != "" {
		queryBuilder.WriteString(" WHERE action = ?")
		args = append(args, action)
	}
	queryBuilder.WriteString(" ORDER BY id DESC")
	if limit > 0 {
		queryBuilder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}

	var records []storage.Record
	err = sqlitex.Execute(conn, queryBuilder.String(), &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rec := storage.Record{
				Id:   stmt.ColumnInt(0),
				Text: stmt.ColumnText(1),
			}

			var cmd intent.Command
			if err := json.Unmarshal([]byte(stmt.ColumnText(2)), &cmd); err != nil {
				return err
			}
			rec.Command = cmd

			if ts, err := time.Parse(time.RFC3339, stmt.ColumnText(3)); err == nil {
				rec.CreatedAt = ts
			}

			records = append(records, rec)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
