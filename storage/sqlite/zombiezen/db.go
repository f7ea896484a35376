package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool opens the history database at dbPath, creating the file on
// first use. Pool size follows the host CPU count; the sqlitex
// defaults already enable WAL mode and URI filenames.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool(fmt.Sprintf("file:%s", dbPath), sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("open history database %s: %w", dbPath, err)
	}

	return pool, nil
}
