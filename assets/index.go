package assets

import (
	"sync"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// index is optional sqlite bookkeeping beside the file cache: when an entry
// was created and how often it was hit, enough for an external prune job.
// The file cache stays authoritative, every index failure is non-fatal.
type index struct {
	mu   sync.Mutex
	conn *sqlite.Conn
}

const indexSchema = `
CREATE TABLE IF NOT EXISTS entries (
	key     TEXT PRIMARY KEY,
	query   TEXT NOT NULL,
	created INTEGER NOT NULL,
	hits    INTEGER NOT NULL DEFAULT 0
);`

func openIndex(path string) (*index, error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite|sqlite.OpenCreate)
	if err != nil {
		return nil, err
	}
	if err := sqlitex.ExecuteTransient(conn, indexSchema, nil); err != nil {
		conn.Close()
		return nil, err
	}
	return &index{conn: conn}, nil
}

func (i *index) close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.conn.Close()
}

func (i *index) record(key, query string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return sqlitex.Execute(i.conn,
		`INSERT INTO entries (key, query, created, hits) VALUES (?, ?, ?, 0)
		 ON CONFLICT(key) DO NOTHING;`,
		&sqlitex.ExecOptions{Args: []any{key, query, time.Now().Unix()}})
}

func (i *index) touch(key string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return sqlitex.Execute(i.conn,
		`UPDATE entries SET hits = hits + 1 WHERE key = ?;`,
		&sqlitex.ExecOptions{Args: []any{key}})
}
