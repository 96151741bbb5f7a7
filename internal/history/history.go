// Package history persists the outcome of registry operations in a local
// SQLite database so past runs can be reviewed.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS run_history (
	id TEXT PRIMARY KEY,
	operation TEXT NOT NULL,
	model TEXT NOT NULL,
	ok INTEGER NOT NULL,
	detail TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_run_history_created_at ON run_history(created_at);
`

// Entry is one recorded operation outcome.
type Entry struct {
	ID        string
	Operation string
	Model     string
	OK        bool
	Detail    string
	CreatedAt time.Time
}

// Store wraps the SQLite-backed run history.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records one entry. A missing ID or timestamp is filled in.
func (s *Store) Append(e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO run_history (id, operation, model, ok, detail, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Operation, e.Model, e.OK, e.Detail, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("appending history entry: %w", err)
	}
	return nil
}

// Record implements the registry.Recorder interface. Recording is
// best-effort; a failing history write never fails the operation itself.
func (s *Store) Record(operation, model string, ok bool, detail string) {
	_ = s.Append(Entry{Operation: operation, Model: model, OK: ok, Detail: detail})
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, operation, model, ok, detail, created_at FROM run_history ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Operation, &e.Model, &e.OK, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
