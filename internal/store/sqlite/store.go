// Package sqlite stores todo tasks in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// schema is the SQL schema for a new task database.
const schema = `
CREATE TABLE IF NOT EXISTS tasks (
    id          TEXT PRIMARY KEY,
    user_id     TEXT NOT NULL,
    title       TEXT NOT NULL CHECK (length(trim(title)) > 0),
    is_finished INTEGER NOT NULL DEFAULT 0 CHECK (is_finished IN (0, 1))
);

-- Index for listing a user's tasks
CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks(user_id);
`

// Store owns the database handle and the repositories built on it.
type Store struct {
	db     *sql.DB
	closed bool
	tasks  *TaskRepository
}

// Open opens (creating if needed) the database at dsn and applies the schema.
// The dsn can be a file path or MemoryDSN.
func Open(dsn string) (*Store, error) {
	connStr := dsn
	if !strings.Contains(dsn, "?") {
		connStr += "?"
	} else {
		connStr += "&"
	}
	connStr += "_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on&_synchronous=NORMAL"

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: gets its own empty database.
	if strings.HasPrefix(dsn, MemoryDSN) {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, tasks: NewTaskRepository(db)}, nil
}

// Tasks returns the task repository.
func (s *Store) Tasks() *TaskRepository {
	return s.tasks
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithTx executes fn with a repository bound to a transaction. The
// transaction is rolled back when fn returns an error.
func (s *Store) WithTx(ctx context.Context, fn func(*TaskRepository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&TaskRepository{q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
