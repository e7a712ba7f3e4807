package driver

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

// DB is an explicitly owned handle to one SQLite database. The caller opens
// it, passes it to a record.Session, and closes it when done; nothing else
// manages its lifecycle.
type DB struct {
	sqldb *sql.DB
	path  string
}

// Open opens (creating if necessary) the SQLite database at path and applies
// the configured pragmas. Use ":memory:" for a transient in-memory database.
// The handle is pinned to a single connection, so the in-memory database and
// every temporary state survive across calls.
func Open(path string, opts ...Option) (*DB, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	sqldb.SetMaxOpenConns(1)

	for _, pragma := range cfg.pragmas() {
		if _, err := sqldb.Exec(pragma); err != nil {
			_ = sqldb.Close()
			return nil, fmt.Errorf("open %s: %s: %w", path, pragma, err)
		}
	}
	if err := sqldb.Ping(); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &DB{sqldb: sqldb, path: path}, nil
}

// ExecContext executes a mutating statement with positional parameters.
func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.sqldb.ExecContext(ctx, query, args...)
}

// QueryContext executes a SELECT with positional parameters.
func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.sqldb.QueryContext(ctx, query, args...)
}

// SQL returns the underlying database/sql handle.
func (d *DB) SQL() *sql.DB {
	return d.sqldb
}

// Path returns the database path the handle was opened with.
func (d *DB) Path() string {
	return d.path
}

// Close releases the database handle.
func (d *DB) Close() error {
	return d.sqldb.Close()
}
