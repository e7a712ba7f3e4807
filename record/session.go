// Package record provides the session boundary between record types and the
// storage engine.
package record

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Executor is the blocking call interface the mapping layer requires from the
// storage engine. *sql.DB, *sql.Tx, *sql.Conn, and *driver.DB all satisfy it.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Session is an explicitly owned handle to one storage engine connection.
// It is passed into managers and query builders at construction time; its
// lifecycle (open/close) belongs to the caller. Every mutating statement
// commits immediately as its own implicit transaction.
type Session struct {
	conn Executor
}

// NewSession creates a session over a caller-provided executor.
func NewSession(conn Executor) *Session {
	return &Session{conn: conn}
}

// Conn returns the underlying executor.
func (s *Session) Conn() Executor {
	return s.conn
}

// CreateTable compiles and executes the table-creation statement for a record
// type. Running it against an existing table of identical shape is a no-op;
// a materially different existing table surfaces the engine's own error.
func (s *Session) CreateTable(ctx context.Context, t *RecordType) error {
	ddl, err := CompileCreateTable(t)
	if err != nil {
		return err
	}
	if _, err := s.exec(ctx, t.table, ddl, nil); err != nil {
		return fmt.Errorf("create table %s: %w", t.table, err)
	}
	return nil
}

// exec runs a mutating statement, classifying engine constraint violations.
func (s *Session) exec(ctx context.Context, table, query string, args []any) (sql.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, &ConstraintError{Table: table, Cause: err}
		}
		return nil, err
	}
	return res, nil
}

// query runs a SELECT, wrapping engine rejections as *QueryError.
func (s *Session) query(ctx context.Context, table, query string, args []any) (*sql.Rows, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &QueryError{Table: table, Cause: err}
	}
	return rows, nil
}

// sqliteConstraintCode is the SQLITE_CONSTRAINT primary result code.
const sqliteConstraintCode = 19

// isConstraintViolation reports whether an engine error is a unique,
// foreign-key, or not-null constraint failure. The sqlite driver's error type
// exposes its result code via a Code method; the message check covers
// executors that wrap the driver error beyond unwrapping.
func isConstraintViolation(err error) bool {
	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		return coded.Code()&0xff == sqliteConstraintCode
	}
	return strings.Contains(strings.ToLower(err.Error()), "constraint")
}
