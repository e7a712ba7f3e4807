// Package record defines various error types for record mapping and persistence.
package record

import "fmt"

// SchemaError is returned when a record type declaration cannot be compiled
// into DDL: a missing table name, zero declared columns, or an ambiguous
// primary key.
type SchemaError struct {
	Table   string
	Message string
}

// Error returns the error message for SchemaError.
func (e *SchemaError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("schema: %s", e.Message)
	}
	return fmt.Sprintf("schema %s: %s", e.Table, e.Message)
}

// UnknownFieldError is returned when a record attribute is read or written
// under a name the record type does not declare.
type UnknownFieldError struct {
	Table string
	Field string
}

// Error returns the error message for UnknownFieldError.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s has no field %q", e.Table, e.Field)
}

// PersistenceError is returned when a save or delete is attempted without the
// state it requires: an unbound table or an unset primary key.
type PersistenceError struct {
	Table     string
	Operation string
	Message   string
}

// Error returns the error message for PersistenceError.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Operation, e.Table, e.Message)
}

// ConstraintError wraps a storage engine error caused by a unique,
// foreign-key, or not-null constraint violation.
type ConstraintError struct {
	Table string
	Cause error
}

// Error returns the error message for ConstraintError.
func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint on %s: %v", e.Table, e.Cause)
}

// Unwrap returns the underlying engine error.
func (e *ConstraintError) Unwrap() error {
	return e.Cause
}

// QueryError wraps a storage engine error raised while executing a rendered
// query, typically malformed predicate or join text.
type QueryError struct {
	Table string
	Cause error
}

// Error returns the error message for QueryError.
func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Table, e.Cause)
}

// Unwrap returns the underlying engine error.
func (e *QueryError) Unwrap() error {
	return e.Cause
}

// ReservedWordError is returned when a SQLite reserved keyword is used as a
// table or column name.
type ReservedWordError struct {
	Word    string
	Context string // "table" or "column"
}

// Error returns the error message for ReservedWordError.
func (e *ReservedWordError) Error() string {
	return fmt.Sprintf("record: %q is a SQL reserved keyword and cannot be used as a %s name",
		e.Word, e.Context)
}
