// Package driver provides the SQLite connection layer for go-sqlrecord.
//
// It opens a database through database/sql using the pure-Go sqlite driver,
// pins the handle to a single logical connection, and applies the pragmas
// the mapping layer relies on (foreign-key enforcement in particular).
// The returned *DB satisfies record.Executor, so it plugs directly into
// record.NewSession.
package driver
