// Package gosqlrecord provides a lightweight record mapper for SQLite.
//
// Declare your tables as record types (typed fields, primary keys,
// uniqueness, foreign-key references) and get table creation, dirty-tracked
// inserts and updates, a chainable parameterized query builder, relation
// lookups, and code generation, without giving up raw SQL fragments for
// filtering, joins, and ordering.
//
// The module is organized into three packages:
//
//   - [github.com/CaliLuke/go-sqlrecord/record]: ORM core with record types, CRUD, queries, and relations
//   - [github.com/CaliLuke/go-sqlrecord/recgen]: code generator from the schema DSL to record type declarations
//   - [github.com/CaliLuke/go-sqlrecord/driver]: SQLite connection layer over database/sql
//
// The record and recgen packages compile and test without a database file;
// the driver package embeds a pure-Go SQLite engine, so no CGo is required
// anywhere.
package gosqlrecord
