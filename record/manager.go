// Package record provides high-level persistence operations for record types.
package record

import (
	"context"
	"fmt"
	"strings"
)

// Manager binds a record type to a session and provides persistence
// operations (save, delete, lookup) plus the query entry point. The session
// is supplied explicitly at construction; the manager never opens or closes
// connections itself.
type Manager struct {
	sess *Session
	typ  *RecordType
}

// NewManager creates a manager for one record type over an explicit session.
func NewManager(sess *Session, t *RecordType) *Manager {
	return &Manager{sess: sess, typ: t}
}

// Type returns the managed record type.
func (m *Manager) Type() *RecordType {
	return m.typ
}

// New creates an empty, unsaved record of the managed type.
func (m *Manager) New() *Record {
	return m.typ.New()
}

// Save persists a record. A bound record (primary key set) gets an UPDATE of
// only its dirty columns; with nothing dirty the round trip is skipped. An
// unbound record gets an INSERT of its populated attributes, after which the
// storage-assigned primary key is read back into the record. On success the
// dirty set is cleared. Engine constraint violations surface as
// *ConstraintError.
func (m *Manager) Save(ctx context.Context, r *Record) error {
	if err := m.check(r, "save"); err != nil {
		return err
	}

	pk := m.typ.PrimaryKey()
	if pkVal, bound := r.PrimaryKeyValue(); bound {
		cols := r.DirtyFields()
		if len(cols) == 0 {
			return nil
		}
		sets := make([]string, len(cols))
		args := make([]any, 0, len(cols)+1)
		for i, col := range cols {
			sets[i] = col + " = ?"
			args = append(args, r.values[col])
		}
		args = append(args, pkVal)

		stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", m.typ.table, strings.Join(sets, ", "), pk)
		if _, err := m.sess.exec(ctx, m.typ.table, stmt, args); err != nil {
			return wrapPersist(err, "save", m.typ.table)
		}
		r.clearDirty()
		return nil
	}

	var cols []string
	var args []any
	for _, f := range m.typ.fields {
		if v, ok := r.values[f.Name]; ok {
			cols = append(cols, f.Name)
			args = append(args, v)
		}
	}

	var stmt string
	if len(cols) == 0 {
		stmt = fmt.Sprintf("INSERT INTO %s DEFAULT VALUES", m.typ.table)
	} else {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
		stmt = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			m.typ.table, strings.Join(cols, ", "), placeholders)
	}

	res, err := m.sess.exec(ctx, m.typ.table, stmt, args)
	if err != nil {
		return wrapPersist(err, "save", m.typ.table)
	}
	if id, err := res.LastInsertId(); err == nil {
		// Direct write: the read-back key must not re-enter the dirty set.
		r.values[pk] = id
	}
	r.clearDirty()
	return nil
}

// Delete removes a record's row. It fails with *PersistenceError if the
// primary key is unset. There are no soft-delete semantics.
func (m *Manager) Delete(ctx context.Context, r *Record) error {
	if err := m.check(r, "delete"); err != nil {
		return err
	}
	pkVal, bound := r.PrimaryKeyValue()
	if !bound {
		return &PersistenceError{Table: m.typ.table, Operation: "delete", Message: "primary key not set"}
	}

	stmt := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", m.typ.table, m.typ.PrimaryKey())
	if _, err := m.sess.exec(ctx, m.typ.table, stmt, []any{pkVal}); err != nil {
		return wrapPersist(err, "delete", m.typ.table)
	}
	return nil
}

// Find looks up a single record by primary-key value, or nil if none matches.
func (m *Manager) Find(ctx context.Context, pkVal any) (*Record, error) {
	return m.Query().Where(m.typ.PrimaryKey()+" = ?", pkVal).First(ctx)
}

// Query returns a new chainable query builder for the managed type.
func (m *Manager) Query() *Query {
	return newQuery(m.sess, m.typ)
}

func (m *Manager) check(r *Record, op string) error {
	if m.typ == nil || m.typ.table == "" {
		return &PersistenceError{Operation: op, Message: "table name not defined"}
	}
	if r == nil {
		return &PersistenceError{Table: m.typ.table, Operation: op, Message: "record must not be nil"}
	}
	if r.typ != m.typ {
		return &PersistenceError{Table: m.typ.table, Operation: op,
			Message: "record belongs to table " + r.typ.table}
	}
	return nil
}

// wrapPersist keeps constraint violations intact and adds operation context
// to every other engine error.
func wrapPersist(err error, op, table string) error {
	if _, ok := err.(*ConstraintError); ok {
		return err
	}
	return fmt.Errorf("%s %s: %w", op, table, err)
}
