// Package record resolves record relations by foreign-key convention.
package record

import "context"

// BelongsTo looks up the single target row whose primary key equals this
// record's foreign-key value. The foreign-key column name defaults to the
// target table's singular form plus "_id"; pass fk to override. It returns
// nil when the foreign-key attribute is absent, NULL, or matches no row.
// Both lookups execute eagerly; there are no lazy proxies.
func (m *Manager) BelongsTo(ctx context.Context, r *Record, target *RecordType, fk ...string) (*Record, error) {
	if err := m.check(r, "belongs-to"); err != nil {
		return nil, err
	}
	name := ForeignKeyName(target.Table())
	if len(fk) > 0 && fk[0] != "" {
		name = fk[0]
	}
	v, ok := r.values[name]
	if !ok || v == nil {
		return nil, nil
	}
	return newQuery(m.sess, target).Where(target.PrimaryKey()+" = ?", v).First(ctx)
}

// HasMany returns every target row whose foreign-key column equals this
// record's primary-key value, in storage-defined order; the result is empty
// when none match. The foreign-key column name defaults to this table's
// singular form plus "_id"; pass fk to override. It fails with
// *PersistenceError when the record is unbound.
func (m *Manager) HasMany(ctx context.Context, r *Record, target *RecordType, fk ...string) ([]*Record, error) {
	if err := m.check(r, "has-many"); err != nil {
		return nil, err
	}
	name := ForeignKeyName(m.typ.Table())
	if len(fk) > 0 && fk[0] != "" {
		name = fk[0]
	}
	pkVal, bound := r.PrimaryKeyValue()
	if !bound {
		return nil, &PersistenceError{Table: m.typ.table, Operation: "has-many", Message: "primary key not set"}
	}
	return newQuery(m.sess, target).Where(name+" = ?", pkVal).All(ctx)
}
