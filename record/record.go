package record

import "fmt"

// Record is one row of a record type, held in memory. It tracks which
// attributes were written since it was created, loaded, or last saved; the
// dirty set is what lets Save issue minimal UPDATE statements.
//
// A record is created empty via RecordType.New (new, unsaved) or materialized
// from a storage row by the query builder (loaded, clean). It becomes bound
// once its primary-key attribute holds a value.
type Record struct {
	typ    *RecordType
	values map[string]any
	dirty  map[string]struct{}
}

// Type returns the record's declared type.
func (r *Record) Type() *RecordType {
	return r.typ
}

// Get returns the current in-memory value of an attribute: the written value
// if dirty, else the last-loaded value. Columns materialized from a query row
// are readable even when the projection or a join added names the type does
// not declare. Reading a name that is neither declared nor present fails with
// *UnknownFieldError; a declared attribute that was never set reads as nil.
func (r *Record) Get(name string) (any, error) {
	if v, ok := r.values[name]; ok {
		return v, nil
	}
	if _, declared := r.typ.Field(name); declared {
		return nil, nil
	}
	return nil, &UnknownFieldError{Table: r.typ.table, Field: name}
}

// Set writes an attribute and marks it dirty. The name is checked against the
// declared field set; unknown names fail with *UnknownFieldError. Values for
// Blob columns that are not nil or []byte are msgpack-encoded.
func (r *Record) Set(name string, value any) error {
	f, ok := r.typ.Field(name)
	if !ok {
		return &UnknownFieldError{Table: r.typ.table, Field: name}
	}
	if f.Type == Blob && !f.IsRelation() {
		encoded, err := encodeBlobValue(value)
		if err != nil {
			return fmt.Errorf("set %s.%s: %w", r.typ.table, name, err)
		}
		value = encoded
	}
	r.values[name] = value
	r.dirty[name] = struct{}{}
	return nil
}

// MustSet is a helper that calls Set and panics if an error occurs.
func (r *Record) MustSet(name string, value any) *Record {
	if err := r.Set(name, value); err != nil {
		panic(err)
	}
	return r
}

// IsDirty reports whether the attribute was written since the record was
// created, loaded, or last saved.
func (r *Record) IsDirty(name string) bool {
	_, ok := r.dirty[name]
	return ok
}

// DirtyFields returns the dirty attribute names in declaration order.
func (r *Record) DirtyFields() []string {
	var out []string
	for _, f := range r.typ.fields {
		if _, ok := r.dirty[f.Name]; ok {
			out = append(out, f.Name)
		}
	}
	return out
}

// PrimaryKeyValue returns the primary-key value and whether the record is
// bound (the value is present and non-nil).
func (r *Record) PrimaryKeyValue() (any, bool) {
	v, ok := r.values[r.typ.pk]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// GetInt returns an integer attribute. SQLite reports integers as int64.
func (r *Record) GetInt(name string) (int64, error) {
	v, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case nil:
		return 0, nil
	}
	return 0, fmt.Errorf("%s.%s: expected integer, got %T", r.typ.table, name, v)
}

// GetFloat returns a floating-point attribute, converting stored integers.
func (r *Record) GetFloat(name string) (float64, error) {
	v, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case nil:
		return 0, nil
	}
	return 0, fmt.Errorf("%s.%s: expected real, got %T", r.typ.table, name, v)
}

// GetString returns a text attribute.
func (r *Record) GetString(name string) (string, error) {
	v, err := r.Get(name)
	if err != nil {
		return "", err
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case nil:
		return "", nil
	}
	return "", fmt.Errorf("%s.%s: expected text, got %T", r.typ.table, name, v)
}

func (r *Record) clearDirty() {
	for name := range r.dirty {
		delete(r.dirty, name)
	}
}
