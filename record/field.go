// Package record maps declared record types to SQLite tables and rows.
package record

// BaseType is the SQLite storage class of a plain column.
type BaseType int

const (
	// Integer stores signed integers.
	Integer BaseType = iota
	// Real stores floating-point values.
	Real
	// Text stores strings.
	Text
	// Blob stores raw bytes; arbitrary Go values are accepted and
	// msgpack-encoded, see codec.go.
	Blob
)

// String returns the SQL type keyword for the base type.
func (t BaseType) String() string {
	switch t {
	case Integer:
		return "INTEGER"
	case Real:
		return "REAL"
	case Text:
		return "TEXT"
	case Blob:
		return "BLOB"
	}
	return "TEXT"
}

// Field describes one column of a record type. Plain columns carry a base
// type and constraint flags; relation columns reference another record type
// and are always stored as INTEGER. A Field is immutable once its record
// type has been declared.
type Field struct {
	// Name is the column name.
	Name string
	// Type is the SQLite storage class. Relation columns are forced to Integer.
	Type BaseType
	// PrimaryKey marks the column as the primary key.
	PrimaryKey bool
	// Nullable allows NULL values. Columns default to nullable; for relation
	// columns this also selects the on-delete policy (SET NULL vs CASCADE).
	Nullable bool
	// Unique adds a uniqueness constraint.
	Unique bool
	// Target is the referenced record type for relation columns, nil otherwise.
	Target *RecordType
}

// IsRelation reports whether the field is a foreign-key column.
func (f *Field) IsRelation() bool {
	return f.Target != nil
}

// ColOption configures a plain column at declaration time.
type ColOption func(*Field)

// PrimaryKey marks the column as the primary key. Primary keys are implicitly
// not nullable.
func PrimaryKey() ColOption {
	return func(f *Field) {
		f.PrimaryKey = true
		f.Nullable = false
	}
}

// NotNull forbids NULL values in the column.
func NotNull() ColOption {
	return func(f *Field) { f.Nullable = false }
}

// Unique adds a uniqueness constraint to the column.
func Unique() ColOption {
	return func(f *Field) { f.Unique = true }
}

// Col declares a plain column. Columns are nullable unless NotNull or
// PrimaryKey is given.
func Col(name string, typ BaseType, opts ...ColOption) *Field {
	f := &Field{Name: name, Type: typ, Nullable: true}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Ref declares a NOT NULL foreign-key column referencing target. Deleting the
// referenced row cascades.
func Ref(name string, target *RecordType) *Field {
	return &Field{Name: name, Type: Integer, Nullable: false, Target: target}
}

// NullRef declares a nullable foreign-key column referencing target. Deleting
// the referenced row sets the column to NULL.
func NullRef(name string, target *RecordType) *Field {
	return &Field{Name: name, Type: Integer, Nullable: true, Target: target}
}
