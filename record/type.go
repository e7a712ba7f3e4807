package record

// DefaultPrimaryKey is the conventional primary-key column name used when a
// record type declares no field with the primary-key flag.
const DefaultPrimaryKey = "id"

// RecordType is a declared schema: a table name plus an ordered collection of
// field descriptors. Declaration order is preserved because it determines
// column order in generated DDL and DML. A RecordType is immutable after
// declaration.
type RecordType struct {
	table  string
	fields []*Field
	byName map[string]*Field
	pk     string
}

// NewType declares and registers a record type. It fails with *SchemaError if
// the table name is missing, no columns are declared, an attribute name
// repeats, or more than one field is marked primary key; table and column
// names must be valid unquoted SQL identifiers.
func NewType(table string, fields ...*Field) (*RecordType, error) {
	if table == "" {
		return nil, &SchemaError{Message: "table name not defined"}
	}
	if err := ValidateIdentifier(table, "table"); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, &SchemaError{Table: table, Message: "no columns declared"}
	}

	t := &RecordType{
		table:  table,
		fields: fields,
		byName: make(map[string]*Field, len(fields)),
	}
	for _, f := range fields {
		if err := ValidateIdentifier(f.Name, "column"); err != nil {
			return nil, err
		}
		if _, dup := t.byName[f.Name]; dup {
			return nil, &SchemaError{Table: table, Message: "duplicate column " + f.Name}
		}
		t.byName[f.Name] = f
		if f.PrimaryKey {
			if t.pk != "" {
				return nil, &SchemaError{Table: table, Message: "ambiguous primary key: " + t.pk + " and " + f.Name}
			}
			t.pk = f.Name
		}
	}
	if t.pk == "" {
		t.pk = DefaultPrimaryKey
	}

	if err := register(t); err != nil {
		return nil, err
	}
	return t, nil
}

// MustNewType is a helper that calls NewType and panics if an error occurs.
// It is intended for use during application initialization.
func MustNewType(table string, fields ...*Field) *RecordType {
	t, err := NewType(table, fields...)
	if err != nil {
		panic(err)
	}
	return t
}

// Table returns the table name.
func (t *RecordType) Table() string {
	return t.table
}

// Fields returns the declared fields in declaration order. The returned slice
// must not be modified.
func (t *RecordType) Fields() []*Field {
	return t.fields
}

// Field retrieves a field descriptor by column name.
func (t *RecordType) Field(name string) (*Field, bool) {
	f, ok := t.byName[name]
	return f, ok
}

// PrimaryKey returns the primary-key column name: the field marked
// PrimaryKey, or "id" by convention if none is.
func (t *RecordType) PrimaryKey() string {
	return t.pk
}

// New creates an empty, unsaved record of this type.
func (t *RecordType) New() *Record {
	return &Record{
		typ:    t,
		values: make(map[string]any),
		dirty:  make(map[string]struct{}),
	}
}
