// Package recgen provides tools for parsing schema definitions and generating
// record type declarations from them.
package recgen

// Schema holds all table definitions extracted from a schema file.
type Schema struct {
	// Tables is a list of all table definitions in declaration order.
	Tables []TableSpec
}

// TableSpec describes one table definition.
type TableSpec struct {
	// Name is the table name.
	Name string
	// Columns is a list of column definitions in declaration order.
	Columns []ColumnSpec
}

// ColumnSpec describes a single column within a table definition.
type ColumnSpec struct {
	// Name is the column name.
	Name string
	// Type is the base type keyword (integer, real, text, blob); empty for
	// foreign-key columns.
	Type string
	// PrimaryKey indicates the column is marked primary key.
	PrimaryKey bool
	// NotNull indicates the column forbids NULL values.
	NotNull bool
	// Unique indicates the column carries a uniqueness constraint.
	Unique bool
	// References is the referenced table name for foreign-key columns.
	References string
	// RefNullable indicates a nullable foreign key (ON DELETE SET NULL).
	RefNullable bool
}

// Table retrieves a table spec by name.
func (s *Schema) Table(name string) (TableSpec, bool) {
	for _, t := range s.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return TableSpec{}, false
}
