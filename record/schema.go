// Package record provides DDL compilation for declared record types.
package record

import (
	"fmt"
	"strings"
)

// CompileCreateTable renders the table-creation statement for a record type.
//
// Columns appear in declaration order. Nullability is always emitted
// explicitly (NULL or NOT NULL) so the generated DDL is deterministic.
// Foreign-key clauses derive their on-delete policy from each relation's own
// nullability: nullable relations get ON DELETE SET NULL, required relations
// get ON DELETE CASCADE. The statement uses IF NOT EXISTS, so re-running it
// against an identically shaped table is a no-op.
func CompileCreateTable(t *RecordType) (string, error) {
	if t == nil || t.table == "" {
		return "", &SchemaError{Message: "table name not defined"}
	}
	if len(t.fields) == 0 {
		return "", &SchemaError{Table: t.table, Message: "no columns declared"}
	}

	var clauses []string
	var primaryKeys []string
	var relations []*Field
	var uniques []string

	for _, f := range t.fields {
		null := " NOT NULL"
		if f.Nullable {
			null = " NULL"
		}
		if f.IsRelation() {
			clauses = append(clauses, f.Name+" INTEGER"+null)
			relations = append(relations, f)
			continue
		}
		col := f.Name + " " + f.Type.String() + null
		if f.Unique {
			col += " UNIQUE"
		}
		clauses = append(clauses, col)
		if f.PrimaryKey {
			primaryKeys = append(primaryKeys, f.Name)
		}
		if f.Unique && !f.PrimaryKey {
			uniques = append(uniques, f.Name)
		}
	}

	if len(primaryKeys) > 0 {
		clauses = append(clauses, "PRIMARY KEY ("+strings.Join(primaryKeys, ", ")+")")
	}

	for _, rel := range relations {
		policy := "CASCADE"
		if rel.Nullable {
			policy = "SET NULL"
		}
		clauses = append(clauses, fmt.Sprintf("FOREIGN KEY(%s) REFERENCES %s(%s) ON DELETE %s",
			rel.Name, rel.Target.Table(), rel.Target.PrimaryKey(), policy))
	}

	for _, name := range uniques {
		clauses = append(clauses, "UNIQUE("+name+")")
	}

	return "CREATE TABLE IF NOT EXISTS " + t.table + " (" + strings.Join(clauses, ", ") + ")", nil
}
