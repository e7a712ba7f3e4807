// Package record materializes storage rows back into record instances.
package record

import (
	"database/sql"
	"fmt"
)

// fromRow constructs a bound, clean record from one scanned row. The row's
// own column list is authoritative: projected and joined columns are kept
// even when the record type does not declare them.
func fromRow(t *RecordType, columns []string, values []any) *Record {
	r := t.New()
	for i, col := range columns {
		r.values[col] = values[i]
	}
	return r
}

// scanRows materializes every row into a record of type t, preserving the
// storage engine's row order. It consumes and closes rows.
func scanRows(t *RecordType, rows *sql.Rows) ([]*Record, error) {
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", t.table, err)
	}

	var out []*Record
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.table, err)
		}
		out = append(out, fromRow(t, columns, values))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", t.table, err)
	}
	return out, nil
}
