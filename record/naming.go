// Package record provides naming-convention helpers for relation resolution.
package record

import "github.com/go-openapi/inflect"

// ForeignKeyName returns the conventional foreign-key column name for a
// table: its singular form suffixed with "_id", e.g. departments →
// department_id.
func ForeignKeyName(table string) string {
	return inflect.Singularize(table) + "_id"
}
