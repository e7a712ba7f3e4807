package record

import (
	"fmt"
	"strings"
	"unicode"
)

// SQLReservedWords is the set of SQLite keywords that cannot be used as table
// or column names without quoting. The generated DDL and DML never quote
// identifiers, so declarations reject these outright.
var SQLReservedWords = map[string]bool{
	"abort": true, "action": true, "add": true, "after": true, "all": true,
	"alter": true, "analyze": true, "and": true, "as": true, "asc": true,
	"attach": true, "autoincrement": true, "before": true, "begin": true,
	"between": true, "by": true, "cascade": true, "case": true, "cast": true,
	"check": true, "collate": true, "column": true, "commit": true,
	"conflict": true, "constraint": true, "create": true, "cross": true,
	"current_date": true, "current_time": true, "current_timestamp": true,
	"database": true, "default": true, "deferrable": true, "deferred": true,
	"delete": true, "desc": true, "detach": true, "distinct": true,
	"drop": true, "each": true, "else": true, "end": true, "escape": true,
	"except": true, "exclusive": true, "exists": true, "explain": true,
	"fail": true, "for": true, "foreign": true, "from": true, "full": true,
	"glob": true, "group": true, "having": true, "if": true, "ignore": true,
	"immediate": true, "in": true, "index": true, "indexed": true,
	"initially": true, "inner": true, "insert": true, "instead": true,
	"intersect": true, "into": true, "is": true, "isnull": true, "join": true,
	"key": true, "left": true, "like": true, "limit": true, "match": true,
	"natural": true, "no": true, "not": true, "notnull": true, "null": true,
	"of": true, "offset": true, "on": true, "or": true, "order": true,
	"outer": true, "plan": true, "pragma": true, "primary": true,
	"query": true, "raise": true, "recursive": true, "references": true,
	"regexp": true, "reindex": true, "release": true, "rename": true,
	"replace": true, "restrict": true, "right": true, "rollback": true,
	"row": true, "savepoint": true, "select": true, "set": true, "table": true,
	"temp": true, "temporary": true, "then": true, "to": true,
	"transaction": true, "trigger": true, "union": true, "unique": true,
	"update": true, "using": true, "vacuum": true, "values": true,
	"view": true, "virtual": true, "when": true, "where": true,
	"with": true, "without": true,
}

// IsReservedWord returns true if the given name is a SQLite reserved keyword.
// The check is case-insensitive.
func IsReservedWord(name string) bool {
	return SQLReservedWords[strings.ToLower(name)]
}

// ValidateIdentifier checks that a name is usable unquoted as a table or
// column name. Valid identifiers start with a letter or underscore and
// continue with letters, digits, or underscores.
func ValidateIdentifier(name, context string) error {
	if name == "" {
		return fmt.Errorf("empty %s name", context)
	}
	for i, r := range name {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return &InvalidIdentifierError{
					Name:    name,
					Context: context,
					Reason:  fmt.Sprintf("must start with a letter or underscore, got %q", r),
				}
			}
		} else {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return &InvalidIdentifierError{
					Name:    name,
					Context: context,
					Reason:  fmt.Sprintf("invalid character %q at position %d", r, i),
				}
			}
		}
	}
	if IsReservedWord(name) {
		return &ReservedWordError{Word: name, Context: context}
	}
	return nil
}

// InvalidIdentifierError is returned when a name contains characters not
// allowed in unquoted SQL identifiers.
type InvalidIdentifierError struct {
	Name    string
	Context string
	Reason  string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid %s name %q: %s", e.Context, e.Name, e.Reason)
}
