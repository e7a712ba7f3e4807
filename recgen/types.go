package recgen

import (
	"fmt"

	"github.com/CaliLuke/go-sqlrecord/record"
)

// Types resolves a parsed schema into live record type declarations, in
// declaration order. A foreign-key column must reference a table declared
// earlier in the same schema, mirroring the runtime API where Ref needs an
// already-declared *RecordType.
func Types(schema *Schema) ([]*record.RecordType, error) {
	built := make(map[string]*record.RecordType, len(schema.Tables))
	var out []*record.RecordType

	for _, t := range schema.Tables {
		fields := make([]*record.Field, 0, len(t.Columns))
		for _, c := range t.Columns {
			f, err := buildField(t.Name, c, built)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
		rt, err := record.NewType(t.Name, fields...)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		built[t.Name] = rt
		out = append(out, rt)
	}
	return out, nil
}

func buildField(table string, c ColumnSpec, built map[string]*record.RecordType) (*record.Field, error) {
	if c.References != "" {
		target, ok := built[c.References]
		if !ok {
			return nil, fmt.Errorf("table %s: column %s references undeclared table %s",
				table, c.Name, c.References)
		}
		if c.RefNullable {
			return record.NullRef(c.Name, target), nil
		}
		return record.Ref(c.Name, target), nil
	}

	typ, err := baseType(c.Type)
	if err != nil {
		return nil, fmt.Errorf("table %s: column %s: %w", table, c.Name, err)
	}
	var opts []record.ColOption
	if c.PrimaryKey {
		opts = append(opts, record.PrimaryKey())
	}
	if c.NotNull && !c.PrimaryKey {
		opts = append(opts, record.NotNull())
	}
	if c.Unique {
		opts = append(opts, record.Unique())
	}
	return record.Col(c.Name, typ, opts...), nil
}

func baseType(keyword string) (record.BaseType, error) {
	switch keyword {
	case "integer":
		return record.Integer, nil
	case "real":
		return record.Real, nil
	case "text":
		return record.Text, nil
	case "blob":
		return record.Blob, nil
	}
	return 0, fmt.Errorf("unknown base type %q", keyword)
}
