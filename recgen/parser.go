package recgen

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// --- Participle grammar structs ---
// These define the schema grammar using struct tags. A schema file is a
// sequence of table blocks, each holding column definitions:
//
//	table departments {
//	  id     integer primary key
//	  name   text not null unique
//	  budget real
//	}

// SchemaFileP is the top-level grammar: zero or more table blocks.
type SchemaFileP struct {
	Tables []*TableDef `parser:"@@*"`
}

// TableDef parses: table name { column* }
type TableDef struct {
	Name    string       `parser:"'table' @Ident '{'"`
	Columns []*ColumnDef `parser:"@@* '}'"`
}

// ColumnDef parses either a plain column (name type annotations) or a
// foreign-key column (name references table [null]). A trailing semicolon is
// permitted but not required.
type ColumnDef struct {
	Name   string   `parser:"@Ident"`
	Ref    *RefDef  `parser:"( @@"`
	Type   string   `parser:"| @('integer'|'real'|'text'|'blob')"`
	Annots []*Annot `parser:"@@* )"`
	Semi   string   `parser:"';'?"`
}

// RefDef parses: references table-name [null]
type RefDef struct {
	Table string `parser:"'references' @Ident"`
	Null  bool   `parser:"@'null'?"`
}

// Annot is one column annotation.
type Annot struct {
	PrimaryKey bool `parser:"  @('primary' 'key')"`
	NotNull    bool `parser:"| @('not' 'null')"`
	Null       bool `parser:"| @'null'"`
	Unique     bool `parser:"| @'unique'"`
}

var schemaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `--[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Keyword", Pattern: `\b(table|references|primary|key|not|null|unique|integer|real|text|blob)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{};]`},
})

// Parse parses a schema definition from a string.
func Parse(input string) (*Schema, error) {
	parser, err := participle.Build[SchemaFileP](
		participle.Lexer(schemaLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("build parser: %w", err)
	}

	ast, err := parser.ParseString("schema", input)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	return convertAST(ast)
}

// ParseFile reads a schema definition from the specified file path and parses it.
func ParseFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return Parse(string(data))
}

func convertAST(ast *SchemaFileP) (*Schema, error) {
	schema := &Schema{}
	for _, t := range ast.Tables {
		spec := TableSpec{Name: t.Name}
		for _, c := range t.Columns {
			col, err := convertColumn(t.Name, c)
			if err != nil {
				return nil, err
			}
			spec.Columns = append(spec.Columns, col)
		}
		schema.Tables = append(schema.Tables, spec)
	}
	return schema, nil
}

func convertColumn(table string, c *ColumnDef) (ColumnSpec, error) {
	col := ColumnSpec{Name: c.Name}
	if c.Ref != nil {
		col.References = c.Ref.Table
		col.RefNullable = c.Ref.Null
		return col, nil
	}
	col.Type = c.Type
	var sawNull bool
	for _, a := range c.Annots {
		switch {
		case a.PrimaryKey:
			col.PrimaryKey = true
		case a.NotNull:
			col.NotNull = true
		case a.Null:
			sawNull = true
		case a.Unique:
			col.Unique = true
		}
	}
	if sawNull && col.NotNull {
		return col, fmt.Errorf("table %s: column %s marked both null and not null", table, c.Name)
	}
	if col.PrimaryKey {
		col.NotNull = true
	}
	return col, nil
}
