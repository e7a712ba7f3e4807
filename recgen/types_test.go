package recgen

import (
	"strings"
	"testing"

	"github.com/CaliLuke/go-sqlrecord/record"
)

func TestTypes_BuildsDeclarationOrder(t *testing.T) {
	record.ClearRegistry()
	schema, err := Parse(testSchema)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	types, err := Types(schema)
	if err != nil {
		t.Fatalf("Types failed: %v", err)
	}
	if len(types) != 2 {
		t.Fatalf("expected 2 types, got %d", len(types))
	}
	if types[0].Table() != "departments" || types[1].Table() != "employees" {
		t.Errorf("order: got %s, %s", types[0].Table(), types[1].Table())
	}

	fk, ok := types[1].Field("department_id")
	if !ok {
		t.Fatal("department_id missing")
	}
	if !fk.IsRelation() || fk.Target != types[0] {
		t.Errorf("fk should target the departments type, got %+v", fk)
	}
	if fk.Nullable {
		t.Error("mandatory reference should not be nullable")
	}

	optional, _ := types[1].Field("mentor_id")
	if !optional.Nullable {
		t.Error("references ... null should produce a nullable column")
	}
}

func TestTypes_RegistersWithRuntime(t *testing.T) {
	record.ClearRegistry()
	schema, err := Parse(testSchema)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := Types(schema); err != nil {
		t.Fatalf("Types failed: %v", err)
	}

	if _, ok := record.Lookup("employees"); !ok {
		t.Error("employees should be registered after Types")
	}
}

func TestTypes_UndeclaredReference(t *testing.T) {
	record.ClearRegistry()
	schema, err := Parse(`table employees { id integer primary key; department_id references departments }`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	_, err = Types(schema)
	if err == nil {
		t.Fatal("expected error for forward reference")
	}
	if !strings.Contains(err.Error(), "undeclared table") {
		t.Errorf("got %v", err)
	}
}

func TestTypes_InvalidIdentifierPropagates(t *testing.T) {
	record.ClearRegistry()
	// "order" parses as an identifier but is a reserved SQL word, so the
	// runtime declaration must reject it.
	schema, err := Parse(`table t { id integer primary key; order integer }`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := Types(schema); err == nil {
		t.Fatal("reserved column name should fail")
	}
}
