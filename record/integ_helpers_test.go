package record_test

import (
	"context"
	"testing"

	"github.com/CaliLuke/go-sqlrecord/driver"
	"github.com/CaliLuke/go-sqlrecord/record"
)

// ---------------------------------------------------------------------------
// Shared fixtures: a two-table personnel model used across the integration
// tests. Employees reference departments through a mandatory foreign key.
// ---------------------------------------------------------------------------

type personnelModel struct {
	Departments *record.RecordType
	Employees   *record.RecordType
}

func declarePersonnel(t *testing.T) personnelModel {
	t.Helper()
	record.ClearRegistry()

	departments := record.MustNewType("departments",
		record.Col("id", record.Integer, record.PrimaryKey()),
		record.Col("name", record.Text, record.NotNull(), record.Unique()),
		record.Col("budget", record.Real),
	)
	employees := record.MustNewType("employees",
		record.Col("id", record.Integer, record.PrimaryKey()),
		record.Col("name", record.Text, record.NotNull()),
		record.Col("salary", record.Real),
		record.Col("notes", record.Blob),
		record.Ref("department_id", departments),
	)
	return personnelModel{Departments: departments, Employees: employees}
}

// setupSession opens a fresh in-memory database, creates the given tables,
// and returns a session over it. The database handle closes with the test.
func setupSession(t *testing.T, types ...*record.RecordType) *record.Session {
	t.Helper()

	db, err := driver.Open(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	sess := record.NewSession(db)
	ctx := context.Background()
	for _, typ := range types {
		if err := sess.CreateTable(ctx, typ); err != nil {
			t.Fatalf("creating table %s: %v", typ.Table(), err)
		}
	}
	return sess
}

// seedDepartment inserts one department row and returns its bound record.
func seedDepartment(t *testing.T, ctx context.Context, mgr *record.Manager, name string, budget float64) *record.Record {
	t.Helper()
	d := mgr.New()
	d.MustSet("name", name)
	d.MustSet("budget", budget)
	if err := mgr.Save(ctx, d); err != nil {
		t.Fatalf("seeding department %s: %v", name, err)
	}
	return d
}

// seedEmployee inserts one employee row belonging to the given department.
func seedEmployee(t *testing.T, ctx context.Context, mgr *record.Manager, name string, salary float64, deptID any) *record.Record {
	t.Helper()
	e := mgr.New()
	e.MustSet("name", name)
	e.MustSet("salary", salary)
	e.MustSet("department_id", deptID)
	if err := mgr.Save(ctx, e); err != nil {
		t.Fatalf("seeding employee %s: %v", name, err)
	}
	return e
}
