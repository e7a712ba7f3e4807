package record_test

import (
	"context"
	"errors"
	"testing"

	"github.com/CaliLuke/go-sqlrecord/record"
)

func TestIntegSaveAssignsPrimaryKey(t *testing.T) {
	model := declarePersonnel(t)
	sess := setupSession(t, model.Departments, model.Employees)
	mgr := record.NewManager(sess, model.Departments)
	ctx := context.Background()

	d := mgr.New()
	d.MustSet("name", "Engineering")
	if _, bound := d.PrimaryKeyValue(); bound {
		t.Fatal("fresh record should be unbound")
	}
	if err := mgr.Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	pk, bound := d.PrimaryKeyValue()
	if !bound {
		t.Fatal("saved record should carry the assigned primary key")
	}
	if got := d.DirtyFields(); len(got) != 0 {
		t.Errorf("saved record should be clean, dirty: %v", got)
	}

	got, err := mgr.Find(ctx, pk)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got == nil {
		t.Fatal("Find returned nil for a saved record")
	}
	name, err := got.GetString("name")
	if err != nil || name != "Engineering" {
		t.Errorf("name: got %q, %v", name, err)
	}
}

func TestIntegUpdateWritesDirtyColumnsOnly(t *testing.T) {
	model := declarePersonnel(t)
	sess := setupSession(t, model.Departments, model.Employees)
	deptMgr := record.NewManager(sess, model.Departments)
	empMgr := record.NewManager(sess, model.Employees)
	ctx := context.Background()

	dept := seedDepartment(t, ctx, deptMgr, "Sales", 100000)
	deptID, _ := dept.PrimaryKeyValue()
	emp := seedEmployee(t, ctx, empMgr, "Ana", 50000, deptID)

	emp.MustSet("salary", 55000.0)
	if got := emp.DirtyFields(); len(got) != 1 || got[0] != "salary" {
		t.Fatalf("dirty fields: got %v, want [salary]", got)
	}
	if err := empMgr.Save(ctx, emp); err != nil {
		t.Fatalf("Save update: %v", err)
	}

	empID, _ := emp.PrimaryKeyValue()
	reloaded, err := empMgr.Find(ctx, empID)
	if err != nil || reloaded == nil {
		t.Fatalf("Find after update: %v, %v", reloaded, err)
	}
	salary, err := reloaded.GetFloat("salary")
	if err != nil || salary != 55000 {
		t.Errorf("salary: got %v, %v", salary, err)
	}
	name, _ := reloaded.GetString("name")
	if name != "Ana" {
		t.Errorf("name survived partial update: got %q", name)
	}
}

func TestIntegSaveCleanBoundRecordIsNoOp(t *testing.T) {
	model := declarePersonnel(t)
	sess := setupSession(t, model.Departments, model.Employees)
	mgr := record.NewManager(sess, model.Departments)
	ctx := context.Background()

	d := seedDepartment(t, ctx, mgr, "Legal", 30000)
	if err := mgr.Save(ctx, d); err != nil {
		t.Fatalf("re-saving a clean record: %v", err)
	}
}

func TestIntegBaseTypeRoundTrip(t *testing.T) {
	model := declarePersonnel(t)
	sess := setupSession(t, model.Departments, model.Employees)
	deptMgr := record.NewManager(sess, model.Departments)
	empMgr := record.NewManager(sess, model.Employees)
	ctx := context.Background()

	dept := seedDepartment(t, ctx, deptMgr, "R&D", 250000.5)
	deptID, _ := dept.PrimaryKeyValue()

	type review struct {
		Rating int    `msgpack:"rating"`
		Text   string `msgpack:"text"`
	}
	emp := empMgr.New()
	emp.MustSet("name", "Bruno")
	emp.MustSet("salary", 61500.25)
	emp.MustSet("department_id", deptID)
	emp.MustSet("notes", review{Rating: 5, Text: "solid"})
	if err := empMgr.Save(ctx, emp); err != nil {
		t.Fatalf("Save: %v", err)
	}

	empID, _ := emp.PrimaryKeyValue()
	got, err := empMgr.Find(ctx, empID)
	if err != nil || got == nil {
		t.Fatalf("Find: %v, %v", got, err)
	}
	if salary, _ := got.GetFloat("salary"); salary != 61500.25 {
		t.Errorf("salary: got %v", salary)
	}
	if fk, _ := got.GetInt("department_id"); fk != deptID.(int64) {
		t.Errorf("department_id: got %v, want %v", fk, deptID)
	}
	var r review
	if err := got.GetBlob("notes", &r); err != nil {
		t.Fatalf("GetBlob: %v", err)
	}
	if r.Rating != 5 || r.Text != "solid" {
		t.Errorf("blob round trip: got %+v", r)
	}
}

func TestIntegDelete(t *testing.T) {
	model := declarePersonnel(t)
	sess := setupSession(t, model.Departments, model.Employees)
	mgr := record.NewManager(sess, model.Departments)
	ctx := context.Background()

	d := seedDepartment(t, ctx, mgr, "Temp", 1)
	pk, _ := d.PrimaryKeyValue()
	if err := mgr.Delete(ctx, d); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := mgr.Find(ctx, pk)
	if err != nil {
		t.Fatalf("Find after delete: %v", err)
	}
	if got != nil {
		t.Error("row still present after delete")
	}
}

func TestIntegDeleteUnboundFails(t *testing.T) {
	model := declarePersonnel(t)
	sess := setupSession(t, model.Departments, model.Employees)
	mgr := record.NewManager(sess, model.Departments)

	err := mgr.Delete(context.Background(), mgr.New())
	var perr *record.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want *PersistenceError", err)
	}
	if perr.Operation != "delete" {
		t.Errorf("operation: got %q", perr.Operation)
	}
}

func TestIntegUniqueViolationIsConstraintError(t *testing.T) {
	model := declarePersonnel(t)
	sess := setupSession(t, model.Departments, model.Employees)
	mgr := record.NewManager(sess, model.Departments)
	ctx := context.Background()

	seedDepartment(t, ctx, mgr, "Unique", 1)

	dup := mgr.New()
	dup.MustSet("name", "Unique")
	err := mgr.Save(ctx, dup)
	var cerr *record.ConstraintError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want *ConstraintError", err)
	}
	if cerr.Table != "departments" {
		t.Errorf("table: got %q", cerr.Table)
	}
}

func TestIntegNotNullViolationIsConstraintError(t *testing.T) {
	model := declarePersonnel(t)
	sess := setupSession(t, model.Departments, model.Employees)
	mgr := record.NewManager(sess, model.Departments)

	d := mgr.New()
	d.MustSet("budget", 5.0) // name stays unset and is NOT NULL
	err := mgr.Save(context.Background(), d)
	var cerr *record.ConstraintError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want *ConstraintError", err)
	}
}

func TestIntegForeignKeyViolationIsConstraintError(t *testing.T) {
	model := declarePersonnel(t)
	sess := setupSession(t, model.Departments, model.Employees)
	mgr := record.NewManager(sess, model.Employees)

	e := mgr.New()
	e.MustSet("name", "Orphan")
	e.MustSet("department_id", int64(9999))
	err := mgr.Save(context.Background(), e)
	var cerr *record.ConstraintError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want *ConstraintError", err)
	}
}

func TestIntegManagerRejectsForeignRecord(t *testing.T) {
	model := declarePersonnel(t)
	sess := setupSession(t, model.Departments, model.Employees)
	deptMgr := record.NewManager(sess, model.Departments)
	empMgr := record.NewManager(sess, model.Employees)

	err := empMgr.Save(context.Background(), deptMgr.New())
	var perr *record.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want *PersistenceError", err)
	}
}
