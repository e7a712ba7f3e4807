package record

import (
	"errors"
	"testing"
)

func newsType(t *testing.T) *RecordType {
	t.Helper()
	ClearRegistry()
	return MustNewType("articles",
		Col("id", Integer, PrimaryKey()),
		Col("title", Text, NotNull()),
		Col("score", Real),
		Col("body", Blob),
	)
}

func TestRecord_SetGet(t *testing.T) {
	typ := newsType(t)
	r := typ.New()

	if err := r.Set("title", "hello"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err := r.Get("title")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "hello" {
		t.Errorf("got %v, want hello", v)
	}

	// Declared but never written reads as nil.
	v, err = r.Get("score")
	if err != nil {
		t.Fatalf("get unset: %v", err)
	}
	if v != nil {
		t.Errorf("unset attribute: got %v, want nil", v)
	}
}

func TestRecord_UnknownField(t *testing.T) {
	typ := newsType(t)
	r := typ.New()

	_, err := r.Get("nope")
	var ufe *UnknownFieldError
	if !errors.As(err, &ufe) {
		t.Fatalf("get: expected *UnknownFieldError, got %T (%v)", err, err)
	}
	if ufe.Field != "nope" {
		t.Errorf("Field: got %q", ufe.Field)
	}

	if err := r.Set("nope", 1); !errors.As(err, &ufe) {
		t.Errorf("set: expected *UnknownFieldError, got %T (%v)", err, err)
	}
}

func TestRecord_DirtyTracking(t *testing.T) {
	typ := newsType(t)
	r := typ.New()

	if len(r.DirtyFields()) != 0 {
		t.Fatal("fresh record must be clean")
	}

	r.MustSet("score", 1.5)
	r.MustSet("title", "a")

	if !r.IsDirty("title") || !r.IsDirty("score") {
		t.Error("written attributes must be dirty")
	}
	// Declaration order, not write order.
	got := r.DirtyFields()
	if len(got) != 2 || got[0] != "title" || got[1] != "score" {
		t.Errorf("DirtyFields: got %v, want [title score]", got)
	}
}

func TestRecord_FromRowIsClean(t *testing.T) {
	typ := newsType(t)

	r := fromRow(typ, []string{"id", "title", "extra_alias"}, []any{int64(7), "loaded", "joined"})

	if len(r.DirtyFields()) != 0 {
		t.Error("loaded record must have an empty dirty set")
	}
	pk, bound := r.PrimaryKeyValue()
	if !bound || pk != int64(7) {
		t.Errorf("PrimaryKeyValue: got %v bound=%v", pk, bound)
	}
	// Columns a projection or join added are readable even though the type
	// does not declare them.
	v, err := r.Get("extra_alias")
	if err != nil {
		t.Fatalf("projected column: %v", err)
	}
	if v != "joined" {
		t.Errorf("got %v, want joined", v)
	}
}

func TestRecord_TypedGetters(t *testing.T) {
	typ := newsType(t)
	r := fromRow(typ, []string{"id", "title", "score"}, []any{int64(3), "x", 2.5})

	if n, err := r.GetInt("id"); err != nil || n != 3 {
		t.Errorf("GetInt: got %d, %v", n, err)
	}
	if f, err := r.GetFloat("score"); err != nil || f != 2.5 {
		t.Errorf("GetFloat: got %v, %v", f, err)
	}
	if s, err := r.GetString("title"); err != nil || s != "x" {
		t.Errorf("GetString: got %q, %v", s, err)
	}
	if _, err := r.GetInt("title"); err == nil {
		t.Error("GetInt on text must fail")
	}
}

func TestRecord_BlobCodec(t *testing.T) {
	typ := newsType(t)
	r := typ.New()

	type payload struct {
		Kind  string
		Count int
	}
	if err := r.Set("body", payload{Kind: "draft", Count: 4}); err != nil {
		t.Fatalf("set: %v", err)
	}

	// The stored value is raw bytes; GetBlob decodes them back.
	stored, _ := r.Get("body")
	if _, ok := stored.([]byte); !ok {
		t.Fatalf("stored blob: got %T, want []byte", stored)
	}

	var out payload
	if err := r.GetBlob("body", &out); err != nil {
		t.Fatalf("GetBlob: %v", err)
	}
	if out.Kind != "draft" || out.Count != 4 {
		t.Errorf("round trip: got %+v", out)
	}
}

func TestRecord_BlobRawBytesPassThrough(t *testing.T) {
	typ := newsType(t)
	r := typ.New()

	raw := []byte{0x01, 0x02}
	if err := r.Set("body", raw); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, _ := r.Get("body")
	b, ok := v.([]byte)
	if !ok || len(b) != 2 || b[0] != 0x01 {
		t.Errorf("raw bytes must pass through unchanged, got %v", v)
	}
}

func TestForeignKeyName(t *testing.T) {
	tests := []struct {
		table string
		want  string
	}{
		{"departments", "department_id"},
		{"employees", "employee_id"},
		{"companies", "company_id"},
		{"people", "person_id"},
	}
	for _, tt := range tests {
		if got := ForeignKeyName(tt.table); got != tt.want {
			t.Errorf("ForeignKeyName(%q): got %q, want %q", tt.table, got, tt.want)
		}
	}
}
