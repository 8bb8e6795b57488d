package types

import (
	"slices"
	"testing"
)

func TestRecord_CaseInsensitiveFields(t *testing.T) {
	r := NewRecord()
	r.Set("Artist", StringValue("AM"))

	if got := r.Get("ARTIST"); got.Text() != "AM" {
		t.Errorf("Get(ARTIST) = %q, want AM", got.Text())
	}

	// Re-setting under a different casing addresses the same field.
	r.Set("artist", StringValue("Humbug"))
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
	if got := r.Get("Artist"); got.Text() != "Humbug" {
		t.Errorf("Get(Artist) = %q, want Humbug", got.Text())
	}
}

func TestRecord_PreservesInsertionOrder(t *testing.T) {
	r := NewRecord()
	r.Set("title", StringValue("a"))
	r.Set("artist", StringValue("b"))
	r.Set("album", StringValue("c"))
	r.Set("title", StringValue("updated")) // must not move

	want := []string{"title", "artist", "album"}
	if got := r.Fields(); !slices.Equal(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
}

func TestRecord_Delete(t *testing.T) {
	r := NewRecord()
	r.Set("title", StringValue("a"))
	r.Set("artist", StringValue("b"))

	r.Delete("TITLE")
	if r.Has("title") {
		t.Error("title should be gone after Delete")
	}
	if got := r.Fields(); !slices.Equal(got, []string{"artist"}) {
		t.Errorf("Fields() = %v, want [artist]", got)
	}

	// Deleting an unknown field is a no-op.
	r.Delete("missing")
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRecord_AbsentValueIsPresentField(t *testing.T) {
	r := NewRecord()
	r.Set("comment", Absent())

	if r.Has("comment") {
		t.Error("Has() should be false for an absent value")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (field set but cleared)", r.Len())
	}
}

func TestRecord_CloneIsIndependent(t *testing.T) {
	r := NewRecord()
	r.Set("title", StringValue("505"))

	clone := r.Clone()
	clone.Set("title", StringValue("mutated"))
	clone.Set("extra", IntValue(1))

	if got := r.Get("title"); got.Text() != "505" {
		t.Errorf("original mutated through clone: %q", got.Text())
	}
	if r.Has("extra") {
		t.Error("original gained a field through clone")
	}
}

func TestRecord_Equal(t *testing.T) {
	a := NewRecord()
	a.Set("title", StringValue("505"))
	a.Set("track", IntValue(7))

	b := NewRecord()
	b.Set("title", StringValue("505"))
	b.Set("track", IntValue(7))

	if !a.Equal(b) {
		t.Error("identical records should be equal")
	}

	// Same fields, different order: not equal.
	c := NewRecord()
	c.Set("track", IntValue(7))
	c.Set("title", StringValue("505"))
	if a.Equal(c) {
		t.Error("records with different field order should not be equal")
	}
}

func TestRecord_All(t *testing.T) {
	r := NewRecord()
	r.Set("title", StringValue("a"))
	r.Set("artist", StringValue("b"))

	var fields []string
	for field, v := range r.All() {
		fields = append(fields, field)
		if v.IsAbsent() {
			t.Errorf("unexpected absent value for %s", field)
		}
	}
	if !slices.Equal(fields, []string{"title", "artist"}) {
		t.Errorf("All() order = %v", fields)
	}
}
