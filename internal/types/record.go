package types

import (
	"iter"
	"slices"
	"strings"
)

// Record is an ordered mapping from field name to Value.
//
// Field names are case-insensitive: they are canonicalized to lower case on
// every access, so Set("Artist", ...) and Get("ARTIST") address the same
// field. Insertion order is preserved and defines the order in which the
// correction engine processes fields, keeping correction runs deterministic.
//
// A field can be present with an absent Value (set but cleared); such fields
// are skipped by the correction pipeline but still count as "absent" for the
// dependent-removal cascade.
//
// Record is not safe for concurrent mutation. The correction engine never
// mutates a caller-owned Record; it works on a Clone.
type Record struct {
	order  []string
	values map[string]Value
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]Value)}
}

// CanonicalField returns the canonical (lower-case) form of a field name.
func CanonicalField(field string) string {
	return strings.ToLower(field)
}

// Set stores a value under the field's canonical name.
// A field seen for the first time is appended to the record's order.
func (r *Record) Set(field string, v Value) {
	key := CanonicalField(field)
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, exists := r.values[key]; !exists {
		r.order = append(r.order, key)
	}
	r.values[key] = v
}

// Get returns the value stored under field, or Absent if the field
// has never been set or has been deleted.
func (r *Record) Get(field string) Value {
	if r.values == nil {
		return Absent()
	}
	return r.values[CanonicalField(field)]
}

// Has reports whether field carries a non-absent value.
func (r *Record) Has(field string) bool {
	return !r.Get(field).IsAbsent()
}

// Delete removes the field entirely, including its position in the order.
// Deleting an unknown field is a no-op.
func (r *Record) Delete(field string) {
	key := CanonicalField(field)
	if r.values == nil {
		return
	}
	if _, exists := r.values[key]; !exists {
		return
	}
	delete(r.values, key)
	r.order = slices.DeleteFunc(r.order, func(k string) bool { return k == key })
}

// Fields returns the field names in insertion order.
// The returned slice is a copy and safe to modify.
func (r *Record) Fields() []string {
	return slices.Clone(r.order)
}

// Len returns the number of fields in the record, absent values included.
func (r *Record) Len() int {
	return len(r.order)
}

// All returns an iterator over fields in insertion order.
//
// Example:
//
//	for field, value := range record.All() {
//		fmt.Printf("%s: %s\n", field, value)
//	}
func (r *Record) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range r.order {
			if !yield(key, r.values[key]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	clone := &Record{
		order:  slices.Clone(r.order),
		values: make(map[string]Value, len(r.values)),
	}
	for key, v := range r.values {
		clone.values[key] = v
	}
	return clone
}

// Equal reports whether two records hold the same fields with the same
// values in the same order.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if !slices.Equal(r.order, other.order) {
		return false
	}
	for key, v := range r.values {
		if !v.Equal(other.values[key]) {
			return false
		}
	}
	return true
}
