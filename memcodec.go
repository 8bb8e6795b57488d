package tagmend

import (
	"github.com/tagmend/tagmend/internal/types"
)

// MemCodec is an in-memory Codec.
//
// It backs tests, examples and dry runs with the same mapping-like
// surface a file-backed ID3 codec exposes, without touching disk.
// Save is a no-op.
type MemCodec struct {
	record *Record
	art    *Artwork
}

// NewMemCodec returns a MemCodec seeded with a copy of record.
// A nil record starts empty.
func NewMemCodec(record *Record) *MemCodec {
	if record == nil {
		record = NewRecord()
	} else {
		record = record.Clone()
	}
	return &MemCodec{record: record}
}

// Fields returns the present field names in insertion order.
func (m *MemCodec) Fields() []string {
	return m.record.Fields()
}

// Get returns the field's value, or Absent if not present.
func (m *MemCodec) Get(field string) Value {
	return m.record.Get(field)
}

// Set stores a field value.
func (m *MemCodec) Set(field string, v Value) {
	m.record.Set(field, v)
}

// Delete removes a field.
func (m *MemCodec) Delete(field string) {
	m.record.Delete(field)
}

// Artwork returns the stored cover art, or nil.
func (m *MemCodec) Artwork() *Artwork {
	return m.art
}

// SetArtwork replaces the stored cover art.
func (m *MemCodec) SetArtwork(art *Artwork) {
	m.art = art
}

// RemoveArtwork deletes the stored cover art.
func (m *MemCodec) RemoveArtwork() {
	m.art = nil
}

// Save is a no-op; a MemCodec has nothing to persist.
func (m *MemCodec) Save() error {
	return nil
}

// interface guard
var _ types.Codec = (*MemCodec)(nil)
