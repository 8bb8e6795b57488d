package tagmend

import (
	"github.com/tagmend/tagmend/internal/rules"
	"github.com/tagmend/tagmend/internal/types"
)

// Value is an alias to types.Value.
// Re-exported from internal/types to keep the public API at the root.
type Value = types.Value

// Kind is an alias to types.Kind.
// Re-exported from internal/types to keep the public API at the root.
type Kind = types.Kind

// Re-export the value kinds.
const (
	KindAbsent = types.KindAbsent
	KindString = types.KindString
	KindInt    = types.KindInt
)

// String returns a string-kinded Value.
func String(s string) Value {
	return types.StringValue(s)
}

// Int returns an integer-kinded Value.
func Int(n int64) Value {
	return types.IntValue(n)
}

// Absent returns the absent Value.
func Absent() Value {
	return types.Absent()
}

// Record is an alias to types.Record.
// Re-exported from internal/types to keep the public API at the root.
type Record = types.Record

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return types.NewRecord()
}

// ParseRecord parses a flat field -> value YAML or JSON mapping into a
// Record, preserving the document's field order.
func ParseRecord(data []byte) (*Record, error) {
	return rules.DecodeRecord(data)
}
