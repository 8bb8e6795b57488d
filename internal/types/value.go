package types

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindAbsent is a missing value. The zero Value is absent.
	KindAbsent Kind = iota

	// KindString is a textual value.
	KindString

	// KindInt is an integer value.
	KindInt
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a tagged union over the three shapes a metadata field can take:
// a string, an integer, or absent.
//
// Using a closed variant instead of an untyped interface lets the formatter,
// validator and character filter switch exhaustively on Kind and pass
// non-string values through unchanged without runtime type assertions.
//
// Values are immutable. The zero Value is Absent:
//
//	var v tagmend.Value
//	v.IsAbsent() // true
type Value struct {
	kind Kind
	str  string
	num  int64
}

// StringValue returns a string-kinded Value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntValue returns an integer-kinded Value.
func IntValue(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// Absent returns the absent Value. Equivalent to the zero Value.
func Absent() Value {
	return Value{}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether v holds no value.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Text returns the string payload. It is empty for non-string values;
// check Kind first when the distinction matters.
func (v Value) Text() string {
	return v.str
}

// Int returns the integer payload. It is zero for non-integer values;
// check Kind first when the distinction matters.
func (v Value) Int() int64 {
	return v.num
}

// String renders the value for matching, reports and display.
// Absent renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	default:
		return ""
	}
}

// Equal reports whether two values hold the same variant and payload.
func (v Value) Equal(other Value) bool {
	return v == other
}
