package engine

import (
	"strconv"
	"unicode/utf8"

	"github.com/tagmend/tagmend/internal/rules"
	"github.com/tagmend/tagmend/internal/types"
)

// Validate checks a value against a field spec.
//
// It returns ok=true when the value satisfies the spec, otherwise
// ok=false with one reason from the closed RejectionReason set.
// Validation never alters the value; enforcement is the caller's call.
func Validate(v types.Value, spec rules.FieldSpec) (reason types.RejectionReason, ok bool) {
	if spec.IsInt() {
		return validateInt(v, spec)
	}
	return validateStr(v, spec)
}

// validateStr length-checks string values. Integer values have no
// length and pass; a str spec constrains, it does not convert.
func validateStr(v types.Value, spec rules.FieldSpec) (types.RejectionReason, bool) {
	if v.Kind() != types.KindString || spec.MaxLength == nil {
		return "", true
	}
	if utf8.RuneCountInString(v.Text()) > *spec.MaxLength {
		return types.RejectTooLong, false
	}
	return "", true
}

// validateInt requires the value to be representable as an integer
// (native integer or digit string) and range-checks it.
func validateInt(v types.Value, spec rules.FieldSpec) (types.RejectionReason, bool) {
	var n int64
	switch v.Kind() {
	case types.KindInt:
		n = v.Int()
	case types.KindString:
		parsed, err := strconv.ParseInt(v.Text(), 10, 64)
		if err != nil {
			return types.RejectWrongType, false
		}
		n = parsed
	default:
		return types.RejectWrongType, false
	}

	if spec.Min != nil && n < *spec.Min {
		return types.RejectBelowMin, false
	}
	if spec.Max != nil && n > *spec.Max {
		return types.RejectAboveMax, false
	}
	return "", true
}
