package engine

import (
	"regexp"
	"strings"

	"github.com/tagmend/tagmend/internal/types"
)

// FilterChars applies the per-character allow-list to a value.
//
// Each character not matching allowed is replaced by replacement (which
// may be empty, meaning deletion). The regex is checked against one
// character at a time, so there is no backtracking ambiguity and a
// single deterministic pass suffices. Non-string values and a nil
// regexp pass through unchanged.
func FilterChars(v types.Value, allowed *regexp.Regexp, replacement string) types.Value {
	if allowed == nil || v.Kind() != types.KindString {
		return v
	}

	var b strings.Builder
	changed := false
	for _, r := range v.Text() {
		if allowed.MatchString(string(r)) {
			b.WriteRune(r)
		} else {
			b.WriteString(replacement)
			changed = true
		}
	}
	if !changed {
		return v
	}
	return types.StringValue(b.String())
}
