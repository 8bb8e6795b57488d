package engine

import (
	"strings"

	"github.com/tagmend/tagmend/internal/rules"
	"github.com/tagmend/tagmend/internal/types"
)

// Format applies a format rule to a value.
//
// Transforms apply in a fixed order: strip, then the case transform
// (uppercase wins when both flags are set), then truncation to
// max_length characters keeping the prefix. Truncation counts runes,
// not bytes. Non-string values pass through unchanged.
func Format(v types.Value, rule rules.FormatRule) types.Value {
	if v.Kind() != types.KindString {
		return v
	}

	s := v.Text()
	if rule.Strip {
		s = strings.TrimSpace(s)
	}
	switch {
	case rule.Uppercase:
		s = strings.ToUpper(s)
	case rule.Lowercase:
		s = strings.ToLower(s)
	}
	if rule.MaxLength != nil {
		if r := []rune(s); len(r) > *rule.MaxLength {
			s = string(r[:*rule.MaxLength])
		}
	}
	return types.StringValue(s)
}
