package types

import (
	"fmt"
	"strings"
)

// Action classifies what the correction engine did to a field.
type Action string

const (
	// ActionRemoved marks a field deleted by exclusion or cascade.
	ActionRemoved Action = "removed"

	// ActionReplaced marks an excluded value substituted with the
	// configured replacement instead of removed.
	ActionReplaced Action = "replaced"

	// ActionFormatted marks a value changed by a format rule.
	ActionFormatted Action = "formatted"

	// ActionFiltered marks a value changed by the character filter.
	ActionFiltered Action = "filtered"

	// ActionRejected marks a value that failed validation.
	// The value is left in place; rejection reports, it never deletes.
	ActionRejected Action = "rejected"
)

// RejectionReason is a validation outcome. It is data, not an error:
// rejections are carried in the report so that batch runs continue
// across fields and files without aborting.
type RejectionReason string

const (
	RejectWrongType RejectionReason = "wrong_type"
	RejectTooLong   RejectionReason = "too_long"
	RejectBelowMin  RejectionReason = "below_min"
	RejectAboveMax  RejectionReason = "above_max"
)

// Reasons attached to non-rejection changes.
const (
	// ReasonExcluded marks removal or replacement by an exclusion pattern.
	ReasonExcluded = "excluded"

	// ReasonDependent marks removal by the dependent-field cascade.
	ReasonDependent = "dependent"

	// ReasonFormatRule marks a change made by a per-field format rule.
	ReasonFormatRule = "format_rule"

	// ReasonCharFilter marks a change made by the character allow-list.
	ReasonCharFilter = "char_filter"
)

// Change describes a single correction applied to (or violation found in)
// one field.
type Change struct {
	// Field is the canonical field name.
	Field string

	// Action says what happened to the field.
	Action Action

	// Before is the value prior to the change. For removals it is the
	// removed value; for rejections it equals After.
	Before Value

	// After is the value after the change. Absent for removals.
	After Value

	// Reason is ReasonExcluded, ReasonDependent, ReasonFormatRule,
	// ReasonCharFilter, or a RejectionReason for rejected entries.
	Reason string
}

// String renders the change for logs and CLI output.
func (c Change) String() string {
	switch c.Action {
	case ActionRemoved:
		return fmt.Sprintf("%s: removed %q (%s)", c.Field, c.Before.String(), c.Reason)
	case ActionRejected:
		return fmt.Sprintf("%s: rejected %q (%s)", c.Field, c.Before.String(), c.Reason)
	default:
		return fmt.Sprintf("%s: %s %q -> %q (%s)", c.Field, c.Action, c.Before.String(), c.After.String(), c.Reason)
	}
}

// Report is the ordered list of changes produced by one correction run.
// It is read-only once returned.
type Report []Change

// Empty reports whether the run changed nothing and found no violations.
func (r Report) Empty() bool {
	return len(r) == 0
}

// Rejections returns the rejected entries, preserving order.
func (r Report) Rejections() []Change {
	var out []Change
	for _, c := range r {
		if c.Action == ActionRejected {
			out = append(out, c)
		}
	}
	return out
}

// ByField returns the changes touching one field, preserving order.
func (r Report) ByField(field string) []Change {
	key := CanonicalField(field)
	var out []Change
	for _, c := range r {
		if c.Field == key {
			out = append(out, c)
		}
	}
	return out
}

// String renders the report one change per line.
func (r Report) String() string {
	lines := make([]string, len(r))
	for i, c := range r {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}
