package tagmend

import (
	"github.com/tagmend/tagmend/internal/types"
)

// CorrectionReport is an alias to types.Report.
// Re-exported from internal/types to keep the public API at the root.
type CorrectionReport = types.Report

// Change is an alias to types.Change.
// Re-exported from internal/types to keep the public API at the root.
type Change = types.Change

// Action is an alias to types.Action.
// Re-exported from internal/types to keep the public API at the root.
type Action = types.Action

// Re-export the report actions.
const (
	ActionRemoved   = types.ActionRemoved
	ActionReplaced  = types.ActionReplaced
	ActionFormatted = types.ActionFormatted
	ActionFiltered  = types.ActionFiltered
	ActionRejected  = types.ActionRejected
)

// Re-export the non-rejection change reasons.
const (
	ReasonExcluded   = types.ReasonExcluded
	ReasonDependent  = types.ReasonDependent
	ReasonFormatRule = types.ReasonFormatRule
	ReasonCharFilter = types.ReasonCharFilter
)
