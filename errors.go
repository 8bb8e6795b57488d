package tagmend

import (
	"github.com/tagmend/tagmend/internal/types"
)

// ConfigError is an alias to types.ConfigError.
// Re-exported from internal/types to keep the public API at the root.
type ConfigError = types.ConfigError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exported from internal/types to keep the public API at the root.
type UnsupportedFormatError = types.UnsupportedFormatError

// RejectionReason is an alias to types.RejectionReason.
// Re-exported from internal/types to keep the public API at the root.
type RejectionReason = types.RejectionReason

// Re-export the closed rejection reason set.
const (
	RejectWrongType = types.RejectWrongType
	RejectTooLong   = types.RejectTooLong
	RejectBelowMin  = types.RejectBelowMin
	RejectAboveMax  = types.RejectAboveMax
)
