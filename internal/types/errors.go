package types

import "fmt"

// ConfigError is returned when the rule document is malformed.
//
// A ConfigError is fatal to the whole run: it is surfaced at load time,
// before any record is processed. Per-field validation outcomes are not
// errors; see RejectionReason.
type ConfigError struct {
	// Section is the top-level config key where the problem lies
	// (e.g. "fields_spec", "char_filter").
	Section string

	// Field is the field name inside the section, if any.
	Field string

	// Reason describes what is wrong with the shape.
	Reason string

	// Err is the underlying cause, if any (e.g. a regex compile error).
	Err error
}

func (e *ConfigError) Error() string {
	msg := "config: " + e.Section
	if e.Field != "" {
		msg += "." + e.Field
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError is returned when no codec is registered for a
// tag format.
type UnsupportedFormatError struct {
	Format Format
	Path   string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: no codec registered for format %s", e.Path, e.Format)
	}
	return fmt.Sprintf("no codec registered for format %s", e.Format)
}
