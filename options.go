package tagmend

import "fmt"

// ApplyOption configures Manager.Apply behavior.
//
// Options use the functional options pattern:
//
//	report, err := manager.Apply(
//	    tagmend.WithStrictValidation(),
//	    tagmend.WithoutArtwork(),
//	)
type ApplyOption func(*applyOptions)

// applyOptions holds configuration for applying corrections.
type applyOptions struct {
	strictValidation bool // Treat any rejected entry as an error
	dryRun           bool // Report only, leave the codec untouched
	removeArtwork    bool // Also strip cover art
}

// defaultApplyOptions returns the default configuration.
func defaultApplyOptions() *applyOptions {
	return &applyOptions{}
}

// WithStrictValidation makes Apply fail when any field is rejected.
//
// By default, rejected entries are carried in the report and the save
// proceeds with the offending values left in place. With strict
// validation, Apply writes nothing and returns an error naming the
// first rejection, so a caller can block the save outright.
//
// Example:
//
//	report, err := manager.Apply(tagmend.WithStrictValidation())
//	// err != nil if ANY field failed validation
func WithStrictValidation() ApplyOption {
	return func(o *applyOptions) {
		o.strictValidation = true
	}
}

// WithDryRun computes the report without touching the codec.
//
// Use this to preview what a correction run would change before
// committing to it.
//
// Example:
//
//	report, err := manager.Apply(tagmend.WithDryRun())
//	fmt.Println(report) // nothing was written
func WithDryRun() ApplyOption {
	return func(o *applyOptions) {
		o.dryRun = true
	}
}

// WithoutArtwork also removes the cover-art attachment during Apply.
//
// Artwork is not a metadata field and is never touched by the
// correction pipeline; this option is the explicit way to strip it in
// the same pass.
func WithoutArtwork() ApplyOption {
	return func(o *applyOptions) {
		o.removeArtwork = true
	}
}

// StrictValidationError is returned by Apply under WithStrictValidation
// when the report contains rejected entries.
type StrictValidationError struct {
	// Rejections are the rejected report entries, in order.
	Rejections []Change
}

func (e *StrictValidationError) Error() string {
	first := e.Rejections[0]
	if len(e.Rejections) == 1 {
		return fmt.Sprintf("strict validation failed: %s: %s", first.Field, first.Reason)
	}
	return fmt.Sprintf("strict validation failed: %s: %s (and %d more)",
		first.Field, first.Reason, len(e.Rejections)-1)
}
