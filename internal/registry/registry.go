// Package registry manages codec openers for tag formats.
package registry

import (
	"github.com/tagmend/tagmend/internal/types"
)

// Opener opens the file at path and returns a codec over its tags.
type Opener func(path string) (types.Codec, error)

// openers maps formats to their codec openers.
var openers = make(map[types.Format]Opener)

// Register registers an opener for a format.
// This is called by codec packages during initialization (init functions).
func Register(format types.Format, open Opener) {
	openers[format] = open
}

// Get returns the opener for a given format.
// Returns nil if no opener is registered for the format.
func Get(format types.Format) Opener {
	return openers[format]
}
