package tagmend

import (
	"github.com/tagmend/tagmend/internal/registry"
	"github.com/tagmend/tagmend/internal/types"
)

// Codec is an alias to types.Codec.
// Re-exported from internal/types to keep the public API at the root.
type Codec = types.Codec

// Artwork is an alias to types.Artwork.
// Re-exported from internal/types to keep the public API at the root.
type Artwork = types.Artwork

// Format is an alias to types.Format.
// Re-exported from internal/types to keep the public API at the root.
type Format = types.Format

// Re-export the format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatMP3     = types.FormatMP3
)

// CodecOpener opens the file at path and returns a codec over its tags.
type CodecOpener = registry.Opener

// RegisterCodec registers a codec opener for a format.
//
// Codec packages call this from their init() functions. Registering a
// format twice replaces the previous opener.
func RegisterCodec(format Format, open CodecOpener) {
	registry.Register(format, open)
}

// OpenCodec opens the file at path with the codec registered for format.
//
// Returns *UnsupportedFormatError if no codec is registered.
func OpenCodec(format Format, path string) (Codec, error) {
	open := registry.Get(format)
	if open == nil {
		return nil, &UnsupportedFormatError{Format: format, Path: path}
	}
	return open(path)
}
