package types

// Format identifies a tag format a codec can handle.
type Format string

const (
	FormatUnknown Format = ""
	FormatMP3     Format = "mp3"
)

// Artwork is an embedded cover image.
//
// Artwork is not a metadata field: it never enters the correction
// pipeline and is only moved around by the surrounding manager.
type Artwork struct {
	// Data is the raw image bytes.
	Data []byte

	// MIMEType is the image MIME type (e.g. "image/jpeg").
	MIMEType string

	// Description is the free-form picture description, if any.
	Description string
}

// Codec is the tag read/write boundary.
//
// A Codec wraps one opened audio file and exposes its textual tag frames
// as a flat field-name -> Value mapping, plus the cover-art attachment as
// a separate pass-through. Implementations own all file-level concerns:
// parsing binary frames, encodings, and persistence. The correction
// engine only ever sees plain records.
//
// Field names handed to a Codec are canonicalized by the caller; a Codec
// must treat names case-insensitively.
type Codec interface {
	// Fields returns the present field names in a stable order.
	Fields() []string

	// Get returns the field's value, or Absent if not present.
	Get(field string) Value

	// Set stores a field value.
	Set(field string, v Value)

	// Delete removes a field. Unknown fields are a no-op.
	Delete(field string)

	// Artwork returns the embedded cover art, or nil if there is none.
	Artwork() *Artwork

	// SetArtwork replaces any existing cover art.
	SetArtwork(art *Artwork)

	// RemoveArtwork deletes all cover art.
	RemoveArtwork()

	// Save persists pending changes to the underlying file.
	Save() error
}
