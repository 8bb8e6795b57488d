package tagmend

import (
	"errors"
)

// Manager ties a tag codec to a rule set.
//
// It is the file-level orchestrator: it reads the codec's fields into a
// plain record, runs the correction pipeline, and writes the corrected
// values back. Artwork operations pass straight through to the codec;
// cover art is not a field and never enters the pipeline.
//
// A Manager wraps one open file. Sequencing, retrying and locking around
// file access belong to the caller; corrections themselves are pure.
//
// Example:
//
//	codec, err := tagmend.OpenCodec(tagmend.FormatMP3, "song.mp3")
//	if err != nil {
//		return err
//	}
//	mgr, err := tagmend.NewManager(codec, cfg)
//	if err != nil {
//		return err
//	}
//	report, err := mgr.Apply()
//	if err != nil {
//		return err
//	}
//	fmt.Println(report)
//	return mgr.Save()
type Manager struct {
	codec Codec
	cfg   *Config
}

// NewManager returns a Manager over codec using cfg.
func NewManager(codec Codec, cfg *Config) (*Manager, error) {
	if codec == nil {
		return nil, errors.New("codec cannot be nil")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	return &Manager{codec: codec, cfg: cfg}, nil
}

// Record returns a snapshot of the codec's current fields.
// The snapshot is independent of the codec; mutating it changes nothing.
func (m *Manager) Record() *Record {
	record := NewRecord()
	for _, field := range m.codec.Fields() {
		record.Set(field, m.codec.Get(field))
	}
	return record
}

// Get returns a field's current value from the codec.
func (m *Manager) Get(field string) Value {
	return m.codec.Get(field)
}

// Set stores a field value in the codec.
func (m *Manager) Set(field string, v Value) {
	m.codec.Set(field, v)
}

// Delete removes a field from the codec.
func (m *Manager) Delete(field string) {
	m.codec.Delete(field)
}

// Apply runs the correction pipeline over the codec's fields and writes
// the corrected values back.
//
// The returned report lists every change made and every violation
// found. Rejected values stay in place (validation reports, it does not
// enforce) unless WithStrictValidation is given, in which case Apply
// writes nothing and returns a *StrictValidationError. WithDryRun
// computes the report without touching the codec.
//
// Apply does not persist; call Save for that.
func (m *Manager) Apply(opts ...ApplyOption) (CorrectionReport, error) {
	options := defaultApplyOptions()
	for _, opt := range opts {
		opt(options)
	}

	before := m.Record()
	corrected, report := Correct(before, m.cfg)

	if options.strictValidation {
		if rejections := report.Rejections(); len(rejections) > 0 {
			return report, &StrictValidationError{Rejections: rejections}
		}
	}

	if options.dryRun {
		return report, nil
	}

	// Write back: delete what the pipeline removed, set what it changed.
	for _, field := range before.Fields() {
		after := corrected.Get(field)
		switch {
		case after.IsAbsent():
			m.codec.Delete(field)
		case !after.Equal(before.Get(field)):
			m.codec.Set(field, after)
		}
	}

	if options.removeArtwork {
		m.codec.RemoveArtwork()
	}

	return report, nil
}

// Save persists pending changes through the codec.
func (m *Manager) Save() error {
	return m.codec.Save()
}

// Artwork returns the file's cover art, or nil if there is none.
func (m *Manager) Artwork() *Artwork {
	return m.codec.Artwork()
}

// SetArtwork replaces the file's cover art.
func (m *Manager) SetArtwork(art *Artwork) {
	m.codec.SetArtwork(art)
}

// RemoveArtwork deletes the file's cover art.
func (m *Manager) RemoveArtwork() {
	m.codec.RemoveArtwork()
}
