package tagmend_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagmend/tagmend"
)

func newTestManager(t *testing.T, doc string, seed func(*tagmend.Record)) (*tagmend.Manager, *tagmend.MemCodec) {
	t.Helper()

	cfg, err := tagmend.ParseConfig([]byte(doc))
	require.NoError(t, err)

	record := tagmend.NewRecord()
	if seed != nil {
		seed(record)
	}
	codec := tagmend.NewMemCodec(record)

	mgr, err := tagmend.NewManager(codec, cfg)
	require.NoError(t, err)
	return mgr, codec
}

func TestNewManager_NilArguments(t *testing.T) {
	t.Parallel()

	cfg, err := tagmend.ParseConfig(nil)
	require.NoError(t, err)

	_, err = tagmend.NewManager(nil, cfg)
	assert.Error(t, err)

	_, err = tagmend.NewManager(tagmend.NewMemCodec(nil), nil)
	assert.Error(t, err)
}

func TestManager_ApplyWritesBack(t *testing.T) {
	t.Parallel()

	mgr, codec := newTestManager(t, testRules, func(r *tagmend.Record) {
		r.Set("artist", tagmend.String("Unknown Artist"))
		r.Set("musicbrainz_artistid", tagmend.String("b24cd0f8"))
		r.Set("title", tagmend.String("  505  "))
		r.Set("album", tagmend.String("AM"))
	})

	report, err := mgr.Apply()
	require.NoError(t, err)
	assert.Len(t, report, 3)

	// Removed fields are gone from the codec, changed fields rewritten,
	// untouched fields left alone.
	assert.True(t, codec.Get("artist").IsAbsent())
	assert.True(t, codec.Get("musicbrainz_artistid").IsAbsent())
	assert.Equal(t, "505", codec.Get("title").Text())
	assert.Equal(t, "AM", codec.Get("album").Text())
}

func TestManager_ApplyDryRun(t *testing.T) {
	t.Parallel()

	mgr, codec := newTestManager(t, testRules, func(r *tagmend.Record) {
		r.Set("artist", tagmend.String("Unknown Artist"))
	})

	report, err := mgr.Apply(tagmend.WithDryRun())
	require.NoError(t, err)
	assert.Len(t, report, 1)

	// Nothing written.
	assert.Equal(t, "Unknown Artist", codec.Get("artist").Text())
}

func TestManager_ApplyStrictValidation(t *testing.T) {
	t.Parallel()

	mgr, codec := newTestManager(t, testRules, func(r *tagmend.Record) {
		r.Set("tracknumber", tagmend.Int(150))
		r.Set("title", tagmend.String("  505  "))
	})

	report, err := mgr.Apply(tagmend.WithStrictValidation())
	require.Error(t, err)

	var strictErr *tagmend.StrictValidationError
	require.ErrorAs(t, err, &strictErr)
	assert.Len(t, strictErr.Rejections, 1)

	// The report still comes back for display, but nothing was written.
	assert.False(t, report.Empty())
	assert.Equal(t, "  505  ", codec.Get("title").Text())
}

func TestManager_ApplyStrictValidationCleanRecord(t *testing.T) {
	t.Parallel()

	mgr, codec := newTestManager(t, testRules, func(r *tagmend.Record) {
		r.Set("tracknumber", tagmend.Int(7))
		r.Set("title", tagmend.String("  505  "))
	})

	_, err := mgr.Apply(tagmend.WithStrictValidation())
	require.NoError(t, err)
	assert.Equal(t, "505", codec.Get("title").Text())
}

func TestManager_ArtworkPassThrough(t *testing.T) {
	t.Parallel()

	mgr, _ := newTestManager(t, testRules, nil)

	assert.Nil(t, mgr.Artwork())

	art := &tagmend.Artwork{Data: []byte{0xFF, 0xD8}, MIMEType: "image/jpeg", Description: "Cover"}
	mgr.SetArtwork(art)
	require.NotNil(t, mgr.Artwork())
	assert.Equal(t, "image/jpeg", mgr.Artwork().MIMEType)

	mgr.RemoveArtwork()
	assert.Nil(t, mgr.Artwork())
}

func TestManager_ApplyWithoutArtwork(t *testing.T) {
	t.Parallel()

	mgr, codec := newTestManager(t, testRules, nil)
	codec.SetArtwork(&tagmend.Artwork{Data: []byte{1}, MIMEType: "image/png"})

	_, err := mgr.Apply(tagmend.WithoutArtwork())
	require.NoError(t, err)
	assert.Nil(t, codec.Artwork())
}

func TestManager_FieldPassThroughAndSave(t *testing.T) {
	t.Parallel()

	mgr, codec := newTestManager(t, "", nil)

	mgr.Set("Title", tagmend.String("505"))
	assert.Equal(t, "505", mgr.Get("title").Text())
	assert.Equal(t, "505", codec.Get("TITLE").Text())

	mgr.Delete("title")
	assert.True(t, mgr.Get("title").IsAbsent())

	assert.NoError(t, mgr.Save())
}

func TestManager_RecordIsSnapshot(t *testing.T) {
	t.Parallel()

	mgr, codec := newTestManager(t, "", func(r *tagmend.Record) {
		r.Set("title", tagmend.String("505"))
	})

	snapshot := mgr.Record()
	snapshot.Set("title", tagmend.String("mutated"))
	assert.Equal(t, "505", codec.Get("title").Text())
}

func TestOpenCodec_UnregisteredFormat(t *testing.T) {
	t.Parallel()

	_, err := tagmend.OpenCodec(tagmend.Format("flac"), "x.flac")
	require.Error(t, err)

	var unsupported *tagmend.UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

func TestRegisterCodec(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("opened")
	tagmend.RegisterCodec(tagmend.Format("test-format"), func(path string) (tagmend.Codec, error) {
		assert.Equal(t, "x.bin", path)
		return nil, sentinel
	})

	_, err := tagmend.OpenCodec(tagmend.Format("test-format"), "x.bin")
	assert.ErrorIs(t, err, sentinel)
}
