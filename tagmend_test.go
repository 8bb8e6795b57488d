package tagmend_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagmend/tagmend"
)

const testRules = `
exclude_values:
  global: ["*unknown*"]
dependent_removals:
  artist: [musicbrainz_artistid, artistsort]
format_rules:
  title:
    strip: true
fields_spec:
  tracknumber:
    type: int
    min: 1
    max: 99
char_filter:
  allowed_regex: "^[a-zA-Z0-9 ]$"
  replace_not_allowed: "_"
`

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testRules), 0o644))

	cfg, err := tagmend.LoadConfig(path)
	require.NoError(t, err)

	record := tagmend.NewRecord()
	record.Set("artist", tagmend.String("Unknown Artist"))
	record.Set("title", tagmend.String("  A & B  "))
	record.Set("tracknumber", tagmend.Int(150))

	corrected, report := tagmend.Correct(record, cfg)

	assert.False(t, corrected.Has("artist"))
	assert.Equal(t, "A _ B", corrected.Get("title").Text())
	assert.Equal(t, tagmend.Int(150), corrected.Get("tracknumber"))

	rejections := report.Rejections()
	require.Len(t, rejections, 1)
	assert.Equal(t, tagmend.RejectAboveMax, tagmend.RejectionReason(rejections[0].Reason))
}

func TestLoadConfig_MalformedFailsFast(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("char_filter:\n  allowed_regex: \"[\"\n"), 0o644))

	_, err := tagmend.LoadConfig(path)
	require.Error(t, err)

	var cfgErr *tagmend.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "char_filter", cfgErr.Section)
}

func TestParseRecord(t *testing.T) {
	t.Parallel()

	record, err := tagmend.ParseRecord([]byte("Title: '505'\ntracknumber: 7\n"))
	require.NoError(t, err)
	assert.Equal(t, "505", record.Get("title").Text())
	assert.Equal(t, tagmend.Int(7), record.Get("tracknumber"))
}

func TestMatches(t *testing.T) {
	t.Parallel()

	assert.True(t, tagmend.Matches("Unknown Artist", "*unknown*"))
	assert.False(t, tagmend.Matches("Bob", "*unknown*"))
}

func TestCorrectMany(t *testing.T) {
	t.Parallel()

	cfg, err := tagmend.ParseConfig([]byte(testRules))
	require.NoError(t, err)

	records := make([]*tagmend.Record, 20)
	for i := range records {
		r := tagmend.NewRecord()
		r.Set("title", tagmend.String(fmt.Sprintf("  track %d  ", i)))
		records[i] = r
	}

	results, err := tagmend.CorrectMany(context.Background(), cfg, records...)
	require.NoError(t, err)
	require.Len(t, results, len(records))

	// Results come back in input order.
	for i, res := range results {
		want := fmt.Sprintf("track %d", i)
		assert.Equal(t, want, res.Record.Get("title").Text())
		assert.Len(t, res.Report, 1)
	}
}

func TestCorrectMany_NoRecords(t *testing.T) {
	t.Parallel()

	cfg, err := tagmend.ParseConfig(nil)
	require.NoError(t, err)

	results, err := tagmend.CorrectMany(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestCorrectMany_CancelledContext(t *testing.T) {
	t.Parallel()

	cfg, err := tagmend.ParseConfig(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	record := tagmend.NewRecord()
	_, err = tagmend.CorrectMany(ctx, cfg, record)
	assert.ErrorIs(t, err, context.Canceled)
}
