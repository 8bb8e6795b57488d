// Package tagmend validates and corrects textual metadata tags on MP3
// audio files against a declarative rule set.
//
// tagmend takes a raw field -> value metadata record plus a rule document
// and produces a cleaned, policy-compliant record. Rules cover wildcard
// exclusion patterns, cross-field dependent deletion, string formatting
// (trim/case/truncate), type and range validation, and a per-character
// allow-list.
//
// # Quick Start
//
// Load a rule document and correct a record:
//
//	cfg, err := tagmend.LoadConfig("rules.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	record := tagmend.NewRecord()
//	record.Set("artist", tagmend.String("Unknown Artist"))
//	record.Set("title", tagmend.String("  505  "))
//
//	corrected, report := tagmend.Correct(record, cfg)
//	for _, change := range report {
//		fmt.Println(change)
//	}
//
// # Pipeline
//
// Correct applies five passes in a fixed order over the whole record:
// exclusion removal, dependent-field cascade, formatting, character
// filtering, validation. The input record is never mutated; corrections
// return a fresh record plus an ordered CorrectionReport.
//
// # Philosophy
//
// tagmend prefers reporting over dropping data it cannot confidently
// fix. A value that fails validation is left in place and surfaced as a
// rejected entry in the report, so the caller decides whether to block a
// save. Only explicit exclusion rules remove data. A malformed rule
// document, by contrast, fails fast at load time with a ConfigError,
// before any record is touched.
//
// # Tag I/O
//
// Reading and writing ID3 frames is a codec concern, behind the Codec
// interface: a mapping-like view over one file's tag fields plus the
// cover-art attachment. Manager ties a codec to a rule set, applying
// corrections to the file's fields and passing artwork operations
// through untouched (art is not a field and never enters the pipeline).
//
// # Concurrency
//
// A Config is immutable after loading and safe to share. Each correction
// is pure computation over in-memory data, so records can be corrected
// in parallel; CorrectMany does exactly that.
package tagmend
