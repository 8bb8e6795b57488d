package tagmend

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tagmend/tagmend/internal/engine"
)

// Correct runs the correction pipeline over a record.
//
// The pipeline is applied in a fixed order for the whole record:
// exclusion removal, dependent-field cascade, formatting, character
// filtering, validation. The input record is never mutated; the
// corrected record is returned alongside an ordered report of every
// change and violation.
//
// Correct is deterministic: the same record and config always produce
// the same output and report. It is also convergent - correcting an
// already-corrected record yields an empty report (rejected entries
// aside, since validation reports without enforcing).
//
// Example:
//
//	corrected, report := tagmend.Correct(record, cfg)
//	for _, rej := range report.Rejections() {
//		fmt.Printf("cannot fix %s: %s\n", rej.Field, rej.Reason)
//	}
func Correct(record *Record, cfg *Config) (*Record, CorrectionReport) {
	return engine.Correct(record, cfg)
}

// Result pairs one record's correction output with its report.
type Result struct {
	Record *Record
	Report CorrectionReport
}

// CorrectMany corrects multiple records concurrently.
//
// Records are processed in parallel using up to runtime.NumCPU()
// goroutines; each correction is pure, so no coordination is needed.
// Results are returned in input order. The only error case is context
// cancellation.
//
// Example:
//
//	results, err := tagmend.CorrectMany(ctx, cfg, records...)
//	if err != nil {
//		return err
//	}
//	for _, res := range results {
//		fmt.Println(res.Report)
//	}
func CorrectMany(ctx context.Context, cfg *Config, records ...*Record) ([]Result, error) {
	if len(records) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]Result, len(records))

	for i, record := range records {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			corrected, report := Correct(record, cfg)
			results[i] = Result{Record: corrected, Report: report}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
