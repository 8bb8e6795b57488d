// Package engine implements the rule-driven correction pipeline: the
// component that takes a metadata record plus a compiled rule set and
// produces a policy-compliant record together with a report of every
// change made and violation found.
package engine

import (
	"github.com/tagmend/tagmend/internal/rules"
	"github.com/tagmend/tagmend/internal/types"
)

// Correct runs the correction pipeline over a record.
//
// The pipeline applies five passes in a fixed order, each over the whole
// record before the next starts:
//
//  1. Exclusion: fields whose value matches an exclusion pattern are
//     removed (or replaced, under the replace action).
//  2. Dependent cascade: fields whose primary was removed in pass 1, or
//     was already absent before the call, are removed. The cascade is a
//     single pass: removals it produces never trigger further lookups,
//     so a miswired cyclic configuration cannot loop.
//  3. Formatting: per-field format rules.
//  4. Character filtering: the global allow-list.
//  5. Validation: field specs. Violations are reported, the value stays.
//
// The input record is never mutated; the corrected record is a fresh
// copy. Fields are processed in the record's own insertion order and the
// cascade in the rule table's document order, so identical inputs always
// yield identical output and report.
func Correct(record *types.Record, cfg *rules.Config) (*types.Record, types.Report) {
	out := record.Clone()
	var report types.Report

	// Pass 1: exclusion.
	removed := make(map[string]bool)
	for _, field := range out.Fields() {
		v := out.Get(field)
		if v.IsAbsent() || !cfg.Excluded(field, v.String()) {
			continue
		}
		if cfg.ExcludeAction() == rules.ExcludeReplace {
			substitute := types.StringValue(cfg.ReplaceWith())
			if !substitute.Equal(v) {
				out.Set(field, substitute)
				report = append(report, types.Change{
					Field:  field,
					Action: types.ActionReplaced,
					Before: v,
					After:  substitute,
					Reason: types.ReasonExcluded,
				})
			}
			continue
		}
		out.Delete(field)
		removed[field] = true
		report = append(report, types.Change{
			Field:  field,
			Action: types.ActionRemoved,
			Before: v,
			Reason: types.ReasonExcluded,
		})
	}

	// Pass 2: dependent cascade. A primary triggers when pass 1 removed
	// it or when it was already absent before this call.
	for _, primary := range cfg.DependentPrimaries() {
		if !removed[primary] && record.Has(primary) {
			continue
		}
		for _, dep := range cfg.Dependents(primary) {
			v := out.Get(dep)
			if v.IsAbsent() {
				continue
			}
			out.Delete(dep)
			report = append(report, types.Change{
				Field:  dep,
				Action: types.ActionRemoved,
				Before: v,
				Reason: types.ReasonDependent,
			})
		}
	}

	// Pass 3: formatting.
	for _, field := range out.Fields() {
		v := out.Get(field)
		if v.IsAbsent() {
			continue
		}
		rule, ok := cfg.FormatRule(field)
		if !ok {
			continue
		}
		if formatted := Format(v, rule); !formatted.Equal(v) {
			out.Set(field, formatted)
			report = append(report, types.Change{
				Field:  field,
				Action: types.ActionFormatted,
				Before: v,
				After:  formatted,
				Reason: types.ReasonFormatRule,
			})
		}
	}

	// Pass 4: character filtering.
	allowed, replacement := cfg.CharFilter()
	if allowed != nil {
		for _, field := range out.Fields() {
			v := out.Get(field)
			if v.IsAbsent() {
				continue
			}
			if filtered := FilterChars(v, allowed, replacement); !filtered.Equal(v) {
				out.Set(field, filtered)
				report = append(report, types.Change{
					Field:  field,
					Action: types.ActionFiltered,
					Before: v,
					After:  filtered,
					Reason: types.ReasonCharFilter,
				})
			}
		}
	}

	// Pass 5: validation. Rejections report, they never remove.
	for _, field := range out.Fields() {
		v := out.Get(field)
		if v.IsAbsent() {
			continue
		}
		spec, ok := cfg.Spec(field)
		if !ok {
			continue
		}
		if reason, valid := Validate(v, spec); !valid {
			report = append(report, types.Change{
				Field:  field,
				Action: types.ActionRejected,
				Before: v,
				After:  v,
				Reason: string(reason),
			})
		}
	}

	return out, report
}
