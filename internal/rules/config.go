// Package rules holds the rule document model: parsing the declarative
// configuration into immutable typed rule tables, and the wildcard
// matcher exclusion rules are built on.
package rules

import (
	"regexp"

	"github.com/tagmend/tagmend/internal/types"
)

// ExcludeAction says what happens to a value that matches an exclusion
// pattern.
type ExcludeAction string

const (
	// ExcludeRemove deletes the field. This is the default.
	ExcludeRemove ExcludeAction = "remove"

	// ExcludeReplace substitutes the configured replacement value.
	// Replacements do not trigger the dependent-removal cascade.
	ExcludeReplace ExcludeAction = "replace"
)

// GlobalScope is the exclude_values scope whose patterns apply to every
// field.
const GlobalScope = "global"

// Reserved exclude_values keys that configure behavior rather than
// naming a scope.
const (
	actionKey      = "action"
	replaceWithKey = "replace_with"
)

// defaultReplaceWith is substituted for excluded values when action is
// "replace" and no replace_with is configured.
const defaultReplaceWith = "[EXCLUDED]"

// FormatRule is a per-field string normalization rule.
//
// When several flags are set they apply in a fixed order: strip first,
// then the case transform, then truncation. Uppercase wins over
// lowercase when both are set.
type FormatRule struct {
	Strip     bool `yaml:"strip"`
	Uppercase bool `yaml:"uppercase"`
	Lowercase bool `yaml:"lowercase"`
	MaxLength *int `yaml:"max_length"`
}

// FieldSpec is a per-field type/length/range constraint.
//
// Specs govern validation only, never formatting: a violated spec is
// reported, the value stays untouched. A field without a spec is never
// rejected.
type FieldSpec struct {
	// Type is "str" or "int". Empty defaults to "str".
	Type string `yaml:"type"`

	// MaxLength bounds the length in characters (str type).
	MaxLength *int `yaml:"max_length"`

	// Min and Max bound the value inclusively (int type).
	// An absent bound is unbounded on that side.
	Min *int64 `yaml:"min"`
	Max *int64 `yaml:"max"`
}

// IsInt reports whether the spec constrains the field to integers.
func (s FieldSpec) IsInt() bool {
	return s.Type == "int"
}

// CharFilterRule is the single global character allow-list.
type CharFilterRule struct {
	// AllowedRegex is checked against each individual character.
	AllowedRegex string `yaml:"allowed_regex"`

	// ReplaceNotAllowed is substituted for each disallowed character.
	// Empty means deletion.
	ReplaceNotAllowed string `yaml:"replace_not_allowed"`
}

// Config is the compiled, immutable rule set.
//
// A Config is built once by Parse or Load and is read-only afterwards,
// so it is safe to share across any number of concurrent correction
// runs. All field keys are canonicalized at load time.
type Config struct {
	globalExcludes []string
	fieldExcludes  map[string][]string
	excludeAction  ExcludeAction
	replaceWith    string

	dependents map[string][]string
	depOrder   []string

	formats map[string]FormatRule
	specs   map[string]FieldSpec

	allowed     *regexp.Regexp
	replacement string
}

// ExcludePatterns returns the patterns applying to field: the global
// patterns followed by the field-scoped ones.
func (c *Config) ExcludePatterns(field string) []string {
	scoped := c.fieldExcludes[types.CanonicalField(field)]
	if len(scoped) == 0 {
		return c.globalExcludes
	}
	out := make([]string, 0, len(c.globalExcludes)+len(scoped))
	out = append(out, c.globalExcludes...)
	out = append(out, scoped...)
	return out
}

// Excluded reports whether value matches any pattern applying to field.
func (c *Config) Excluded(field string, value string) bool {
	for _, pattern := range c.ExcludePatterns(field) {
		if Match(value, pattern) {
			return true
		}
	}
	return false
}

// ExcludeAction returns what happens to excluded values.
func (c *Config) ExcludeAction() ExcludeAction {
	return c.excludeAction
}

// ReplaceWith returns the substitute for excluded values under the
// replace action.
func (c *Config) ReplaceWith() string {
	return c.replaceWith
}

// Dependents returns the fields removed when primary is removed, in
// configured order. Nil when primary has no dependents.
func (c *Config) Dependents(primary string) []string {
	return c.dependents[types.CanonicalField(primary)]
}

// DependentPrimaries returns the primary field names of the
// dependent-removal table in document order.
func (c *Config) DependentPrimaries() []string {
	return c.depOrder
}

// FormatRule returns the format rule for field, if one is configured.
func (c *Config) FormatRule(field string) (FormatRule, bool) {
	rule, ok := c.formats[types.CanonicalField(field)]
	return rule, ok
}

// Spec returns the field spec for field, if one is configured.
func (c *Config) Spec(field string) (FieldSpec, bool) {
	spec, ok := c.specs[types.CanonicalField(field)]
	return spec, ok
}

// CharFilter returns the compiled per-character allow-list and the
// replacement string. The regexp is nil when no filter is configured.
func (c *Config) CharFilter() (*regexp.Regexp, string) {
	return c.allowed, c.replacement
}
