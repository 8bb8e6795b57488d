package tagmend

import (
	"github.com/tagmend/tagmend/internal/rules"
)

// Config is an alias to rules.Config.
// Re-exported from internal/rules to keep the public API at the root.
type Config = rules.Config

// FormatRule is an alias to rules.FormatRule.
// Re-exported from internal/rules to keep the public API at the root.
type FormatRule = rules.FormatRule

// FieldSpec is an alias to rules.FieldSpec.
// Re-exported from internal/rules to keep the public API at the root.
type FieldSpec = rules.FieldSpec

// LoadConfig reads and compiles a rule document from a file.
//
// The document is YAML; JSON documents parse unchanged since YAML is a
// JSON superset. A malformed document returns a *ConfigError; an empty
// document yields a Config under which records pass through untouched.
//
// The returned Config is immutable and safe to share across concurrent
// corrections.
func LoadConfig(path string) (*Config, error) {
	return rules.Load(path)
}

// ParseConfig compiles an in-memory rule document. See LoadConfig.
func ParseConfig(data []byte) (*Config, error) {
	return rules.Parse(data)
}

// Matches reports whether value matches a wildcard exclusion pattern.
//
// '*' matches any run of characters, everything else matches literally,
// matching is case-insensitive and anchored at both ends.
func Matches(value, pattern string) bool {
	return rules.Match(value, pattern)
}
