package rules

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/tagmend/tagmend/internal/types"
)

// document is the raw rule document shape.
//
// Unknown top-level keys are ignored for forward compatibility; absent
// sections default to empty, producing a no-op rule set. exclude_values
// and dependent_removals are kept as raw nodes because their key order
// is significant and exclude_values mixes scope lists with the reserved
// action/replace_with scalars.
type document struct {
	ExcludeValues     yaml.Node             `yaml:"exclude_values"`
	DependentRemovals yaml.Node             `yaml:"dependent_removals"`
	FormatRules       map[string]FormatRule `yaml:"format_rules"`
	FieldsSpec        map[string]FieldSpec  `yaml:"fields_spec"`
	CharFilter        *CharFilterRule       `yaml:"char_filter"`
}

// Load reads and compiles a rule document from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return Parse(data)
}

// Parse compiles a rule document.
//
// The document is YAML; since YAML is a superset of JSON, JSON rule
// files parse unchanged. Malformed shapes return a *types.ConfigError.
// An empty document compiles to a rule set under which every record
// passes through untouched.
func Parse(data []byte) (*Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &types.ConfigError{Section: "document", Reason: "not a valid rule document", Err: err}
	}

	cfg := &Config{
		excludeAction: ExcludeRemove,
		replaceWith:   defaultReplaceWith,
		fieldExcludes: make(map[string][]string),
		dependents:    make(map[string][]string),
		formats:       make(map[string]FormatRule),
		specs:         make(map[string]FieldSpec),
	}

	if err := compileExcludes(&doc.ExcludeValues, cfg); err != nil {
		return nil, err
	}
	if err := compileDependents(&doc.DependentRemovals, cfg); err != nil {
		return nil, err
	}
	if err := compileFormats(doc.FormatRules, cfg); err != nil {
		return nil, err
	}
	if err := compileSpecs(doc.FieldsSpec, cfg); err != nil {
		return nil, err
	}
	if err := compileCharFilter(doc.CharFilter, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// compileExcludes walks the exclude_values mapping node. Scope keys map
// to pattern lists; the reserved action/replace_with keys are scalars.
func compileExcludes(node *yaml.Node, cfg *Config) error {
	if node.IsZero() {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return &types.ConfigError{Section: "exclude_values", Reason: "must be a mapping of scope to pattern list"}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		switch key {
		case actionKey:
			var action string
			if err := val.Decode(&action); err != nil {
				return &types.ConfigError{Section: "exclude_values", Field: actionKey, Reason: "must be a string", Err: err}
			}
			switch ExcludeAction(action) {
			case ExcludeRemove, ExcludeReplace:
				cfg.excludeAction = ExcludeAction(action)
			default:
				return &types.ConfigError{Section: "exclude_values", Field: actionKey,
					Reason: fmt.Sprintf("must be %q or %q, got %q", ExcludeRemove, ExcludeReplace, action)}
			}
		case replaceWithKey:
			if err := val.Decode(&cfg.replaceWith); err != nil {
				return &types.ConfigError{Section: "exclude_values", Field: replaceWithKey, Reason: "must be a string", Err: err}
			}
		default:
			var patterns []string
			if err := val.Decode(&patterns); err != nil {
				return &types.ConfigError{Section: "exclude_values", Field: key, Reason: "must be a list of patterns", Err: err}
			}
			if key == GlobalScope {
				cfg.globalExcludes = patterns
			} else {
				cfg.fieldExcludes[types.CanonicalField(key)] = patterns
			}
		}
	}
	return nil
}

// compileDependents walks the dependent_removals mapping node, keeping
// the primaries in document order so cascade reports are deterministic.
func compileDependents(node *yaml.Node, cfg *Config) error {
	if node.IsZero() {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return &types.ConfigError{Section: "dependent_removals", Reason: "must be a mapping of field to field list"}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		primary := types.CanonicalField(node.Content[i].Value)

		var deps []string
		if err := node.Content[i+1].Decode(&deps); err != nil {
			return &types.ConfigError{Section: "dependent_removals", Field: primary, Reason: "must be a list of field names", Err: err}
		}

		canonical := make([]string, 0, len(deps))
		for _, dep := range deps {
			dep = types.CanonicalField(dep)
			if dep == primary {
				return &types.ConfigError{Section: "dependent_removals", Field: primary, Reason: "field cannot depend on itself"}
			}
			canonical = append(canonical, dep)
		}

		if _, seen := cfg.dependents[primary]; !seen {
			cfg.depOrder = append(cfg.depOrder, primary)
		}
		cfg.dependents[primary] = canonical
	}
	return nil
}

func compileFormats(raw map[string]FormatRule, cfg *Config) error {
	for field, rule := range raw {
		if rule.MaxLength != nil && *rule.MaxLength < 0 {
			return &types.ConfigError{Section: "format_rules", Field: field, Reason: "max_length cannot be negative"}
		}
		// uppercase+lowercase both set is not an error: uppercase wins.
		cfg.formats[types.CanonicalField(field)] = rule
	}
	return nil
}

func compileSpecs(raw map[string]FieldSpec, cfg *Config) error {
	for field, spec := range raw {
		switch spec.Type {
		case "":
			spec.Type = "str"
		case "str", "int":
		default:
			return &types.ConfigError{Section: "fields_spec", Field: field,
				Reason: fmt.Sprintf(`type must be "str" or "int", got %q`, spec.Type)}
		}
		if spec.MaxLength != nil && *spec.MaxLength < 0 {
			return &types.ConfigError{Section: "fields_spec", Field: field, Reason: "max_length cannot be negative"}
		}
		if spec.Min != nil && spec.Max != nil && *spec.Min > *spec.Max {
			return &types.ConfigError{Section: "fields_spec", Field: field, Reason: "min cannot exceed max"}
		}
		cfg.specs[types.CanonicalField(field)] = spec
	}
	return nil
}

func compileCharFilter(rule *CharFilterRule, cfg *Config) error {
	if rule == nil || rule.AllowedRegex == "" {
		return nil
	}
	re, err := regexp.Compile(rule.AllowedRegex)
	if err != nil {
		return &types.ConfigError{Section: "char_filter", Field: "allowed_regex", Reason: "does not compile", Err: err}
	}
	cfg.allowed = re
	cfg.replacement = rule.ReplaceNotAllowed
	return nil
}
