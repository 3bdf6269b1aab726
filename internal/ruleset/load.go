package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kestrelrw/rewritetree/internal/rule"
)

// LoadFile reads and parses a RuleSetSpec from a YAML file.
func LoadFile(path string) (*RuleSetSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ruleset: read %s: %w", path, err)
	}
	var spec RuleSetSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("ruleset: parse %s: %w", path, err)
	}
	if spec.Head == "" {
		return nil, fmt.Errorf("ruleset: %s: missing required field: head", path)
	}
	if spec.ModulePath == "" {
		return nil, fmt.Errorf("ruleset: %s: missing required field: module", path)
	}
	return &spec, nil
}

// Load builds the rule.Rule list a RuleSetSpec describes, validating each
// rule with rule.Validate before returning it.
func Load(spec *RuleSetSpec) ([]rule.Rule, error) {
	rules := make([]rule.Rule, 0, len(spec.Rules))
	for i, rs := range spec.Rules {
		r, err := buildRule(spec.ModulePath, rs)
		if err != nil {
			return nil, fmt.Errorf("ruleset: %s: rule %d: %w", spec.Name, i, err)
		}
		if err := rule.Validate(r); err != nil {
			return nil, fmt.Errorf("ruleset: %s: rule %d: %w", spec.Name, i, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// LoadRulesFile is the common-case helper: read a YAML file straight into a
// validated rule.Rule list.
func LoadRulesFile(path string) ([]rule.Rule, error) {
	spec, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(spec)
}
