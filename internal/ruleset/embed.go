package ruleset

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kestrelrw/rewritetree/internal/rule"
)

//go:embed fixtures/*.yaml
var fixturesFS embed.FS

// LoadEmbeddedRules parses one of the fixture YAML files baked into the
// binary (PeanoAddFixture, BoolNotFixture, BoolAndFixture) and builds its
// rule.Rule list. Unlike LoadRulesFile, this works regardless of the
// process's working directory, the fixtures travel with the binary.
func LoadEmbeddedRules(name string) ([]rule.Rule, error) {
	data, err := fixturesFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("ruleset: embedded fixture %s: %w", name, err)
	}
	var spec RuleSetSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("ruleset: embedded fixture %s: %w", name, err)
	}
	return Load(&spec)
}
