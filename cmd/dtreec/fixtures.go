package main

import (
	"fmt"

	"github.com/kestrelrw/rewritetree/internal/dtree"
	"github.com/kestrelrw/rewritetree/internal/rule"
	"github.com/kestrelrw/rewritetree/internal/ruleset"
)

// namedFixtures maps the --fixture flag's accepted values to how to build
// that rule set. "hof" is built directly in Go (see ruleset.HigherOrder);
// the rest load an embedded YAML file.
var namedFixtures = map[string]func() ([]rule.Rule, error){
	"peano": func() ([]rule.Rule, error) { return ruleset.LoadEmbeddedRules(ruleset.PeanoAddFixture) },
	"not":   func() ([]rule.Rule, error) { return ruleset.LoadEmbeddedRules(ruleset.BoolNotFixture) },
	"and":   func() ([]rule.Rule, error) { return ruleset.LoadEmbeddedRules(ruleset.BoolAndFixture) },
	"hof":   func() ([]rule.Rule, error) { return ruleset.HigherOrder(), nil },
}

func loadFixture(name string) ([]rule.Rule, error) {
	build, ok := namedFixtures[name]
	if !ok {
		return nil, fmt.Errorf("unknown fixture %q (want one of peano, not, and, hof)", name)
	}
	return build()
}

func compileFixture(name string) (dtree.Tree, error) {
	rules, err := loadFixture(name)
	if err != nil {
		return nil, err
	}
	return dtree.Compile(rules), nil
}
