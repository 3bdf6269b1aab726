package ruleset

import (
	"github.com/kestrelrw/rewritetree/internal/rule"
	"github.com/kestrelrw/rewritetree/internal/term"
)

// Named fixture paths, relative to this package's directory: LoadEmbeddedRules
// takes them as they are (the demo subcommand and most tests), and
// LoadRulesFile accepts them when run from this directory.
const (
	PeanoAddFixture = "fixtures/peano.yaml"
	BoolNotFixture  = "fixtures/bool.yaml"
	BoolAndFixture  = "fixtures/and.yaml"
)

// HigherOrder returns a hand-built rule set for a single head symbol
// "applyConst": applyConst(λx. b) = b, where b is a higher-order pattern
// variable of arity 1 depending on the bound x. The declarative YAML
// TermSpec subset (spec.go) has no Abst node, so this one rule is built
// directly against the term package instead, for cases outside what a YAML
// table could express.
//
// This exercises the Fetch path (spec.md §4.5): the LHS column is
// immediately exhausted (Abst is not a tree constructor), so compilation
// produces a Fetch chain that unwraps the Abst, instantiates its body with
// a fresh variable, and stores that instantiated body into the pattern
// variable's slot.
func HigherOrder() []rule.Rule {
	modulePath := "fixtures.hof"
	slot := 0
	lhs := []term.Term{
		&term.Abst{
			Type: term.NewSymb(modulePath, "Nat"),
			Body: &term.SimpleBinder{
				Placeholder: "x",
				Body:        &term.Patt{Slot: &slot, Name: "b", Env: []term.Term{&term.Var{Name: "x", Index: 0}}},
			},
		},
	}
	rhs := &term.SimpleMultiBinder{
		Slots: []string{"b"},
		Body:  &term.Var{Name: "b", Index: 0},
	}
	return []rule.Rule{
		{LHS: lhs, RHS: rhs, Vars: []rule.VarMeta{{Name: "b", Arity: 1}}},
	}
}
