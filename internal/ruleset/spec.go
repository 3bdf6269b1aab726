// Package ruleset loads toy rewrite-rule sets from YAML fixture files and
// turns them into the rule.Rule values the decision-tree compiler consumes,
// for use by tests, the cmd/dtreec demo subcommand, and the interactive
// repl.
package ruleset

// TermSpec is the declarative YAML shape of one LHS or RHS term. Exactly
// one of Symb or Var should be set:
//   - Symb names a 0-or-more-arity constructor, applied to Args in order.
//   - Var names a pattern variable: on an LHS it becomes a term.Patt bound
//     to the slot its name is declared with in RuleSpec.Vars; on an RHS it
//     becomes the corresponding placeholder occurrence for
//     term.SimpleMultiBinder.Subst to fill in.
//
// This is a first-order subset: it cannot express an Abst (higher-order)
// pattern. See fixtures.go's HigherOrder for a rule set built directly in
// Go instead.
type TermSpec struct {
	Symb string     `yaml:"symb,omitempty"`
	Var  string     `yaml:"var,omitempty"`
	Args []TermSpec `yaml:"args,omitempty"`
}

// VarSpec declares one pattern variable a rule's LHS binds and its RHS may
// reference.
type VarSpec struct {
	Name  string `yaml:"name"`
	Arity int    `yaml:"arity"`
}

// RuleSpec is one rewrite rule: an ordered list of argument patterns (the
// head symbol itself is RuleSetSpec.Head and is not repeated here), the
// variables it binds, and its replacement term.
type RuleSpec struct {
	LHS []TermSpec `yaml:"lhs"`
	Vars []VarSpec `yaml:"vars"`
	RHS  TermSpec  `yaml:"rhs"`
}

// RuleSetSpec is a full YAML fixture: a module path used to qualify every
// Symb in the set, the head symbol name every rule shares, and the rules
// themselves.
type RuleSetSpec struct {
	Name       string     `yaml:"name"`
	ModulePath string     `yaml:"module"`
	Head       string     `yaml:"head"`
	Rules      []RuleSpec `yaml:"rules"`
}
