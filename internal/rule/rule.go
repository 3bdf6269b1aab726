// Package rule defines the input type the decision-tree compiler consumes:
// one rewrite rule for a fixed head symbol.
package rule

import (
	"fmt"

	"github.com/kestrelrw/rewritetree/internal/term"
)

// VarMeta records the name and arity of one pattern variable bound by a
// rule's RHS binder.
type VarMeta struct {
	Name  string
	Arity int
}

// Rule is a single rewrite rule: a left-hand side (the head symbol's own
// position is implicit; LHS holds the argument terms), a right-hand side
// binder whose arity equals len(Vars), and per-variable metadata.
type Rule struct {
	LHS  []term.Term
	RHS  term.MultiBinder
	Vars []VarMeta
}

// Validate runs a pre-compilation sanity pass over a rule: this is a caller
// mistake (a malformed rule set), distinct from the internal invariant
// violations the compiler itself guards with rterr, so it returns an
// ordinary error rather than panicking.
func Validate(r Rule) error {
	if r.RHS == nil {
		return fmt.Errorf("rule: RHS binder is nil")
	}
	if got, want := r.RHS.Arity(), len(r.Vars); got != want {
		return fmt.Errorf("rule: RHS arity %d does not match %d declared pattern variables", got, want)
	}
	for i, v := range r.Vars {
		if v.Name == "" {
			return fmt.Errorf("rule: variable %d has no name", i)
		}
		if v.Arity < 0 {
			return fmt.Errorf("rule: variable %q has negative arity %d", v.Name, v.Arity)
		}
	}
	for _, t := range r.LHS {
		if err := validateTerm(t, len(r.Vars)); err != nil {
			return err
		}
	}
	return nil
}

func validateTerm(t term.Term, nVars int) error {
	switch x := t.(type) {
	case *term.Patt:
		if x.Slot != nil && (*x.Slot < 0 || *x.Slot >= nVars) {
			return fmt.Errorf("rule: pattern variable %q references out-of-range slot %d", x.Name, *x.Slot)
		}
		for _, e := range x.Env {
			if err := validateTerm(e, nVars); err != nil {
				return err
			}
		}
		return nil
	case *term.Appl:
		if err := validateTerm(x.Fn, nVars); err != nil {
			return err
		}
		return validateTerm(x.Arg, nVars)
	case *term.Meta:
		for _, a := range x.Args {
			if err := validateTerm(a, nVars); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}
