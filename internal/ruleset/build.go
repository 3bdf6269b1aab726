package ruleset

import (
	"fmt"

	"github.com/kestrelrw/rewritetree/internal/rule"
	"github.com/kestrelrw/rewritetree/internal/term"
)

func buildRule(modulePath string, rs RuleSpec) (rule.Rule, error) {
	slots := make(map[string]int, len(rs.Vars))
	vars := make([]rule.VarMeta, len(rs.Vars))
	slotNames := make([]string, len(rs.Vars))
	for i, v := range rs.Vars {
		if _, dup := slots[v.Name]; dup {
			return rule.Rule{}, fmt.Errorf("variable %q declared twice", v.Name)
		}
		slots[v.Name] = i
		vars[i] = rule.VarMeta{Name: v.Name, Arity: v.Arity}
		slotNames[i] = v.Name
	}

	lhs := make([]term.Term, len(rs.LHS))
	for i, ts := range rs.LHS {
		t, err := buildLHSTerm(ts, modulePath, slots)
		if err != nil {
			return rule.Rule{}, err
		}
		lhs[i] = t
	}

	rhsBody, err := buildRHSTerm(rs.RHS, modulePath, slots)
	if err != nil {
		return rule.Rule{}, err
	}

	return rule.Rule{
		LHS:  lhs,
		RHS:  &term.SimpleMultiBinder{Slots: slotNames, Body: rhsBody},
		Vars: vars,
	}, nil
}

// buildLHSTerm turns a TermSpec into an LHS term.Term: a Var node becomes a
// term.Patt bound to its declared slot, a Symb node becomes a term.Symb
// applied (via nested term.Appl) to its built arguments.
func buildLHSTerm(ts TermSpec, modulePath string, slots map[string]int) (term.Term, error) {
	if ts.Var != "" {
		idx, ok := slots[ts.Var]
		if !ok {
			return nil, fmt.Errorf("pattern variable %q used without a vars declaration", ts.Var)
		}
		slot := idx
		return &term.Patt{Slot: &slot, Name: ts.Var}, nil
	}
	if ts.Symb == "" {
		return nil, fmt.Errorf("term node has neither symb nor var set")
	}
	var t term.Term = term.NewSymb(modulePath, ts.Symb)
	for _, a := range ts.Args {
		arg, err := buildLHSTerm(a, modulePath, slots)
		if err != nil {
			return nil, err
		}
		t = &term.Appl{Fn: t, Arg: arg}
	}
	return t, nil
}

// buildRHSTerm turns a TermSpec into an RHS term.Term: a Var node becomes
// the placeholder *term.Var occurrence term.SimpleMultiBinder.Subst expects
// (Index 0, Name matching the slot name), a Symb node is built the same way
// as on the LHS.
func buildRHSTerm(ts TermSpec, modulePath string, slots map[string]int) (term.Term, error) {
	if ts.Var != "" {
		if _, ok := slots[ts.Var]; !ok {
			return nil, fmt.Errorf("rhs references undeclared variable %q", ts.Var)
		}
		return &term.Var{Name: ts.Var, Index: 0}, nil
	}
	if ts.Symb == "" {
		return nil, fmt.Errorf("term node has neither symb nor var set")
	}
	var t term.Term = term.NewSymb(modulePath, ts.Symb)
	for _, a := range ts.Args {
		arg, err := buildRHSTerm(a, modulePath, slots)
		if err != nil {
			return nil, err
		}
		t = &term.Appl{Fn: t, Arg: arg}
	}
	return t, nil
}
