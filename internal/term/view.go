package term

import "github.com/kestrelrw/rewritetree/internal/rterr"

// GetArgs splits t into its head and, in application order, its arguments:
// GetArgs(f a b) = (f, [a, b]).
func GetArgs(t Term) (Term, []Term) {
	var args []Term
	for {
		a, ok := t.(*Appl)
		if !ok {
			reverse(args)
			return t, args
		}
		args = append(args, a.Arg)
		t = a.Fn
	}
}

func reverse(ts []Term) {
	for i, j := 0, len(ts)-1; i < j; i, j = i+1, j-1 {
		ts[i], ts[j] = ts[j], ts[i]
	}
}

// IsTreeConstructor reports whether t's head (after stripping Appl) is a Var
// or Symb, the two variants a decision tree can switch on. Abst, Meta, and
// Patt heads are non-constructor (they go to the default branch). Type,
// Kind, LLet, Wild, TRef, and TEnv are not permitted in a rule LHS at all;
// encountering one of them here is a programmer error.
func IsTreeConstructor(t Term) bool {
	head, _ := GetArgs(t)
	switch head.(type) {
	case *Var, *Symb:
		return true
	case *Abst, *Meta, *Patt:
		return false
	default:
		rterr.Raise(rterr.DTC001, "term not permitted on a rule left-hand side", map[string]any{
			"head": head.String(),
			"kind": head.Kind().String(),
		})
		panic("unreachable")
	}
}

// KeyOf computes the constructor key of t. t's head must be a Symb or a
// Var, the two tree-constructor heads IsTreeConstructor recognizes (see
// its doc comment and DESIGN.md for why Var-headed cells, not just the
// common Symb case, need a working key here).
func KeyOf(t Term) ConstructorKey {
	head, args := GetArgs(t)
	switch h := head.(type) {
	case *Symb:
		return ConstructorKey{ModulePath: h.ModulePath, SymbolName: h.Name, Arity: len(args)}
	case *Var:
		return ConstructorKey{IsVar: true, VarIndex: h.Index, VarName: h.Name, Arity: len(args)}
	default:
		rterr.Raise(rterr.DTC005, "key_of requires a Symb or Var head", map[string]any{
			"head": head.String(),
			"kind": head.Kind().String(),
		})
		panic("unreachable")
	}
}
