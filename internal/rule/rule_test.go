package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelrw/rewritetree/internal/rule"
	"github.com/kestrelrw/rewritetree/internal/term"
)

func TestValidateAcceptsWellFormedRule(t *testing.T) {
	slot := 0
	r := rule.Rule{
		LHS: []term.Term{term.NewSymb("m", "Z"), &term.Patt{Slot: &slot, Name: "y"}},
		RHS: &term.SimpleMultiBinder{Slots: []string{"y"}, Body: &term.Var{Name: "y", Index: 0}},
		Vars: []rule.VarMeta{{Name: "y", Arity: 0}},
	}
	require.NoError(t, rule.Validate(r))
}

func TestValidateRejectsArityMismatch(t *testing.T) {
	r := rule.Rule{
		LHS:  []term.Term{term.NewSymb("m", "Z")},
		RHS:  &term.SimpleMultiBinder{Slots: []string{"x", "y"}, Body: term.NewSymb("m", "Z")},
		Vars: []rule.VarMeta{{Name: "x", Arity: 0}},
	}
	err := rule.Validate(r)
	assert.Error(t, err)
}

func TestValidateRejectsNilRHS(t *testing.T) {
	r := rule.Rule{LHS: []term.Term{term.NewSymb("m", "Z")}}
	assert.Error(t, rule.Validate(r))
}

func TestValidateRejectsOutOfRangeSlot(t *testing.T) {
	slot := 5
	r := rule.Rule{
		LHS:  []term.Term{&term.Patt{Slot: &slot, Name: "x"}},
		RHS:  &term.SimpleMultiBinder{Slots: []string{"x"}, Body: &term.Var{Name: "x", Index: 0}},
		Vars: []rule.VarMeta{{Name: "x", Arity: 0}},
	}
	assert.Error(t, rule.Validate(r))
}

func TestValidateRejectsNegativeArity(t *testing.T) {
	r := rule.Rule{
		RHS:  &term.SimpleMultiBinder{Slots: []string{"x"}, Body: &term.Var{Name: "x", Index: 0}},
		Vars: []rule.VarMeta{{Name: "x", Arity: -1}},
	}
	assert.Error(t, rule.Validate(r))
}
