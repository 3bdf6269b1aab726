package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelrw/rewritetree/internal/term"
)

func TestFreshProducesDistinctVariables(t *testing.T) {
	k := term.NewSimpleKernel()
	a := k.Fresh("x")
	b := k.Fresh("x")
	assert.False(t, term.SameVar(a, b))
}

func TestIsClosedRespectsAllowedSet(t *testing.T) {
	k := term.NewSimpleKernel()
	v := k.Fresh("x")
	assert.True(t, k.IsClosed(v, []*term.Var{v}))
	assert.False(t, k.IsClosed(v, nil))
	assert.True(t, k.IsClosed(sym("Z"), nil))
}

func TestIsClosedDescendsThroughAbstWithFreshBinder(t *testing.T) {
	k := term.NewSimpleKernel()
	abst := &term.Abst{
		Type: sym("Nat"),
		Body: &term.SimpleBinder{Placeholder: "x", Body: &term.Var{Name: "x", Index: 0}},
	}
	assert.True(t, k.IsClosed(abst, nil))
}

func TestEqSyntacticUpToAlphaRenaming(t *testing.T) {
	k := term.NewSimpleKernel()
	a := &term.Abst{Type: sym("Nat"), Body: &term.SimpleBinder{Placeholder: "a", Body: &term.Var{Name: "a", Index: 0}}}
	b := &term.Abst{Type: sym("Nat"), Body: &term.SimpleBinder{Placeholder: "b", Body: &term.Var{Name: "b", Index: 0}}}
	assert.True(t, k.Eq(term.Context{}, a, b))
}

func TestSimpleMultiBinderSubstSubstitutesInSlotOrder(t *testing.T) {
	b := &term.SimpleMultiBinder{
		Slots: []string{"x", "y"},
		Body: &term.Appl{
			Fn:  &term.Var{Name: "x", Index: 0},
			Arg: &term.Var{Name: "y", Index: 0},
		},
	}
	result := b.Subst([]term.Term{sym("a"), sym("b")})
	assert.Equal(t, "(pkg.mod.a pkg.mod.b)", result.String())
}

func TestSimpleMultiBinderSubstPanicsOnArityMismatch(t *testing.T) {
	b := &term.SimpleMultiBinder{Slots: []string{"x"}, Body: &term.Var{Name: "x", Index: 0}}
	assert.Panics(t, func() { b.Subst(nil) })
}
