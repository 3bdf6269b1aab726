package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelrw/rewritetree/internal/term"
)

func sym(name string) *term.Symb { return term.NewSymb("pkg.mod", name) }

func TestGetArgsUnwindsApplicationSpine(t *testing.T) {
	f := sym("f")
	a, b := sym("a"), sym("b")
	t1 := &term.Appl{Fn: &term.Appl{Fn: f, Arg: a}, Arg: b}

	head, args := term.GetArgs(t1)
	assert.Same(t, f, head)
	require.Len(t, args, 2)
	assert.Same(t, term.Term(a), args[0])
	assert.Same(t, term.Term(b), args[1])
}

func TestGetArgsOnBareTermReturnsNoArgs(t *testing.T) {
	f := sym("f")
	head, args := term.GetArgs(f)
	assert.Same(t, f, head)
	assert.Empty(t, args)
}

func TestIsTreeConstructorClassifiesHeads(t *testing.T) {
	assert.True(t, term.IsTreeConstructor(sym("f")))
	assert.True(t, term.IsTreeConstructor(&term.Var{Name: "x", Index: 1}))
	assert.False(t, term.IsTreeConstructor(&term.Patt{Slot: nil, Name: "X"}))

	v := term.Var{Name: "x", Index: 1}
	abst := &term.Abst{Type: sym("Nat"), Body: &term.SimpleBinder{Placeholder: "x", Body: &v}}
	assert.False(t, term.IsTreeConstructor(abst))
}

func TestIsTreeConstructorPanicsOnIllegalHead(t *testing.T) {
	assert.Panics(t, func() {
		term.IsTreeConstructor(&term.TypeT{})
	})
}

func TestKeyOfDistinguishesArityAndHeadKind(t *testing.T) {
	f := sym("f")
	applied := &term.Appl{Fn: f, Arg: sym("a")}

	k0 := term.KeyOf(f)
	k1 := term.KeyOf(applied)
	assert.NotEqual(t, k0, k1)
	assert.Equal(t, 0, k0.Arity)
	assert.Equal(t, 1, k1.Arity)
	assert.False(t, k0.IsVar)

	vk := term.KeyOf(&term.Var{Name: "x", Index: 7})
	assert.True(t, vk.IsVar)
	assert.Equal(t, 7, vk.VarIndex)
}

func TestKeyOfPanicsOnNonConstructorHead(t *testing.T) {
	assert.Panics(t, func() {
		term.KeyOf(&term.Patt{Name: "X"})
	})
}

func TestSameSymbAndSameVar(t *testing.T) {
	a := term.NewSymb("pkg.mod", "f")
	b := term.NewSymb("pkg.mod", "f")
	c := term.NewSymb("pkg.mod", "g")
	assert.True(t, term.SameSymb(a, b))
	assert.False(t, term.SameSymb(a, c))

	v1 := &term.Var{Name: "x", Index: 1}
	v2 := &term.Var{Name: "y", Index: 1}
	v3 := &term.Var{Name: "x", Index: 2}
	assert.True(t, term.SameVar(v1, v2))
	assert.False(t, term.SameVar(v1, v3))
}
