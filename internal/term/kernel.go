package term

// Binder is a single-variable binder, as used by Abst, Prod, and LLet
// bodies. Implementers may use de Bruijn indices, locally nameless
// representations, or explicit capture-avoiding substitution, the core
// only ever calls Unbind.
type Binder interface {
	// Unbind instantiates the bound variable with v and returns the body.
	Unbind(v *Var) Term
}

// MultiBinder is the RHS binder of a Rule: a binder over Arity() variables,
// one per pattern variable used on the rule's LHS.
type MultiBinder interface {
	Arity() int
	// Subst instantiates all bound slots at once, in slot order, and
	// returns the resulting term. len(args) must equal Arity().
	Subst(args []Term) Term
	// IsClosed reports whether the RHS, with all slots considered bound,
	// has no other free variables.
	IsClosed() bool
}

// Context is an opaque unification/typing context threaded through kernel
// calls that need one. It carries no state the compiler inspects.
type Context struct{}

// Kernel bundles the term-kernel operations the overall system depends on.
// Compilation itself only uses GetArgs, Fresh, and IsClosed; Eq and Unfold
// are listed because the reduction engine that consumes a compiled tree
// needs them, and a single Kernel value is passed through both phases in a
// typical embedding.
type Kernel interface {
	// Eq tests α-equivalence under ctx. Consumed by the reduction engine,
	// not by the compiler.
	Eq(ctx Context, t, u Term) bool
	// Unfold performs one step of head unfolding. Consumed by the
	// reduction engine, not by the compiler.
	Unfold(t Term) Term
	// GetArgs splits a term into head and arguments.
	GetArgs(t Term) (Term, []Term)
	// Fresh produces a variable guaranteed distinct from every variable
	// produced so far by this Kernel value.
	Fresh(name string) *Var
	// IsClosed reports whether every free Var in t is contained in
	// allowed. Used by clause-matrix specialization to decide whether a
	// pattern binding against a Patt's environment is legal.
	IsClosed(t Term, allowed []*Var) bool
}
