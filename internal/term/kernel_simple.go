package term

import "sync/atomic"

// SimpleKernel is a minimal, concrete Kernel sufficient to exercise and
// test the decision-tree compiler. The production term kernel (unification,
// real α-equivalence, reduction) is an explicit collaborator this module
// never implements; SimpleKernel exists so the compiler's test suite and
// the cmd/dtreec demo tool have something real to compile and walk against.
type SimpleKernel struct {
	counter int64
}

// NewSimpleKernel returns a fresh SimpleKernel with its own variable
// counter starting at 0; variables minted by two different SimpleKernel
// values can share an index.
func NewSimpleKernel() *SimpleKernel { return &SimpleKernel{} }

// Fresh mints a variable whose index is unique among those minted by k.
func (k *SimpleKernel) Fresh(name string) *Var {
	idx := atomic.AddInt64(&k.counter, 1)
	return &Var{Name: name, Index: int(idx)}
}

// GetArgs delegates to the package-level structural helper.
func (k *SimpleKernel) GetArgs(t Term) (Term, []Term) { return GetArgs(t) }

// Eq is syntactic equality up to bound-variable renaming via unbinding one
// level of binder at a time; it is adequate for the fixtures and demos this
// module ships, not a substitute for a real kernel's unifier.
func (k *SimpleKernel) Eq(ctx Context, t, u Term) bool {
	switch a := t.(type) {
	case *Var:
		b, ok := u.(*Var)
		return ok && SameVar(a, b)
	case *Symb:
		b, ok := u.(*Symb)
		return ok && SameSymb(a, b)
	case *TypeT:
		_, ok := u.(*TypeT)
		return ok
	case *KindT:
		_, ok := u.(*KindT)
		return ok
	case *TEnvT:
		_, ok := u.(*TEnvT)
		return ok
	case *TRefT:
		_, ok := u.(*TRefT)
		return ok
	case *Wild:
		_, ok := u.(*Wild)
		return ok
	case *Appl:
		b, ok := u.(*Appl)
		return ok && k.Eq(ctx, a.Fn, b.Fn) && k.Eq(ctx, a.Arg, b.Arg)
	case *Abst:
		b, ok := u.(*Abst)
		if !ok || !k.Eq(ctx, a.Type, b.Type) {
			return false
		}
		v := k.Fresh("x")
		return k.Eq(ctx, a.Body.Unbind(v), b.Body.Unbind(v))
	case *Prod:
		b, ok := u.(*Prod)
		if !ok || !k.Eq(ctx, a.Type, b.Type) {
			return false
		}
		v := k.Fresh("x")
		return k.Eq(ctx, a.Body.Unbind(v), b.Body.Unbind(v))
	case *LLet:
		b, ok := u.(*LLet)
		if !ok || !k.Eq(ctx, a.Type, b.Type) || !k.Eq(ctx, a.Def, b.Def) {
			return false
		}
		v := k.Fresh("x")
		return k.Eq(ctx, a.Body.Unbind(v), b.Body.Unbind(v))
	case *Meta:
		b, ok := u.(*Meta)
		if !ok || a.MVar.ID != b.MVar.ID || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !k.Eq(ctx, a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case *Patt:
		b, ok := u.(*Patt)
		return ok && a.Name == b.Name
	default:
		return false
	}
}

// Unfold is the identity: SimpleKernel has no reducible definitions of its
// own, so there is nothing to unfold one step through.
func (k *SimpleKernel) Unfold(t Term) Term { return t }

// IsClosed reports whether every free Var in t occurs (by index) in
// allowed, descending through Appl/Meta/Patt structurally and through
// binders by unbinding with a fresh variable added to the allowed set.
func (k *SimpleKernel) IsClosed(t Term, allowed []*Var) bool {
	switch x := t.(type) {
	case *Var:
		for _, v := range allowed {
			if SameVar(x, v) {
				return true
			}
		}
		return false
	case *Symb, *TypeT, *KindT, *TEnvT, *TRefT, *Wild:
		return true
	case *Appl:
		return k.IsClosed(x.Fn, allowed) && k.IsClosed(x.Arg, allowed)
	case *Abst:
		v := k.Fresh("x")
		return k.IsClosed(x.Type, allowed) && k.IsClosed(x.Body.Unbind(v), append(allowed, v))
	case *Prod:
		v := k.Fresh("x")
		return k.IsClosed(x.Type, allowed) && k.IsClosed(x.Body.Unbind(v), append(allowed, v))
	case *LLet:
		v := k.Fresh("x")
		return k.IsClosed(x.Type, allowed) && k.IsClosed(x.Def, allowed) &&
			k.IsClosed(x.Body.Unbind(v), append(allowed, v))
	case *Meta:
		for _, a := range x.Args {
			if !k.IsClosed(a, allowed) {
				return false
			}
		}
		return true
	case *Patt:
		for _, e := range x.Env {
			if !k.IsClosed(e, allowed) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// SimpleBinder is a toy single-variable Binder: Body holds placeholder
// *Var occurrences named Placeholder (with Index == 0, a sentinel that
// never collides with a kernel-minted fresh variable since Fresh starts
// counting at 1); Unbind substitutes those placeholders with the supplied
// variable.
type SimpleBinder struct {
	Placeholder string
	Body        Term
}

func (b *SimpleBinder) Unbind(v *Var) Term {
	return substitutePlaceholder(b.Body, b.Placeholder, v)
}

// SimpleMultiBinder is a toy RHS MultiBinder: Slots names one placeholder
// per pattern variable, in slot order; Subst replaces each placeholder with
// the corresponding argument.
type SimpleMultiBinder struct {
	Slots []string
	Body  Term
}

func (b *SimpleMultiBinder) Arity() int { return len(b.Slots) }

func (b *SimpleMultiBinder) Subst(args []Term) Term {
	if len(args) != len(b.Slots) {
		panic("SimpleMultiBinder.Subst: argument count does not match arity")
	}
	result := b.Body
	for i, name := range b.Slots {
		result = substitutePlaceholder(result, name, args[i])
	}
	return result
}

func (b *SimpleMultiBinder) IsClosed() bool {
	k := NewSimpleKernel()
	allowed := make([]*Var, 0, len(b.Slots))
	for _, name := range b.Slots {
		allowed = append(allowed, &Var{Name: name, Index: 0})
	}
	return k.IsClosed(b.Body, allowed)
}

// substitutePlaceholder replaces every *Var named name (Index == 0, the
// placeholder sentinel) with repl, recursing structurally. It only needs to
// handle the node shapes SimpleBinder/SimpleMultiBinder bodies are built
// from in this module's fixtures and tests.
func substitutePlaceholder(t Term, name string, repl Term) Term {
	switch x := t.(type) {
	case *Var:
		if x.Index == 0 && x.Name == name {
			return repl
		}
		return x
	case *Appl:
		return &Appl{Fn: substitutePlaceholder(x.Fn, name, repl), Arg: substitutePlaceholder(x.Arg, name, repl)}
	case *Abst:
		return &Abst{Type: substitutePlaceholder(x.Type, name, repl), Body: substitutePlaceholderBinder(x.Body, name, repl)}
	case *Prod:
		return &Prod{Type: substitutePlaceholder(x.Type, name, repl), Body: substitutePlaceholderBinder(x.Body, name, repl)}
	case *LLet:
		return &LLet{
			Type: substitutePlaceholder(x.Type, name, repl),
			Def:  substitutePlaceholder(x.Def, name, repl),
			Body: substitutePlaceholderBinder(x.Body, name, repl),
		}
	case *Meta:
		args := make([]Term, len(x.Args))
		for i, a := range x.Args {
			args[i] = substitutePlaceholder(a, name, repl)
		}
		return &Meta{MVar: x.MVar, Args: args}
	case *Patt:
		env := make([]Term, len(x.Env))
		for i, e := range x.Env {
			env[i] = substitutePlaceholder(e, name, repl)
		}
		return &Patt{Slot: x.Slot, Name: x.Name, Env: env}
	default:
		return x
	}
}

func substitutePlaceholderBinder(b Binder, name string, repl Term) Binder {
	sb, ok := b.(*SimpleBinder)
	if !ok {
		return b
	}
	if sb.Placeholder == name {
		// The inner binder shadows this name; leave it alone.
		return sb
	}
	return &SimpleBinder{Placeholder: sb.Placeholder, Body: substitutePlaceholder(sb.Body, name, repl)}
}
