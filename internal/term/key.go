package term

import "fmt"

// ConstructorKey is the discriminant used to index a decision tree's
// children. spec.md §4.1 defines it as the triple (module_path, symbol_name,
// arity) for a Symb-headed term; §4.3's specialization table also matches
// two Var-headed cells by variable identity ("Var x | Var y | iff x = y"),
// so a column can be switched on a bound variable's identity too. ConstructorKey
// is extended with an IsVar/VarIndex pair to carry that case through the
// same map type (see KeyOf) rather than introducing a second children map
// on Node, see DESIGN.md's Open Question notes.
//
// Arity is part of the key (for both cases) because two occurrences of the
// same head applied to different argument counts must specialize into
// different children, "head applied to exactly N arguments" is the thing
// being matched, not the head alone.
//
// ConstructorKey's fields are all comparable, so it can be used directly as
// a Go map key (children map[ConstructorKey]Tree) without a custom Equal.
type ConstructorKey struct {
	IsVar      bool
	ModulePath string // unused when IsVar
	SymbolName string // unused when IsVar
	VarIndex   int    // unused unless IsVar
	VarName    string // display only; unused unless IsVar
	Arity      int
}

func (k ConstructorKey) String() string {
	if k.IsVar {
		return fmt.Sprintf("%s#%d/%d", k.VarName, k.VarIndex, k.Arity)
	}
	return fmt.Sprintf("%s.%s/%d", k.ModulePath, k.SymbolName, k.Arity)
}

// Compare gives ConstructorKey a total order. Symb keys sort before Var
// keys. Iteration over a node's children follows Node.ChildOrder (GetCons's
// first-occurrence order), not this order.
func (k ConstructorKey) Compare(o ConstructorKey) int {
	if k.IsVar != o.IsVar {
		if o.IsVar {
			return -1
		}
		return 1
	}
	if k.IsVar {
		switch {
		case k.VarIndex < o.VarIndex:
			return -1
		case k.VarIndex > o.VarIndex:
			return 1
		default:
			return cmpInt(k.Arity, o.Arity)
		}
	}
	if k.ModulePath != o.ModulePath {
		if k.ModulePath < o.ModulePath {
			return -1
		}
		return 1
	}
	if k.SymbolName != o.SymbolName {
		if k.SymbolName < o.SymbolName {
			return -1
		}
		return 1
	}
	return cmpInt(k.Arity, o.Arity)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (k ConstructorKey) Less(o ConstructorKey) bool { return k.Compare(o) < 0 }
