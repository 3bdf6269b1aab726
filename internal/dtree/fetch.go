package dtree

import (
	"github.com/kestrelrw/rewritetree/internal/position"
	"github.com/kestrelrw/rewritetree/internal/rterr"
	"github.com/kestrelrw/rewritetree/internal/term"
)

// fetchBuild turns an exhausted row's residual cells into the Fetch chain
// (possibly empty) terminating in a Leaf. depth is the size of the capture
// buffer already filled by switching; envBuilder carries forward what
// switching captured, fetch extends it until the RHS's arity is satisfied.
func fetchBuild(cells []Cell, depth int, envBuilder map[int]int, rhs term.MultiBinder) Tree {
	missing := rhs.Arity() - len(envBuilder)
	k := term.NewSimpleKernel()
	return fetchStep(cells, depth, 0, envBuilder, rhs, missing, k)
}

// fetchStep consumes cells linearly, no column selection, since by
// construction every cell reaching here is non-constructor. added tracks
// how many new slots fetch itself has captured; depth is fixed for the
// whole chain (the offset switching already established).
func fetchStep(cells []Cell, depth, added int, envBuilder map[int]int, rhs term.MultiBinder, missing int, k *term.SimpleKernel) Tree {
	if added == missing {
		return &Leaf{EnvBuilder: envBuilder, RHS: rhs}
	}
	if len(cells) == 0 {
		rterr.Raise(rterr.DTC003, "fetch ran out of cells before satisfying rhs arity", map[string]any{
			"missing": missing,
			"added":   added,
		})
	}

	cell := cells[0]
	rest := cells[1:]
	head, args := term.GetArgs(cell.Term)

	switch h := head.(type) {
	case *term.Patt:
		if h.Slot == nil {
			next := prependArgs(args, cell.Pos, rest)
			return &Fetch{Store: false, Next: fetchStep(next, depth, added, envBuilder, rhs, missing, k)}
		}
		envBuilder[depth+added] = *h.Slot
		next := prependArgs(args, cell.Pos, rest)
		return &Fetch{Store: true, Next: fetchStep(next, depth, added+1, envBuilder, rhs, missing, k)}

	case *term.Abst:
		v := k.Fresh("_fetch")
		body := h.Body.Unbind(v)
		next := append([]Cell{{Term: body, Pos: cell.Pos.Sub()}}, rest...)
		return &Fetch{Store: false, Next: fetchStep(next, depth, added, envBuilder, rhs, missing, k)}

	default:
		rterr.Raise(rterr.DTC003, "fetch reached a cell with an invalid head", map[string]any{
			"head": head.String(),
			"kind": head.Kind().String(),
		})
		panic("unreachable")
	}
}

// prependArgs tags args under basePos's sub-positions and splices them
// ahead of rest, as fetch does when it unwraps a cell into its components.
func prependArgs(args []term.Term, basePos position.Subterm, rest []Cell) []Cell {
	if len(args) == 0 {
		return rest
	}
	positions := position.Tag(len(args), basePos.Sub())
	out := make([]Cell, 0, len(args)+len(rest))
	for i, a := range args {
		out = append(out, Cell{Term: a, Pos: positions[i]})
	}
	return append(out, rest...)
}
