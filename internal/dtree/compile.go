package dtree

import (
	"github.com/kestrelrw/rewritetree/internal/position"
	"github.com/kestrelrw/rewritetree/internal/rterr"
	"github.com/kestrelrw/rewritetree/internal/rule"
	"github.com/kestrelrw/rewritetree/internal/term"
)

// Compile builds a decision tree from a set of rules sharing a head symbol.
// Rule order sets priority: when several rows survive to an exhausted
// matrix, the first of them becomes the leaf.
func Compile(rules []rule.Rule) Tree {
	return compileMatrix(OfRules(rules))
}

func compileMatrix(m *Matrix) Tree {
	if m.IsEmpty() {
		return &Fail{}
	}
	if m.Exhausted() {
		return compileLeaf(m)
	}

	candidates := m.DiscardConsFree()
	ci := candidates[m.PickBestAmong(candidates)]
	col := m.GetCol(ci)
	store := InRHS(col)

	// Positions uncovered by this switch feed deeper leaves' capture
	// buffers in the order they're bound here, ahead of what the parent
	// matrix had already captured.
	newCatalogue := append(append([]position.Subterm{}, Varpos(m, ci)...), m.Catalogue...)

	children := make(map[term.ConstructorKey]Tree)
	order := make([]term.ConstructorKey, 0, len(col))
	for _, c := range GetCons(col) {
		key := term.KeyOf(c)
		child := compileMatrix(&Matrix{Rows: Specialize(c, ci, m), Catalogue: newCatalogue})
		children[key] = child
		order = append(order, key)
	}

	var def Tree
	if defRows := Default(ci, m); len(defRows) > 0 {
		def = compileMatrix(&Matrix{Rows: defRows, Catalogue: newCatalogue})
	}

	return &Node{Swap: ci, Store: store, Children: children, ChildOrder: order, Default: def}
}

// compileLeaf turns an exhausted matrix's winning (first) row into a Leaf,
// via fetch for any positions the row's RHS still needs that switching never
// inspected.
func compileLeaf(m *Matrix) Tree {
	row := m.Rows[0]

	// The catalogue accumulates positions parent-first as compileMatrix
	// recurses; reverse it so index 0 is the earliest capture, this is the
	// buffer order a running match actually produces.
	buf := make([]position.Subterm, len(m.Catalogue))
	for i, p := range m.Catalogue {
		buf[len(m.Catalogue)-1-i] = p
	}

	envBuilder := make(map[int]int, len(row.Variables))
	for idx, p := range buf {
		if slot, ok := row.Variables[p]; ok {
			envBuilder[idx] = slot
		}
	}
	if len(envBuilder) > len(row.Variables) {
		rterr.Raise(rterr.DTC004, "leaf env_builder captured more slots than row declares", map[string]any{
			"env_builder_size": len(envBuilder),
			"row_variables":    len(row.Variables),
		})
	}

	return fetchBuild(row.LHS, len(buf), envBuilder, row.RHS)
}
