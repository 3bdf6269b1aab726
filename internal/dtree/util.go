package dtree

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Visitor folds over a Tree, one callback per variant. Each receives the
// node it was called for; Iter invokes a Node's or Fetch's callback before
// descending into its children, and callbacks do not recurse themselves.
type Visitor struct {
	Leaf  func(*Leaf)
	Fail  func(*Fail)
	Node  func(*Node)
	Fetch func(*Fetch)
}

// Iter walks t depth-first, invoking the matching Visitor callback for
// every node (skipping a nil callback), descending into Node's children (in
// ChildOrder) and default branch, and into Fetch's Next.
func Iter(t Tree, v Visitor) {
	switch n := t.(type) {
	case *Leaf:
		if v.Leaf != nil {
			v.Leaf(n)
		}
	case *Fail:
		if v.Fail != nil {
			v.Fail(n)
		}
	case *Node:
		if v.Node != nil {
			v.Node(n)
		}
		for _, k := range n.ChildOrder {
			Iter(n.Children[k], v)
		}
		if n.Default != nil {
			Iter(n.Default, v)
		}
	case *Fetch:
		if v.Fetch != nil {
			v.Fetch(n)
		}
		Iter(n.Next, v)
	}
}

// Capacity returns the size of the largest capture buffer any path through
// t can require: 0 for Fail and Leaf (a leaf only reads entries that the
// stores above it placed), and otherwise the max capacity of Node's children
// and default (or of Fetch's Next), plus 1 if this node itself stores. The
// store bump is unconditional, not only when the subtree below is otherwise
// empty: every Store=true node or fetch on a path appends to the buffer
// regardless of what runs after it.
func Capacity(t Tree) int {
	switch n := t.(type) {
	case *Fail, *Leaf:
		return 0
	case *Node:
		best := 0
		for _, k := range n.ChildOrder {
			if c := Capacity(n.Children[k]); c > best {
				best = c
			}
		}
		if n.Default != nil {
			if c := Capacity(n.Default); c > best {
				best = c
			}
		}
		if n.Store {
			best++
		}
		return best
	case *Fetch:
		c := Capacity(n.Next)
		if n.Store {
			c++
		}
		return c
	default:
		return 0
	}
}

// ExportDOT renders t as a Graphviz DOT digraph, for the `dot` subcommand
// and debugging. This is implemented against the standard library only:
// nothing in the example pack offers a DOT/graphviz writer, and DOT's
// format is simple enough that pulling in a dependency for string
// concatenation would be needless.
func ExportDOT(t Tree) string {
	var b strings.Builder
	b.WriteString("digraph dtree {\n")
	b.WriteString("  node [shape=box, fontname=monospace];\n")
	n := 0
	var walk func(Tree) string
	walk = func(t Tree) string {
		id := fmt.Sprintf("n%d", n)
		n++
		switch x := t.(type) {
		case *Leaf:
			fmt.Fprintf(&b, "  %s [label=%q];\n", id, x.String())
		case *Fail:
			fmt.Fprintf(&b, "  %s [label=\"Fail\", style=dashed];\n", id)
		case *Node:
			fmt.Fprintf(&b, "  %s [label=\"swap=%d\\nstore=%v\"];\n", id, x.Swap, x.Store)
			for _, k := range x.ChildOrder {
				childID := walk(x.Children[k])
				fmt.Fprintf(&b, "  %s -> %s [label=%q];\n", id, childID, k.String())
			}
			if x.Default != nil {
				childID := walk(x.Default)
				fmt.Fprintf(&b, "  %s -> %s [label=\"default\", style=dotted];\n", id, childID)
			}
		case *Fetch:
			fmt.Fprintf(&b, "  %s [label=\"fetch\\nstore=%v\"];\n", id, x.Store)
			childID := walk(x.Next)
			fmt.Fprintf(&b, "  %s -> %s;\n", id, childID)
		}
		return id
	}
	walk(t)
	b.WriteString("}\n")
	return b.String()
}

// DumpMatrix pretty-prints a Matrix for interactive debugging (nothing in
// this module calls it), via go-spew so nested Cell/Row/Matrix
// values render with full field names and pointer de-duplication instead of
// the Term variants' terse String() forms.
func DumpMatrix(m *Matrix) string {
	cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, SortKeys: true}
	return cfg.Sdump(m)
}
