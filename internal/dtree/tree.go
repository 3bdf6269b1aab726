package dtree

import (
	"fmt"

	"github.com/kestrelrw/rewritetree/internal/term"
)

// Tree is the compiled decision tree: a read-only value produced once per
// head symbol at rule-registration time. See spec.md §3.
type Tree interface {
	treeNode()
	String() string
}

// Leaf is a matched rule: EnvBuilder maps a capture-buffer index to the RHS
// slot it fills; applying the leaf means, for each k→slot in EnvBuilder,
// placing capture-buffer entry k into RHS slot slot, then substituting RHS.
type Leaf struct {
	EnvBuilder map[int]int
	RHS        term.MultiBinder
}

func (*Leaf) treeNode() {}
func (l *Leaf) String() string {
	return fmt.Sprintf("Leaf(env=%v)", l.EnvBuilder)
}

// Fail is reached when no rule applies; the reducer handles this (typically
// by leaving the term as a neutral form). It is not an error.
type Fail struct{}

func (*Fail) treeNode() {}
func (*Fail) String() string { return "Fail" }

// Node switches on column Swap: peel the term at that column, optionally
// Store it, look up its ConstructorKey in Children, falling back to Default
// when absent. ChildOrder preserves GetCons's first-occurrence order for
// deterministic iteration (debug export, Iter), map iteration order is not
// otherwise meaningful.
type Node struct {
	Swap       int
	Store      bool
	Children   map[term.ConstructorKey]Tree
	ChildOrder []term.ConstructorKey
	Default    Tree
}

func (*Node) treeNode() {}
func (n *Node) String() string {
	return fmt.Sprintf("Node(swap=%d, store=%v, children=%d, default=%v)",
		n.Swap, n.Store, len(n.Children), n.Default != nil)
}

// Fetch unconditionally consumes the next term on the residual stack,
// optionally capturing it, with no column selection. It is a linear chain
// appended after switching has captured everything it naturally inspects,
// to pick up pattern variables the RHS still needs.
type Fetch struct {
	Store bool
	Next  Tree
}

func (*Fetch) treeNode() {}
func (f *Fetch) String() string { return fmt.Sprintf("Fetch(store=%v)", f.Store) }
