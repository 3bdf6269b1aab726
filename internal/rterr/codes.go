// Package rterr provides the structured programmer-error reports raised by
// the decision-tree compiler when one of its invariants is violated.
//
// These are not recoverable rule-set problems (an empty clause matrix is not
// an error; it compiles to a Fail leaf). They signal a bug in the caller
// (a malformed rule) or in the compiler itself, and abort execution the same
// way an unreachable default case does.
package rterr

// Error code constants, one family per compiler phase. Mirrors the
// per-phase XXX### taxonomy used elsewhere in this codebase's ancestry, but
// scoped to the decision-tree compiler ("DTC").
const (
	// DTC001 indicates a non-constructor, non-pattern term appeared where
	// only tree-constructors or patterns are permitted (Type, Kind, LLet,
	// Wild, TRef, TEnv on a rule LHS).
	DTC001 = "DTC001"

	// DTC002 indicates an impossible case was reached in a specialization
	// match table (spec_filter / spec_transform).
	DTC002 = "DTC002"

	// DTC003 indicates the fetch subtree builder reached a cell whose head
	// is not one of Patt, Abst, or an application of one of those.
	DTC003 = "DTC003"

	// DTC004 indicates a leaf's env_builder captured more slots than the
	// matched rule declares variables for.
	DTC004 = "DTC004"

	// DTC005 indicates key_of was asked for the constructor key of a term
	// whose head is neither a Symb nor a Var.
	DTC005 = "DTC005"

	// DTC006 indicates two rows of the same clause matrix disagree on
	// column count at a depth where they are supposed to line up.
	DTC006 = "DTC006"

	// DTC007 indicates a multi-binder was asked to substitute the wrong
	// number of arguments for its declared arity.
	DTC007 = "DTC007"
)
