package dtree

import (
	"github.com/kestrelrw/rewritetree/internal/position"
	"github.com/kestrelrw/rewritetree/internal/rterr"
	"github.com/kestrelrw/rewritetree/internal/rule"
	"github.com/kestrelrw/rewritetree/internal/term"
)

// Cell is one column entry of a clause-matrix row: a term together with the
// position it occupies in the rule's original left-hand side.
type Cell struct {
	Term term.Term
	Pos  position.Subterm
}

// Row is a clause-matrix row: one rule's surviving columns, its RHS binder,
// and the position→slot map flushout_vars computed for it.
type Row struct {
	LHS       []Cell
	RHS       term.MultiBinder
	Variables map[position.Subterm]int
}

// Matrix is the clause-matrix pattern-matching problem: an ordered list of
// rows sharing column positions at the current depth, plus the ordered
// list of positions captured so far along the current compilation path
// (most-recently-captured first, per spec.md §3's var_catalogue).
type Matrix struct {
	Rows      []Row
	Catalogue []position.Subterm
}

// Width is the number of active columns shared by every row, or 0 for an
// empty matrix.
func (m *Matrix) Width() int {
	if len(m.Rows) == 0 {
		return 0
	}
	return len(m.Rows[0].LHS)
}

// OfRules builds the initial clause matrix from a rule list: one row per
// rule, LHS terms tagged with positions starting at succ(init) (the head
// occupies init), and Variables computed by flushoutVars.
func OfRules(rules []rule.Rule) *Matrix {
	rows := make([]Row, len(rules))
	for i, r := range rules {
		positions := position.Tag(len(r.LHS), position.DefaultStart())
		cells := make([]Cell, len(r.LHS))
		for j, t := range r.LHS {
			cells[j] = Cell{Term: t, Pos: positions[j]}
		}
		rows[i] = Row{
			LHS:       cells,
			RHS:       r.RHS,
			Variables: flushoutVars(cells, len(r.Vars)),
		}
	}
	return &Matrix{Rows: rows}
}

// flushoutVars is flushout_vars: a depth-first scan of the tagged LHS that
// binds the position of every Patt(Some i, _, _) to slot i. Patt(None),
// Var, and Symb leaves are skipped without descending; Appl recurses into
// its arguments (tagged beneath the Appl's own position) before returning
// to later siblings; Abst recurses into its body only. The scan stops once
// every one of the `total` declared slots has at least one bound position
// (a non-linear rule may bind the same slot more than once; every occurrence
// reached before the scan stops is recorded, each at its own position).
func flushoutVars(cells []Cell, total int) map[position.Subterm]int {
	vars := make(map[position.Subterm]int)
	if total == 0 {
		return vars
	}
	seen := make(map[int]bool, total)
	for _, c := range cells {
		if len(seen) >= total {
			break
		}
		flushoutWalk(c.Term, c.Pos, vars, seen, total)
	}
	return vars
}

func flushoutWalk(t term.Term, pos position.Subterm, vars map[position.Subterm]int, seen map[int]bool, total int) {
	if len(seen) >= total {
		return
	}
	switch x := t.(type) {
	case *term.Patt:
		if x.Slot != nil {
			vars[pos] = *x.Slot
			seen[*x.Slot] = true
		}
	case *term.Var, *term.Symb:
		// leaves
	case *term.Appl:
		_, args := term.GetArgs(x)
		childPositions := position.Tag(len(args), pos.Sub())
		for i, a := range args {
			if len(seen) >= total {
				return
			}
			flushoutWalk(a, childPositions[i], vars, seen, total)
		}
	case *term.Abst:
		k := term.NewSimpleKernel()
		v := k.Fresh("_flushout")
		flushoutWalk(x.Body.Unbind(v), pos.Sub(), vars, seen, total)
	default:
		// Prod, LLet, Meta, TypeT, KindT, TEnvT, TRefT, Wild never carry
		// LHS pattern variables; nothing to flush out.
	}
}

// IsEmpty reports whether the matrix has no rows left.
func (m *Matrix) IsEmpty() bool { return len(m.Rows) == 0 }

// Exhausted reports whether the first row's LHS contains no tree
// constructors (every remaining column is a Patt/non-constructor), i.e.
// this row is ready to become a leaf. Undefined (by convention, false) on
// an empty matrix, callers check IsEmpty first.
func (m *Matrix) Exhausted() bool {
	if m.IsEmpty() {
		return false
	}
	for _, c := range m.Rows[0].LHS {
		if term.IsTreeConstructor(c.Term) {
			return false
		}
	}
	return true
}

// GetCol returns column i across every row.
func (m *Matrix) GetCol(i int) []Cell {
	col := make([]Cell, len(m.Rows))
	for j, row := range m.Rows {
		if i >= len(row.LHS) {
			rterr.Raise(rterr.DTC006, "column index out of range", map[string]any{
				"column": i, "rowWidth": len(row.LHS), "row": j,
			})
		}
		col[j] = row.LHS[i]
	}
	return col
}

// Score counts how many entries of a column are NOT tree constructors.
// Lower means more constructors, i.e. more discriminating: a column full of
// wildcards yields no useful switch.
func Score(col []Cell) int {
	n := 0
	for _, c := range col {
		if !term.IsTreeConstructor(c.Term) {
			n++
		}
	}
	return n
}

// CanSwitchOn reports whether some row has a tree-constructor in column k.
func (m *Matrix) CanSwitchOn(k int) bool {
	for _, row := range m.Rows {
		if term.IsTreeConstructor(row.LHS[k].Term) {
			return true
		}
	}
	return false
}

// DiscardConsFree returns the indices of every column that CanSwitchOn
// holds for. When the matrix is not Exhausted, at least one such column
// exists.
func (m *Matrix) DiscardConsFree() []int {
	var out []int
	for i := 0; i < m.Width(); i++ {
		if m.CanSwitchOn(i) {
			out = append(out, i)
		}
	}
	return out
}

// PickBestAmong returns the index, into candidates, of the column
// maximising Score. Ties are resolved in favour of the LAST candidate
// (argmax computed under ≤, per spec.md §9's documented tie-break, see
// DESIGN.md).
func (m *Matrix) PickBestAmong(candidates []int) int {
	best := 0
	bestScore := Score(m.GetCol(candidates[0]))
	for i := 1; i < len(candidates); i++ {
		s := Score(m.GetCol(candidates[i]))
		if bestScore <= s {
			best = i
			bestScore = s
		}
	}
	return best
}

// GetCons deduplicates a column's tree-constructor entries, keeping one
// representative term per distinct ConstructorKey, in first-occurrence
// order.
func GetCons(col []Cell) []term.Term {
	var out []term.Term
	seen := make(map[term.ConstructorKey]bool)
	for _, c := range col {
		if !term.IsTreeConstructor(c.Term) {
			continue
		}
		k := term.KeyOf(c.Term)
		if !seen[k] {
			seen[k] = true
			out = append(out, c.Term)
		}
	}
	return out
}

// InRHS reports whether some cell in a column is a used Patt, i.e. the
// term inspected at this column must be captured into the runtime buffer
// for a surviving rule's RHS.
func InRHS(col []Cell) bool {
	for _, c := range col {
		if p, ok := c.Term.(*term.Patt); ok && p.Used() {
			return true
		}
	}
	return false
}

// Varpos returns the ordered, deduplicated positions of used-Patt cells in
// column ci.
func Varpos(m *Matrix, ci int) []position.Subterm {
	var out []position.Subterm
	seen := make(map[position.Subterm]bool)
	for _, c := range m.GetCol(ci) {
		if p, ok := c.Term.(*term.Patt); ok && p.Used() {
			if !seen[c.Pos] {
				seen[c.Pos] = true
				out = append(out, c.Pos)
			}
		}
	}
	return out
}

// Specialize keeps the rows of m whose cell at column ci matches pat,
// replacing that cell with the sub-columns spec_transform produces. Row
// order is preserved.
func Specialize(pat term.Term, ci int, m *Matrix) []Row {
	var out []Row
	for _, row := range m.Rows {
		cell := row.LHS[ci]
		if !specFilter(pat, cell.Term) {
			continue
		}
		newCells := specTransform(pat, cell)
		out = append(out, spliceColumn(row, ci, newCells))
	}
	return out
}

// Default keeps the rows of m whose cell at column ci is a Patt, dropping
// that column.
func Default(ci int, m *Matrix) []Row {
	var out []Row
	for _, row := range m.Rows {
		if _, ok := row.LHS[ci].Term.(*term.Patt); ok {
			out = append(out, spliceColumn(row, ci, nil))
		}
	}
	return out
}

func spliceColumn(row Row, ci int, replacement []Cell) Row {
	newLHS := make([]Cell, 0, len(row.LHS)-1+len(replacement))
	newLHS = append(newLHS, row.LHS[:ci]...)
	newLHS = append(newLHS, replacement...)
	newLHS = append(newLHS, row.LHS[ci+1:]...)
	return Row{LHS: newLHS, RHS: row.RHS, Variables: row.Variables}
}

// specFilter is spec_filter: whether a row's cell at the chosen column
// survives specialization against pat.
func specFilter(pat term.Term, hd term.Term) bool {
	// "Appl… | Patt | always": a Patt cell always survives specialization
	// against an application pattern, the new anonymous Patt cells it
	// expands into (see specTransform) carry the check forward instead.
	if _, isAppl := pat.(*term.Appl); isAppl {
		if _, isPatt := hd.(*term.Patt); isPatt {
			return true
		}
	}
	// "anything | Patt(_,_,env) | iff binding pat against env yields a
	// closed term": the general case, for a pat that will NOT be further
	// decomposed (Symb/Var constructors).
	if p, ok := hd.(*term.Patt); ok {
		k := term.NewSimpleKernel()
		return k.IsClosed(pat, patEnvVars(p))
	}
	switch pt := pat.(type) {
	case *term.Symb:
		s, ok := hd.(*term.Symb)
		return ok && term.SameSymb(pt, s)
	case *term.Var:
		v, ok := hd.(*term.Var)
		return ok && term.SameVar(pt, v)
	case *term.Appl:
		_, ok := hd.(*term.Appl)
		if !ok {
			return false
		}
		pHead, pArgs := term.GetArgs(pat)
		hHead, hArgs := term.GetArgs(hd)
		if len(pArgs) != len(hArgs) {
			return false
		}
		return specFilter(pHead, hHead)
	default:
		// Abst against anything but a Patt-with-closing-env, or any other
		// mismatched shape, is not kept.
		return false
	}
}

// patEnvVars extracts the *Var entries of a Patt's environment (the
// variables it is legally allowed to depend on); non-Var entries are
// ignored for the closedness test, mirroring the common case where a
// pattern variable's environment is a list of distinct bound variables.
func patEnvVars(p *term.Patt) []*term.Var {
	var out []*term.Var
	for _, e := range p.Env {
		if v, ok := e.(*term.Var); ok {
			out = append(out, v)
		}
	}
	return out
}

// specTransform is spec_transform: the replacement cells for the matched
// column, given the chosen pattern pat and the row's original cell.
func specTransform(pat term.Term, cell Cell) []Cell {
	if _, ok := cell.Term.(*term.Patt); ok {
		apat, ok := pat.(*term.Appl)
		if !ok {
			// Patt against a non-application (Symb/Var): no new columns.
			return nil
		}
		_, pArgs := term.GetArgs(apat)
		n := len(pArgs)
		positions := position.Tag(n, cell.Pos.Sub())
		out := make([]Cell, n)
		p := cell.Term.(*term.Patt)
		for i := range pArgs {
			out[i] = Cell{Term: &term.Patt{Slot: nil, Name: p.Name + "?", Env: p.Env}, Pos: positions[i]}
		}
		return out
	}

	switch pat.(type) {
	case *term.Symb, *term.Var:
		return nil
	case *term.Appl:
		_, hArgs := term.GetArgs(cell.Term)
		positions := position.Tag(len(hArgs), cell.Pos.Sub())
		out := make([]Cell, len(hArgs))
		for i, a := range hArgs {
			out[i] = Cell{Term: a, Pos: positions[i]}
		}
		return out
	default:
		rterr.Raise(rterr.DTC002, "impossible case in spec_transform", map[string]any{
			"pattern": pat.String(),
			"cell":    cell.Term.String(),
		})
		panic("unreachable")
	}
}
