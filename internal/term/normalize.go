package term

import "golang.org/x/text/unicode/norm"

// NewSymb builds a Symb with its module path and name normalized to
// Unicode NFC. Two differently-encoded spellings of what is meant to be the
// same symbol (e.g. "café" composed vs. decomposed) would otherwise compare
// unequal under SameSymb and collide into distinct ConstructorKeys, silently
// specializing into branches that can never jointly be considered by the
// same switch. Normalizing once at construction, rather than at every
// comparison, keeps SameSymb/ConstructorKey equality a plain field compare.
func NewSymb(modulePath, name string) *Symb {
	return &Symb{
		ModulePath: normalizeIdent(modulePath),
		Name:       normalizeIdent(name),
	}
}

func normalizeIdent(s string) string {
	b := []byte(s)
	if norm.NFC.IsNormal(b) {
		return s
	}
	return string(norm.NFC.Bytes(b))
}
