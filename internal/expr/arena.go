package expr

import (
	"qsym/internal/numeric"
	"qsym/internal/symbol"
)

// Arena is the hash-consed expression DAG (spec §4.3). It is append-only:
// once interned, an Expr is never mutated or removed, and Refs are stable
// for the arena's lifetime. Grounded on bytecode.Chunk's
// append-to-slice-and-return-index interning pattern.
type Arena struct {
	nodes  []Expr
	dedup  map[dedupKey]Ref
	Symbols *symbol.Registry
}

// New creates an empty arena with its own symbol registry.
func New() *Arena {
	return &Arena{
		dedup:   make(map[dedupKey]Ref),
		Symbols: symbol.New(),
	}
}

// NewWithSymbols creates an arena sharing an existing symbol registry
// (for hosts that need symbols stable across multiple arenas).
func NewWithSymbols(reg *symbol.Registry) *Arena {
	return &Arena{dedup: make(map[dedupKey]Ref), Symbols: reg}
}

// Intern returns the Ref for expr, interning it on first occurrence.
// Structurally identical Expr values (per Expr.Equal) always receive the
// same Ref.
func (a *Arena) Intern(e Expr) Ref {
	key := e.dedupKey()
	ref, ok := a.dedup[key]
	if ok && a.nodes[ref].Equal(e) {
		return ref
	}
	if ok {
		// Another node already holds this key (a hash collision): scan
		// the arena so an equal node interned earlier is still found.
		for i, n := range a.nodes {
			if n.Equal(e) {
				return Ref(i)
			}
		}
	}
	ref = Ref(len(a.nodes))
	a.nodes = append(a.nodes, e)
	if !ok {
		a.dedup[key] = ref
	}
	return ref
}

// Get returns the Expr stored at ref. O(1) array index; never
// out-of-bounds for a ref issued by this arena.
func (a *Arena) Get(ref Ref) Expr { return a.nodes[ref] }

// Len returns the number of interned nodes.
func (a *Arena) Len() int { return len(a.nodes) }

// InternInt interns an Integer atom.
func (a *Arena) InternInt(z numeric.Z) Ref { return a.Intern(Expr{Kind: KindInteger, Int: z}) }

// InternRat interns a Rational atom for q as given, without checking
// whether q is integer-valued. The no-integer-valued-Rational invariant
// is kept by callers: simplify's internQ picks InternInt for integer
// values, and simplify's normalize phase folds any integer-valued
// Rational atom into an Integer.
func (a *Arena) InternRat(q numeric.Q) Ref { return a.Intern(Expr{Kind: KindRational, Rat: q}) }

// InternSymbol interns a Symbol atom for name, creating the symbol id if
// needed.
func (a *Arena) InternSymbol(name string) Ref {
	id := a.Symbols.Intern(name)
	return a.Intern(Expr{Kind: KindSymbol, Sym: id})
}

var (
	infinitySentinel  = Expr{Kind: KindInfinity}
	undefinedSentinel = Expr{Kind: KindUndefined}
)

// InternInfinity interns the unique Infinity atom.
func (a *Arena) InternInfinity() Ref { return a.Intern(infinitySentinel) }

// InternUndefined interns the unique Undefined atom.
func (a *Arena) InternUndefined() Ref { return a.Intern(undefinedSentinel) }
