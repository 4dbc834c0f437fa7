package fps

import "qsym/internal/symbol"

// FactorFunc produces the k-th factor of an infinite product, in the
// given variable, truncated at N.
type FactorFunc func(k int64, variable symbol.ID, truncation int64) Series

// ProductGenerator is a stateful, lazy infinite-product builder (spec
// §4.6). It is intentionally not a coroutine: the only control verb is
// EnsureOrder(T), which multiplies in factors on demand and remembers
// how many have been included so repeated calls with larger T reuse
// prior work.
type ProductGenerator struct {
	partial         Series
	factorsIncluded int64
	startIndex      int64
	factorFn        FactorFunc
	variable        symbol.ID
}

// NewProductGenerator creates a generator seeded with an initial partial
// product (typically One(variable, N)), starting factor index, and a
// closure producing each factor.
func NewProductGenerator(initial Series, startIndex int64, factorFn FactorFunc) *ProductGenerator {
	return &ProductGenerator{
		partial:         initial,
		factorsIncluded: 0,
		startIndex:      startIndex,
		factorFn:        factorFn,
		variable:        initial.Variable(),
	}
}

// EnsureOrder multiplies in factors until at least T have been included.
// After this call, coefficients of the partial product at exponents
// 0..T-1 match the true infinite product (given the standard assumption
// that factor k's minimum nonzero exponent grows at least linearly in
// k, as documented in spec §4.6).
func (g *ProductGenerator) EnsureOrder(t int64) error {
	for g.factorsIncluded < t {
		k := g.startIndex + g.factorsIncluded
		factor := g.factorFn(k, g.variable, g.partial.TruncationOrder())
		next, err := Mul(g.partial, factor)
		if err != nil {
			return err
		}
		g.partial = next
		g.factorsIncluded++
	}
	return nil
}

// Series returns the current partial product without advancing it.
func (g *ProductGenerator) Series() Series { return g.partial }

// IntoSeries consumes the generator after ensuring order T, returning
// the resulting series.
func (g *ProductGenerator) IntoSeries(t int64) (Series, error) {
	if err := g.EnsureOrder(t); err != nil {
		return Series{}, err
	}
	return g.partial, nil
}
