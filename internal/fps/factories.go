package fps

import (
	"qsym/internal/numeric"
	"qsym/internal/symbol"
)

// EulerFunctionGenerator builds the generator for the Euler function
// (q;q)_inf = prod_{k>=1}(1-q^k), whose coefficients encode the
// pentagonal number theorem.
func EulerFunctionGenerator(variable symbol.ID, truncation int64) *ProductGenerator {
	initial := One(variable, truncation)
	return NewProductGenerator(initial, 1, func(k int64, v symbol.ID, trunc int64) Series {
		return FromCoeffs(v, map[int64]numeric.Q{0: numeric.OneQ(), k: numeric.OneQ().Neg()}, trunc)
	})
}

// QPochhammerInfGenerator builds the generator for
// (a*q^offset; q)_inf = prod_{k>=0}(1 - a*q^{offset+k}).
func QPochhammerInfGenerator(a numeric.Q, offset int64, variable symbol.ID, truncation int64) *ProductGenerator {
	initial := One(variable, truncation)
	return NewProductGenerator(initial, 0, func(k int64, v symbol.ID, trunc int64) Series {
		exp := offset + k
		coeffs := map[int64]numeric.Q{0: numeric.OneQ()}
		if exp < trunc {
			coeffs[exp] = a.Neg()
		}
		return FromCoeffs(v, coeffs, trunc)
	})
}
