// Package fps implements sparse truncated formal power series (spec §4.5)
// and the lazy infinite-product generator (spec §4.6). Values have
// value semantics: every operation returns a fresh Series and never
// mutates an input.
package fps

import (
	"sort"

	"qsym/internal/numeric"
	"qsym/internal/qsymerr"
	"qsym/internal/symbol"
)

// Series is a sparse formal power series: a sorted map from integer
// exponent to nonzero Q coefficient, plus an explicit truncation order.
// No key >= truncation is ever stored; no zero coefficients are stored;
// keys may be negative (Laurent series are permitted).
type Series struct {
	variable   symbol.ID
	coeffs     map[int64]numeric.Q
	sortedKeys []int64
	truncation int64
}

func build(variable symbol.ID, coeffs map[int64]numeric.Q, truncation int64) Series {
	filtered := make(map[int64]numeric.Q, len(coeffs))
	keys := make([]int64, 0, len(coeffs))
	for k, v := range coeffs {
		if k >= truncation || v.IsZero() {
			continue
		}
		filtered[k] = v
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return Series{variable: variable, coeffs: filtered, sortedKeys: keys, truncation: truncation}
}

// Zero returns the zero series in variable, truncated at N.
func Zero(variable symbol.ID, truncation int64) Series {
	return build(variable, nil, truncation)
}

// One returns the series 1 + O(q^N).
func One(variable symbol.ID, truncation int64) Series {
	return Monomial(variable, numeric.OneQ(), 0, truncation)
}

// Monomial returns c*q^k + O(q^N).
func Monomial(variable symbol.ID, c numeric.Q, k, truncation int64) Series {
	if c.IsZero() || k >= truncation {
		return Zero(variable, truncation)
	}
	return build(variable, map[int64]numeric.Q{k: c}, truncation)
}

// FromCoeffs builds a series from an arbitrary exponent->coefficient map,
// filtering zero coefficients and keys >= truncation.
func FromCoeffs(variable symbol.ID, coeffs map[int64]numeric.Q, truncation int64) Series {
	return build(variable, coeffs, truncation)
}

// Variable returns the series' indeterminate symbol.
func (s Series) Variable() symbol.ID { return s.variable }

// TruncationOrder returns N: the series is exact for exponents < N.
func (s Series) TruncationOrder() int64 { return s.truncation }

// IsZero reports whether the series has no nonzero terms.
func (s Series) IsZero() bool { return len(s.sortedKeys) == 0 }

// NumNonzero returns the number of stored (nonzero) coefficients.
func (s Series) NumNonzero() int { return len(s.sortedKeys) }

// MinOrder returns the lowest exponent with a nonzero coefficient, or
// (0, false) if the series is zero.
func (s Series) MinOrder() (int64, bool) {
	if len(s.sortedKeys) == 0 {
		return 0, false
	}
	return s.sortedKeys[0], true
}

// MaxOrder returns the highest exponent with a nonzero coefficient, or
// (0, false) if the series is zero. Used by qdegree.
func (s Series) MaxOrder() (int64, bool) {
	if len(s.sortedKeys) == 0 {
		return 0, false
	}
	return s.sortedKeys[len(s.sortedKeys)-1], true
}

// CoeffUnchecked returns the coefficient at k, 0 if absent, without
// validating k against the truncation order. Used internally by
// arithmetic routines that already bound their iteration correctly.
func (s Series) CoeffUnchecked(k int64) numeric.Q {
	if v, ok := s.coeffs[k]; ok {
		return v
	}
	return numeric.ZeroQ()
}

// Coeff returns the coefficient at exponent k. Returns zero for any
// missing key below the truncation order; fails with UnknownCoefficient
// for k >= TruncationOrder (spec §4.5, §7).
func (s Series) Coeff(k int64) (numeric.Q, error) {
	if k >= s.truncation {
		return numeric.Q{}, qsymerr.Newf(qsymerr.UnknownCoefficient, "fps.Series.Coeff",
			"exponent %d is at or beyond truncation order %d", k, s.truncation)
	}
	return s.CoeffUnchecked(k), nil
}

// SetCoeff returns a copy of s with the coefficient at k set to value,
// removing the entry if value is zero. k >= TruncationOrder is ignored:
// the returned series is unchanged, since no coefficient beyond the
// truncation order can ever be stored.
func (s Series) SetCoeff(k int64, value numeric.Q) Series {
	if k >= s.truncation {
		return s
	}
	coeffs := make(map[int64]numeric.Q, len(s.coeffs)+1)
	for kk, vv := range s.coeffs {
		coeffs[kk] = vv
	}
	if value.IsZero() {
		delete(coeffs, k)
	} else {
		coeffs[k] = value
	}
	return build(s.variable, coeffs, s.truncation)
}

// Keys returns the sorted (ascending) list of exponents with nonzero
// coefficients. The returned slice must not be mutated by callers.
func (s Series) Keys() []int64 { return s.sortedKeys }

// Each calls fn for every (exponent, coefficient) pair in ascending
// exponent order.
func (s Series) Each(fn func(k int64, c numeric.Q)) {
	for _, k := range s.sortedKeys {
		fn(k, s.coeffs[k])
	}
}

// requireSameVariable enforces the binary-op precondition that both
// operands share an indeterminate (spec §4.5, §7 VariableMismatch).
func requireSameVariable(component string, a, b Series) error {
	if a.variable != b.variable {
		return qsymerr.Newf(qsymerr.VariableMismatch, component,
			"series in variable %d and %d cannot be combined", a.variable, b.variable)
	}
	return nil
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
