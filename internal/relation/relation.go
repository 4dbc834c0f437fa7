// Package relation discovers linear, polynomial, and congruence
// relations among formal power series (spec §4.13), built directly on
// internal/linalg's exact null-space computation.
package relation

import (
	"math/big"

	"qsym/internal/fps"
	"qsym/internal/linalg"
	"qsym/internal/numeric"
	"qsym/internal/poly"
)

// FindLinCombo searches for coefficients c_i such that
// target = sum_i c_i*candidates[i] to order numTerms, by appending
// target as one more column of the coefficient matrix and picking a
// null-space vector whose target coordinate is nonzero, normalized so
// that coordinate equals -1. Returns ok=false when no such relation
// exists.
func FindLinCombo(target fps.Series, candidates []fps.Series, numTerms int) ([]numeric.Q, bool) {
	cols := append(append([]fps.Series(nil), candidates...), target)
	m, err := linalg.BuildCoefficientMatrix(cols, 0, numTerms)
	if err != nil {
		return nil, false
	}
	basis, err := linalg.RationalNullSpace(m)
	if err != nil {
		return nil, false
	}

	targetCol := len(candidates)
	for _, v := range basis {
		if v[targetCol].IsZero() {
			continue
		}
		inv, err := v[targetCol].Inv()
		if err != nil {
			continue
		}
		scale := inv.Neg()
		coeffs := make([]numeric.Q, len(candidates))
		for i := range candidates {
			coeffs[i] = v[i].Mul(scale)
		}
		return coeffs, true
	}
	return nil, false
}

// FindHom returns a basis for the homogeneous linear relations among
// series (the null space of their coefficient matrix, no target
// column), each basis vector giving coefficients c_i with
// sum_i c_i*series[i] = O(q^numTerms).
func FindHom(series []fps.Series, numTerms int) [][]numeric.Q {
	m, err := linalg.BuildCoefficientMatrix(series, 0, numTerms)
	if err != nil {
		return nil
	}
	basis, err := linalg.RationalNullSpace(m)
	if err != nil {
		return nil
	}
	return basis
}

// FindPoly searches for a nonzero polynomial P of the given degree
// with P(f) = O(q^numTerms), by treating 1, f, f^2, ..., f^degree as
// candidates and calling FindHom. Returns ok=false when no such
// relation is found.
func FindPoly(f fps.Series, degree, numTerms int) (poly.Poly, bool) {
	powers := make([]fps.Series, degree+1)
	powers[0] = fps.One(f.Variable(), f.TruncationOrder())
	for i := 1; i <= degree; i++ {
		var err error
		powers[i], err = fps.Mul(powers[i-1], f)
		if err != nil {
			return poly.Poly{}, false
		}
	}

	basis := FindHom(powers, numTerms)
	if len(basis) == 0 {
		return poly.Poly{}, false
	}
	return poly.FromCoeffs(basis[0]), true
}

// FindCong scans f's coefficients for a Ramanujan-style congruence: for
// each residue class r in [0, count), checks whether f.Coeff(n) mod
// modulus lies in residues for every sampled n with n mod count == r,
// n ranging across f's full truncation. Returns, per class r, whether
// the pattern held across every coefficient tested in that class;
// classes with no integer-coefficient n sampled report false.
func FindCong(f fps.Series, modulus int64, residues []int64, count int64) map[int64]bool {
	allowed := make(map[int64]bool, len(residues))
	m := big.NewInt(modulus)
	for _, r := range residues {
		allowed[new(big.Int).Mod(big.NewInt(r), m).Int64()] = true
	}

	result := make(map[int64]bool, count)
	trunc := f.TruncationOrder()

	for r := int64(0); r < count; r++ {
		holds := true
		tested := false
		for n := r; n < trunc; n += count {
			c, err := f.Coeff(n)
			if err != nil {
				continue
			}
			tested = true
			if !c.IsInteger() {
				holds = false
				break
			}
			rem := new(big.Int).Mod(c.AsZ().BigInt(), m).Int64()
			if !allowed[rem] {
				holds = false
				break
			}
		}
		result[r] = holds && tested
	}
	return result
}
