package qseries

import (
	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/symbol"
)

// CrankGF computes the crank generating function
// C(z,q) = (q;q)_inf / [(zq;q)_inf * (q/z;q)_inf]. At z=1 this has a
// removable singularity and reduces to PartitionGF.
func CrankGF(z numeric.Q, variable symbol.ID, truncation int64) (fps.Series, error) {
	if z.Equals(numeric.OneQ()) {
		return PartitionGF(variable, truncation)
	}

	eulerGen := fps.EulerFunctionGenerator(variable, truncation)
	numerator, err := eulerGen.IntoSeries(truncation)
	if err != nil {
		return fps.Series{}, err
	}

	denom1Gen := fps.QPochhammerInfGenerator(z, 1, variable, truncation)
	denom1, err := denom1Gen.IntoSeries(truncation)
	if err != nil {
		return fps.Series{}, err
	}

	invZ, err := z.Inv()
	if err != nil {
		return fps.Series{}, err
	}
	denom2Gen := fps.QPochhammerInfGenerator(invZ, 1, variable, truncation)
	denom2, err := denom2Gen.IntoSeries(truncation)
	if err != nil {
		return fps.Series{}, err
	}

	denomProduct, err := fps.Mul(denom1, denom2)
	if err != nil {
		return fps.Series{}, err
	}
	invDenom, err := fps.Invert(denomProduct)
	if err != nil {
		return fps.Series{}, err
	}
	return fps.Mul(numerator, invDenom)
}

// RankGF computes the rank generating function
// R(z,q) = 1 + sum_{n>=1} q^{n^2} / [(zq;q)_n * (q/z;q)_n]. At z=1 this
// has a removable singularity and reduces to PartitionGF.
func RankGF(z numeric.Q, variable symbol.ID, truncation int64) (fps.Series, error) {
	if z.Equals(numeric.OneQ()) {
		return PartitionGF(variable, truncation)
	}

	invZ, err := z.Inv()
	if err != nil {
		return fps.Series{}, err
	}

	result := fps.One(variable, truncation)

	for n := int64(1); n*n < truncation; n++ {
		qNSq := fps.Monomial(variable, numeric.OneQ(), n*n, truncation)

		zqN := fps.One(variable, truncation)
		for k := int64(0); k < n; k++ {
			factor := fps.FromCoeffs(variable, map[int64]numeric.Q{0: numeric.OneQ(), k + 1: z.Neg()}, truncation)
			next, err := fps.Mul(zqN, factor)
			if err != nil {
				return fps.Series{}, err
			}
			zqN = next
		}

		qzN := fps.One(variable, truncation)
		for k := int64(0); k < n; k++ {
			factor := fps.FromCoeffs(variable, map[int64]numeric.Q{0: numeric.OneQ(), k + 1: invZ.Neg()}, truncation)
			next, err := fps.Mul(qzN, factor)
			if err != nil {
				return fps.Series{}, err
			}
			qzN = next
		}

		denom, err := fps.Mul(zqN, qzN)
		if err != nil {
			return fps.Series{}, err
		}
		invDenom, err := fps.Invert(denom)
		if err != nil {
			return fps.Series{}, err
		}
		term, err := fps.Mul(qNSq, invDenom)
		if err != nil {
			return fps.Series{}, err
		}

		result, err = fps.Add(result, term)
		if err != nil {
			return fps.Series{}, err
		}
	}

	return result, nil
}
