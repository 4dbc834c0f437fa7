package qseries

import (
	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/symbol"
)

// Qbin computes the q-binomial (Gaussian) coefficient [n choose k]_q:
//
//	[n choose k]_q = prod_{i=1}^{k} (1 - q^{n-k+i}) / (1 - q^i)
//
// The result is always a polynomial of degree k*(n-k).
func Qbin(n, k int64, variable symbol.ID, truncation int64) (fps.Series, error) {
	if k < 0 || k > n {
		return fps.Zero(variable, truncation), nil
	}
	if k == 0 || k == n {
		return fps.One(variable, truncation), nil
	}

	numerator := fps.One(variable, truncation)
	denominator := fps.One(variable, truncation)
	for i := int64(1); i <= k; i++ {
		numFactor := fps.FromCoeffs(variable, map[int64]numeric.Q{
			0: numeric.OneQ(), n - k + i: numeric.OneQ().Neg(),
		}, truncation)
		next, err := fps.Mul(numerator, numFactor)
		if err != nil {
			return fps.Series{}, err
		}
		numerator = next

		denFactor := fps.FromCoeffs(variable, map[int64]numeric.Q{
			0: numeric.OneQ(), i: numeric.OneQ().Neg(),
		}, truncation)
		next, err = fps.Mul(denominator, denFactor)
		if err != nil {
			return fps.Series{}, err
		}
		denominator = next
	}

	invDenom, err := fps.Invert(denominator)
	if err != nil {
		return fps.Series{}, err
	}
	return fps.Mul(numerator, invDenom)
}
