package qseries

import (
	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/symbol"
)

// q2q2Inf computes (q^2;q^2)_inf = prod_{n>=1}(1-q^{2n}), shared by
// Theta3 and Theta4.
func q2q2Inf(variable symbol.ID, truncation int64) (fps.Series, error) {
	numFactors := (truncation + 1) / 2
	initial := fps.One(variable, truncation)
	gen := fps.NewProductGenerator(initial, 1, func(n int64, v symbol.ID, trunc int64) fps.Series {
		return fps.FromCoeffs(v, map[int64]numeric.Q{0: numeric.OneQ(), 2 * n: numeric.OneQ().Neg()}, trunc)
	})
	return gen.IntoSeries(numFactors)
}

// Theta3 computes theta3(q) = sum_{n=-inf}^{inf} q^{n^2}
// = (q^2;q^2)_inf * [prod_{n>=0}(1+q^{2n+1})]^2.
func Theta3(variable symbol.ID, truncation int64) (fps.Series, error) {
	f1, err := q2q2Inf(variable, truncation)
	if err != nil {
		return fps.Series{}, err
	}
	numFactors2 := (truncation + 1) / 2
	initial2 := fps.One(variable, truncation)
	gen2 := fps.NewProductGenerator(initial2, 0, func(n int64, v symbol.ID, trunc int64) fps.Series {
		return fps.FromCoeffs(v, map[int64]numeric.Q{0: numeric.OneQ(), 2*n + 1: numeric.OneQ()}, trunc)
	})
	f2, err := gen2.IntoSeries(numFactors2)
	if err != nil {
		return fps.Series{}, err
	}
	f2sq, err := fps.Mul(f2, f2)
	if err != nil {
		return fps.Series{}, err
	}
	return fps.Mul(f1, f2sq)
}

// Theta4 computes theta4(q) = sum_{n=-inf}^{inf} (-1)^n q^{n^2}
// = (q^2;q^2)_inf * [prod_{n>=0}(1-q^{2n+1})]^2.
func Theta4(variable symbol.ID, truncation int64) (fps.Series, error) {
	f1, err := q2q2Inf(variable, truncation)
	if err != nil {
		return fps.Series{}, err
	}
	numFactors2 := (truncation + 1) / 2
	initial2 := fps.One(variable, truncation)
	gen2 := fps.NewProductGenerator(initial2, 0, func(n int64, v symbol.ID, trunc int64) fps.Series {
		return fps.FromCoeffs(v, map[int64]numeric.Q{0: numeric.OneQ(), 2*n + 1: numeric.OneQ().Neg()}, trunc)
	})
	f2, err := gen2.IntoSeries(numFactors2)
	if err != nil {
		return fps.Series{}, err
	}
	f2sq, err := fps.Mul(f2, f2)
	if err != nil {
		return fps.Series{}, err
	}
	return fps.Mul(f1, f2sq)
}

// Theta2 computes theta2(q) = 2*q^{1/4}*prod_{n>=1}(1-q^{2n})(1+q^{2n})^2
// as a series in X = q^{1/4}: theta2 = 2*X*prod_{n>=1}(1-X^{8n})(1+X^{8n})^2.
// The result has nonzero coefficients only at odd-square exponents
// (2k+1)^2, each equal to 2; the caller interprets exponent e as q^{e/4}.
func Theta2(variable symbol.ID, truncation int64) (fps.Series, error) {
	numFactors1 := (truncation+7)/8 + 1

	initial1 := fps.One(variable, truncation)
	gen1 := fps.NewProductGenerator(initial1, 1, func(n int64, v symbol.ID, trunc int64) fps.Series {
		return fps.FromCoeffs(v, map[int64]numeric.Q{0: numeric.OneQ(), 8 * n: numeric.OneQ().Neg()}, trunc)
	})
	f1, err := gen1.IntoSeries(numFactors1)
	if err != nil {
		return fps.Series{}, err
	}

	initial2 := fps.One(variable, truncation)
	gen2 := fps.NewProductGenerator(initial2, 1, func(n int64, v symbol.ID, trunc int64) fps.Series {
		return fps.FromCoeffs(v, map[int64]numeric.Q{0: numeric.OneQ(), 8 * n: numeric.OneQ()}, trunc)
	})
	f2, err := gen2.IntoSeries(numFactors1)
	if err != nil {
		return fps.Series{}, err
	}

	f2sq, err := fps.Mul(f2, f2)
	if err != nil {
		return fps.Series{}, err
	}
	product, err := fps.Mul(f1, f2sq)
	if err != nil {
		return fps.Series{}, err
	}

	two, err := numeric.NewQ(2, 1)
	if err != nil {
		return fps.Series{}, err
	}
	prefactor := fps.Monomial(variable, two, 1, truncation)
	return fps.Mul(prefactor, product)
}
