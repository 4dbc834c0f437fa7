package qseries

import (
	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/qsymerr"
	"qsym/internal/symbol"
)

// Etaq computes the generalized eta product (q^b; q^t)_inf =
// prod_{n>=0}(1 - q^{b+t*n}). Requires t > 0; returns the zero series
// for b <= 0 (the n=0 factor vanishes or has a non-formal exponent).
func Etaq(b, t int64, variable symbol.ID, truncation int64) (fps.Series, error) {
	if t <= 0 {
		return fps.Series{}, qsymerr.Newf(qsymerr.InvariantViolation, "qseries.Etaq", "step t must be positive, got %d", t)
	}
	if b <= 0 {
		return fps.Zero(variable, truncation), nil
	}
	maxFactors := int64(1)
	if truncation > b {
		maxFactors = (truncation-b+t-1)/t + 1
	}
	gen := customStepGenerator(numeric.OneQ(), b, t, variable, truncation)
	return gen.IntoSeries(maxFactors)
}

// customStepGenerator builds prod_{n>=0}(1 - coeff*q^{base+step*n}).
func customStepGenerator(coeff numeric.Q, base, step int64, variable symbol.ID, truncation int64) *fps.ProductGenerator {
	initial := fps.One(variable, truncation)
	return fps.NewProductGenerator(initial, 0, func(n int64, v symbol.ID, trunc int64) fps.Series {
		exp := base + step*n
		coeffs := map[int64]numeric.Q{0: numeric.OneQ()}
		if exp >= 0 && exp < trunc {
			coeffs[exp] = coeff.Neg()
		}
		return fps.FromCoeffs(v, coeffs, trunc)
	})
}

func customStepProduct(coeff numeric.Q, base, step int64, variable symbol.ID, truncation int64) (fps.Series, error) {
	maxFactors := int64(1)
	if truncation > base || base < 0 {
		maxFactors = (truncation-base+step-1)/step + 1
	}
	if maxFactors < 1 {
		maxFactors = 1
	}
	gen := customStepGenerator(coeff, base, step, variable, truncation)
	return gen.IntoSeries(maxFactors)
}

// Jacprod computes the Jacobi triple product
// JAC(a,b) = (q^a;q^b)_inf * (q^{b-a};q^b)_inf * (q^b;q^b)_inf.
// Requires 0 < a < b.
func Jacprod(a, b int64, variable symbol.ID, truncation int64) (fps.Series, error) {
	if !(a > 0 && a < b) {
		return fps.Series{}, qsymerr.Newf(qsymerr.InvariantViolation, "qseries.Jacprod",
			"requires 0 < a < b, got a=%d, b=%d", a, b)
	}
	p1, err := Etaq(a, b, variable, truncation)
	if err != nil {
		return fps.Series{}, err
	}
	p2, err := Etaq(b-a, b, variable, truncation)
	if err != nil {
		return fps.Series{}, err
	}
	p3, err := Etaq(b, b, variable, truncation)
	if err != nil {
		return fps.Series{}, err
	}
	temp, err := fps.Mul(p1, p2)
	if err != nil {
		return fps.Series{}, err
	}
	return fps.Mul(temp, p3)
}

// Tripleprod computes the Jacobi triple product with monomial parameter
// z = c*q^m:
//
//	prod_{n>=1}(1-q^n) * prod_{n>=0}(1-z*q^n) * prod_{n>=1}(1-q^n/z)
func Tripleprod(z Monomial, variable symbol.ID, truncation int64) (fps.Series, error) {
	if z.Coeff.IsZero() {
		return fps.Series{}, qsymerr.New(qsymerr.InvariantViolation, "qseries.Tripleprod", "z coefficient must be nonzero")
	}
	c := z.Coeff
	m := z.Power

	eulerGen := fps.EulerFunctionGenerator(variable, truncation)
	f1, err := eulerGen.IntoSeries(truncation)
	if err != nil {
		return fps.Series{}, err
	}

	if c.Equals(numeric.OneQ()) && m == 0 {
		return fps.Zero(variable, truncation), nil
	}
	gen2 := fps.QPochhammerInfGenerator(c, m, variable, truncation)
	f2, err := gen2.IntoSeries(truncation)
	if err != nil {
		return fps.Series{}, err
	}

	invC, err := c.Inv()
	if err != nil {
		return fps.Series{}, err
	}
	if invC.Equals(numeric.OneQ()) && 1-m == 0 {
		return fps.Zero(variable, truncation), nil
	}
	gen3 := fps.QPochhammerInfGenerator(invC, 1-m, variable, truncation)
	f3, err := gen3.IntoSeries(truncation)
	if err != nil {
		return fps.Series{}, err
	}

	temp, err := fps.Mul(f1, f2)
	if err != nil {
		return fps.Series{}, err
	}
	return fps.Mul(temp, f3)
}

// Quinprod computes the quintuple product identity for z = c*q^m:
//
//	prod_{n>=1}(1-q^n)(1-zq^n)(1-z^{-1}q^{n-1})(1-z^2q^{2n-1})(1-z^{-2}q^{2n-1})
func Quinprod(z Monomial, variable symbol.ID, truncation int64) (fps.Series, error) {
	if z.Coeff.IsZero() {
		return fps.Series{}, qsymerr.New(qsymerr.InvariantViolation, "qseries.Quinprod", "z coefficient must be nonzero")
	}
	c := z.Coeff
	m := z.Power

	eulerGen := fps.EulerFunctionGenerator(variable, truncation)
	f1, err := eulerGen.IntoSeries(truncation)
	if err != nil {
		return fps.Series{}, err
	}

	gen2 := fps.QPochhammerInfGenerator(c, m+1, variable, truncation)
	f2, err := gen2.IntoSeries(truncation)
	if err != nil {
		return fps.Series{}, err
	}

	invC, err := c.Inv()
	if err != nil {
		return fps.Series{}, err
	}
	gen3 := fps.QPochhammerInfGenerator(invC, -m, variable, truncation)
	f3, err := gen3.IntoSeries(truncation)
	if err != nil {
		return fps.Series{}, err
	}

	cSq := c.Mul(c)
	f4, err := customStepProduct(cSq, 2*m+1, 2, variable, truncation)
	if err != nil {
		return fps.Series{}, err
	}

	invCSq := invC.Mul(invC)
	f5, err := customStepProduct(invCSq, 1-2*m, 2, variable, truncation)
	if err != nil {
		return fps.Series{}, err
	}

	temp, err := fps.Mul(f1, f2)
	if err != nil {
		return fps.Series{}, err
	}
	temp, err = fps.Mul(temp, f3)
	if err != nil {
		return fps.Series{}, err
	}
	temp, err = fps.Mul(temp, f4)
	if err != nil {
		return fps.Series{}, err
	}
	return fps.Mul(temp, f5)
}

// Winquist computes Winquist's identity product for a = ac*q^ap,
// b = bc*q^bp: (q;q)_inf^2 times 8 named q-Pochhammer factors.
func Winquist(a, b Monomial, variable symbol.ID, truncation int64) (fps.Series, error) {
	if a.Coeff.IsZero() {
		return fps.Series{}, qsymerr.New(qsymerr.InvariantViolation, "qseries.Winquist", "a coefficient must be nonzero")
	}
	if b.Coeff.IsZero() {
		return fps.Series{}, qsymerr.New(qsymerr.InvariantViolation, "qseries.Winquist", "b coefficient must be nonzero")
	}
	ac, ap := a.Coeff, a.Power
	bc, bp := b.Coeff, b.Power

	eulerGen := fps.EulerFunctionGenerator(variable, truncation)
	euler, err := eulerGen.IntoSeries(truncation)
	if err != nil {
		return fps.Series{}, err
	}
	eulerSq, err := fps.Mul(euler, euler)
	if err != nil {
		return fps.Series{}, err
	}

	invAc, err := ac.Inv()
	if err != nil {
		return fps.Series{}, err
	}
	invBc, err := bc.Inv()
	if err != nil {
		return fps.Series{}, err
	}

	type factor struct {
		coeff  numeric.Q
		offset int64
	}
	factors := []factor{
		{ac, ap},
		{invAc, 1 - ap},
		{bc, bp},
		{invBc, 1 - bp},
		{ac.Mul(bc), ap + bp},
		{invAc.Mul(invBc), 2 - ap - bp},
		{ac.Mul(invBc), ap - bp},
		{invAc.Mul(bc), 1 - ap + bp},
	}

	result := eulerSq
	for _, f := range factors {
		if f.coeff.Equals(numeric.OneQ()) && f.offset == 0 {
			return fps.Zero(variable, truncation), nil
		}
		gen := fps.QPochhammerInfGenerator(f.coeff, f.offset, variable, truncation)
		series, err := gen.IntoSeries(truncation)
		if err != nil {
			return fps.Series{}, err
		}
		result, err = fps.Mul(result, series)
		if err != nil {
			return fps.Series{}, err
		}
	}
	return result, nil
}
