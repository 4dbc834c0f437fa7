package qseries

import (
	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/symbol"
)

// Aqprod computes the general q-Pochhammer symbol (a;q)_n as a formal
// power series (spec §4.7):
//
//	n = 0:   1
//	n > 0:   prod_{k=0}^{n-1} (1 - a.Coeff * q^{a.Power+k})
//	n < 0:   1 / (a*q^n; q)_{|n|}
//	n = inf: prod_{k=0}^{inf} (1 - a.Coeff * q^{a.Power+k})
func Aqprod(a Monomial, variable symbol.ID, n Order, truncation int64) (fps.Series, error) {
	if n.IsInfinite() {
		return aqprodInfinite(a, variable, truncation)
	}
	k := n.N()
	if k == 0 {
		return fps.One(variable, truncation), nil
	}
	if k > 0 {
		return aqprodFinitePositive(a, variable, k, truncation)
	}
	return aqprodFiniteNegative(a, variable, k, truncation)
}

func aqprodFinitePositive(a Monomial, variable symbol.ID, n, truncation int64) (fps.Series, error) {
	if a.Coeff.Equals(numeric.OneQ()) {
		negPower := -a.Power
		if negPower >= 0 && negPower < n {
			return fps.Zero(variable, truncation), nil
		}
	}
	if a.Coeff.IsZero() {
		return fps.One(variable, truncation), nil
	}

	result := fps.One(variable, truncation)
	for k := int64(0); k < n; k++ {
		exponent := a.Power + k
		factor := fps.FromCoeffs(variable, map[int64]numeric.Q{
			0:        numeric.OneQ(),
			exponent: a.Coeff.Neg(),
		}, truncation)
		next, err := fps.Mul(result, factor)
		if err != nil {
			return fps.Series{}, err
		}
		result = next
	}
	return result, nil
}

func aqprodFiniteNegative(a Monomial, variable symbol.ID, n, truncation int64) (fps.Series, error) {
	absN := -n
	shifted := Monomial{Coeff: a.Coeff, Power: a.Power + n}
	denominator, err := aqprodFinitePositive(shifted, variable, absN, truncation)
	if err != nil {
		return fps.Series{}, err
	}
	return fps.Invert(denominator)
}

func aqprodInfinite(a Monomial, variable symbol.ID, truncation int64) (fps.Series, error) {
	if a.Coeff.Equals(numeric.OneQ()) && a.Power == 0 {
		return fps.Zero(variable, truncation), nil
	}
	if a.Coeff.IsZero() {
		return fps.One(variable, truncation), nil
	}
	gen := fps.QPochhammerInfGenerator(a.Coeff, a.Power, variable, truncation)
	return gen.IntoSeries(truncation)
}
