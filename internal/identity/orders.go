package identity

import "qsym/internal/numeric"

// cuspDenom returns the effective denominator used by the Ligozat
// formula for a cusp: N for the infinity cusp (which represents the
// class of denominator c = N), the cusp's own denominator otherwise.
func cuspDenom(level int64, cusp Cusp) int64 {
	if cusp.IsInfinity() {
		return level
	}
	return cusp.Denom
}

// EtaOrderAtCusp computes the order of vanishing of an eta quotient at
// a cusp of Gamma_0(N) via the Ligozat formula:
//
//	ord_{a/c}(eta_delta^r) = (r/24) * gcd(c,delta)^2 * N / (delta * c * gcd(c, N/c))
//
// summed over every delta in the eta quotient's factors.
func EtaOrderAtCusp(eta EtaExpression, cusp Cusp) numeric.Q {
	n := eta.Level
	c := cuspDenom(n, cusp)

	total := numeric.ZeroQ()
	for delta, r := range eta.Factors {
		g := gcd(c, delta)
		numer := r * g * g * n
		denom := delta * c * gcd(c, n/c)
		term, err := numeric.NewQ(numer, denom)
		if err != nil {
			continue
		}
		twentyFour, _ := numeric.NewQ(1, 24)
		total = total.Add(term.Mul(twentyFour))
	}
	return total
}

// CuspWidth returns the width of cusp on Gamma_0(N): N / gcd(c^2, N),
// with c = N for the infinity cusp.
func CuspWidth(n int64, cusp Cusp) int64 {
	c := cuspDenom(n, cusp)
	g := gcdBig(c*c, n)
	return n / g
}

// gcdBig is gcd for values that may exceed a comfortable int64 product;
// c*c can overflow for very large N, but Gamma_0(N) levels used by this
// module stay small enough for plain int64 arithmetic.
func gcdBig(a, b int64) int64 { return gcd(a, b) }

// TotalOrder returns the valence-formula weighted sum
// sum_cusp (order_at_cusp * cusp_width) across cusps, used to sanity
// check that a weight-0 eta quotient with non-negative orders is
// consistent with the valence formula's total-order-zero requirement.
func TotalOrder(eta EtaExpression, cusps []Cusp) numeric.Q {
	total := numeric.ZeroQ()
	for _, c := range cusps {
		order := EtaOrderAtCusp(eta, c)
		width := numeric.QFromZ(numeric.NewZ(CuspWidth(eta.Level, c)))
		total = total.Add(order.Mul(width))
	}
	return total
}
