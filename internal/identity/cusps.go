// Package identity implements eta-quotient modularity checking, cusp
// enumeration, the Ligozat order formula, a two-term identity proving
// engine, and a searchable identity database (spec §4.9).
package identity

import "qsym/internal/qsymerr"

// Cusp is a point a/c of P^1(Q), reduced to lowest terms with c >= 0.
// Infinity is represented as 1/0.
type Cusp struct {
	Numer int64
	Denom int64
}

// Infinity returns the cusp at infinity (1/0).
func Infinity() Cusp { return Cusp{Numer: 1, Denom: 0} }

// NewCusp builds a/c in lowest terms, normalizing c == 0 to infinity and
// negative c by negating both coordinates.
func NewCusp(a, c int64) Cusp {
	if c == 0 {
		return Infinity()
	}
	if c < 0 {
		a, c = -a, -c
	}
	if g := gcd(absI64(a), c); g > 0 {
		a /= g
		c /= g
	}
	return Cusp{Numer: a, Denom: c}
}

// IsInfinity reports whether c is the cusp at infinity.
func (c Cusp) IsInfinity() bool { return c.Denom == 0 }

func (c Cusp) String() string {
	if c.IsInfinity() {
		return "inf"
	}
	return itoa64(c.Numer) + "/" + itoa64(c.Denom)
}

func gcd(a, b int64) int64 {
	a, b = absI64(a), absI64(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return (a / gcd(a, b)) * b
}

func absI64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func itoa64(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

// divisors returns the divisors of n in ascending order, n >= 1.
func divisors(n int64) []int64 {
	var divs []int64
	for i := int64(1); i*i <= n; i++ {
		if n%i == 0 {
			divs = append(divs, i)
			if i != n/i {
				divs = append(divs, n/i)
			}
		}
	}
	for i := 0; i < len(divs); i++ {
		for j := i + 1; j < len(divs); j++ {
			if divs[j] < divs[i] {
				divs[i], divs[j] = divs[j], divs[i]
			}
		}
	}
	return divs
}

// eulerPhi returns Euler's totient of n (0 for n <= 0).
func eulerPhi(n int64) int64 {
	if n <= 0 {
		return 0
	}
	result, m, p := n, n, int64(2)
	for p*p <= m {
		if m%p == 0 {
			for m%p == 0 {
				m /= p
			}
			result -= result / p
		}
		p++
	}
	if m > 1 {
		result -= result / m
	}
	return result
}

// NumCuspsGamma0 returns the number of cusps of Gamma_0(N) without
// enumerating them: sum_{d|N} phi(gcd(d, N/d)).
func NumCuspsGamma0(n int64) int64 {
	var count int64
	for _, d := range divisors(n) {
		count += eulerPhi(gcd(d, n/d))
	}
	return count
}

// Cuspmake enumerates inequivalent cusps of Gamma_0(N) (Garvan's
// algorithm): infinity represents the class for denominator c = N; for
// every proper divisor c, fractions d/c with gcd(d,c)=1 are grouped by
// residue mod gcd(c, N/c).
func Cuspmake(n int64) ([]Cusp, error) {
	if n < 1 {
		return nil, qsymerr.Newf(qsymerr.InvariantViolation, "identity.Cuspmake", "N must be >= 1, got %d", n)
	}
	cusps := []Cusp{Infinity()}
	if n == 1 {
		return cusps, nil
	}
	for _, c := range divisors(n) {
		if c >= n {
			continue
		}
		gc := gcd(c, n/c)
		var seen []int64
		for d := int64(0); d < c; d++ {
			if gcd(d, c) != 1 {
				continue
			}
			r := d % gc
			if !containsI64(seen, r) {
				seen = append(seen, r)
				cusps = append(cusps, NewCusp(d, c))
			}
		}
	}
	return cusps, nil
}

// Cuspmake1 enumerates inequivalent cusps of Gamma_1(N). For N <= 2,
// -I lies in Gamma_1(N), so d/c and -d/c fold together.
func Cuspmake1(n int64) ([]Cusp, error) {
	if n < 1 {
		return nil, qsymerr.Newf(qsymerr.InvariantViolation, "identity.Cuspmake1", "N must be >= 1, got %d", n)
	}
	cusps := []Cusp{Infinity()}
	if n == 1 {
		return cusps, nil
	}
	for _, c := range divisors(n) {
		if c >= n {
			continue
		}
		gc := gcd(c, n)
		var seen []int64
		for d := int64(0); d < c; d++ {
			if gcd(d, c) != 1 {
				continue
			}
			r := d % gc
			if n <= 2 {
				rNeg := r
				if r != 0 {
					rNeg = gc - r
				}
				if !containsI64(seen, r) && !containsI64(seen, rNeg) {
					seen = append(seen, r)
					cusps = append(cusps, NewCusp(d, c))
				}
			} else if !containsI64(seen, r) {
				seen = append(seen, r)
				cusps = append(cusps, NewCusp(d, c))
			}
		}
	}
	return cusps, nil
}

func containsI64(s []int64, v int64) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
