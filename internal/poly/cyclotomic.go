package poly

import (
	"sort"

	"qsym/internal/qsymerr"
)

func cyclotomicDivisors(n int) []int {
	if n == 0 {
		return nil
	}
	var divs []int
	for i := 1; i*i <= n; i++ {
		if n%i == 0 {
			divs = append(divs, i)
			if i != n/i {
				divs = append(divs, n/i)
			}
		}
	}
	sort.Ints(divs)
	return divs
}

func xNMinusOne(n int) Poly {
	coeffs := make([]int64, n+1)
	coeffs[0] = -1
	coeffs[n] = 1
	return FromInts(coeffs)
}

// Cyclotomic computes the n-th cyclotomic polynomial Phi_n(x) via
// recursive division: Phi_n = (x^n-1) / prod_{d|n, d<n} Phi_d. Every n
// satisfies prod_{d|n} Phi_d = x^n - 1.
func Cyclotomic(n int) (Poly, error) {
	if n <= 0 {
		return Poly{}, qsymerr.Newf(qsymerr.InvariantViolation, "poly.Cyclotomic", "n must be positive, got %d", n)
	}
	if n == 1 {
		return FromInts([]int64{-1, 1}), nil
	}

	result := xNMinusOne(n)
	for _, d := range cyclotomicDivisors(n) {
		if d == n {
			continue
		}
		phiD, err := Cyclotomic(d)
		if err != nil {
			return Poly{}, err
		}
		q, r, err := DivRem(result, phiD)
		if err != nil {
			return Poly{}, err
		}
		if !r.IsZero() {
			return Poly{}, qsymerr.Newf(qsymerr.InvariantViolation, "poly.Cyclotomic",
				"Phi_%d did not divide x^%d-1 exactly", d, n)
		}
		result = q
	}
	return result, nil
}

// cyclotomicProductCheck is exposed for tests verifying the invariant
// prod_{d|n} Phi_d = x^n - 1.
func cyclotomicProductCheck(n int) (Poly, error) {
	product := One()
	for _, d := range cyclotomicDivisors(n) {
		phiD, err := Cyclotomic(d)
		if err != nil {
			return Poly{}, err
		}
		product = Mul(product, phiD)
	}
	return product, nil
}
