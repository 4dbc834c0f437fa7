// Package prodmake implements Andrews' algorithm (spec §4.8): recovering
// infinite product exponents from formal power series coefficients.
package prodmake

import (
	"sort"

	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/qsymerr"
)

// Form is the result of Prodmake: exponents a_n in
// prod_{n>=1} (1-q^n)^{-a_n}. Only nonzero exponents are stored.
// Positive a_n means (1-q^n) appears in the denominator; negative means
// it appears in the numerator.
type Form struct {
	Exponents map[int64]numeric.Q
	TermsUsed int64
}

// SortedNs returns the keys of Exponents in ascending order.
func (f Form) SortedNs() []int64 {
	ns := make([]int64, 0, len(f.Exponents))
	for n := range f.Exponents {
		ns = append(ns, n)
	}
	sort.Slice(ns, func(i, j int) bool { return ns[i] < ns[j] })
	return ns
}

// mobius computes the Mobius function mu(n) by trial division. Valid
// for the small n encountered in prodmake (n < truncation order).
func mobius(n int64) int64 {
	if n == 1 {
		return 1
	}
	remaining := n
	numFactors := int64(0)
	for p := int64(2); p*p <= remaining; p++ {
		if remaining%p == 0 {
			remaining /= p
			numFactors++
			if remaining%p == 0 {
				return 0
			}
		}
	}
	if remaining > 1 {
		numFactors++
	}
	if numFactors%2 == 0 {
		return 1
	}
	return -1
}

// divisors returns all positive divisors of n in ascending order.
func divisors(n int64) []int64 {
	var small, large []int64
	for d := int64(1); d*d <= n; d++ {
		if n%d == 0 {
			small = append(small, d)
			if d != n/d {
				large = append(large, n/d)
			}
		}
	}
	for i, j := 0, len(large)-1; i < j; i, j = i+1, j-1 {
		large[i], large[j] = large[j], large[i]
	}
	return append(small, large...)
}

// Prodmake recovers exponents a_n such that
// f(q) = prod_{n>=1} (1-q^n)^{-a_n} + O(q^T), given f = c*q^k + higher
// order terms with c != 0. The series is normalized by stripping its
// minimum-order shift and dividing by its leading coefficient before
// the logarithmic-derivative recurrence runs.
func Prodmake(f fps.Series, maxN int64) (Form, error) {
	if f.IsZero() {
		return Form{}, qsymerr.New(qsymerr.InvariantViolation, "prodmake.Prodmake", "cannot analyze the zero series")
	}

	effectiveMax := maxN
	if f.TruncationOrder()-1 < effectiveMax {
		effectiveMax = f.TruncationOrder() - 1
	}
	if effectiveMax < 1 {
		return Form{Exponents: map[int64]numeric.Q{}, TermsUsed: 0}, nil
	}

	minOrd, ok := f.MinOrder()
	if !ok {
		minOrd = 0
	}
	b0 := f.CoeffUnchecked(minOrd)
	if b0.IsZero() {
		return Form{}, qsymerr.New(qsymerr.InvariantViolation, "prodmake.Prodmake", "leading coefficient must be nonzero")
	}
	invB0, err := b0.Inv()
	if err != nil {
		return Form{}, err
	}

	b := func(n int64) numeric.Q {
		if minOrd+n >= f.TruncationOrder() {
			return numeric.ZeroQ()
		}
		return f.CoeffUnchecked(minOrd + n).Mul(invB0)
	}

	// Step 1: c_n = n*b_n - sum_{j=1}^{n-1} c_j*b_{n-j}
	c := make(map[int64]numeric.Q)
	for n := int64(1); n <= effectiveMax; n++ {
		bn := b(n)
		nRat := numeric.QFromZ(numeric.NewZ(n))
		val := nRat.Mul(bn)
		for j := int64(1); j < n; j++ {
			cj, ok := c[j]
			if !ok {
				continue
			}
			bnmj := b(n - j)
			if bnmj.IsZero() {
				continue
			}
			val = val.Sub(cj.Mul(bnmj))
		}
		if !val.IsZero() {
			c[n] = val
		}
	}

	// Step 2: n*a_n = sum_{d|n} mu(n/d)*c_d
	exponents := make(map[int64]numeric.Q)
	for n := int64(1); n <= effectiveMax; n++ {
		sum := numeric.ZeroQ()
		for _, d := range divisors(n) {
			cd, ok := c[d]
			if !ok {
				continue
			}
			muVal := mobius(n / d)
			if muVal == 0 {
				continue
			}
			muRat := numeric.QFromZ(numeric.NewZ(muVal))
			sum = sum.Add(muRat.Mul(cd))
		}
		if !sum.IsZero() {
			nRat := numeric.QFromZ(numeric.NewZ(n))
			aN, err := sum.Quo(nRat)
			if err != nil {
				return Form{}, err
			}
			exponents[n] = aN
		}
	}

	return Form{Exponents: exponents, TermsUsed: effectiveMax}, nil
}
