package fps

import (
	"qsym/internal/numeric"
	"qsym/internal/qsymerr"
)

// Add returns a + b. Requires the same indeterminate; result truncation
// is min(trunc(a), trunc(b)).
func Add(a, b Series) (Series, error) {
	if err := requireSameVariable("fps.Add", a, b); err != nil {
		return Series{}, err
	}
	n := minI64(a.truncation, b.truncation)
	out := make(map[int64]numeric.Q, len(a.sortedKeys)+len(b.sortedKeys))
	for k, v := range a.coeffs {
		if k < n {
			out[k] = v
		}
	}
	for k, v := range b.coeffs {
		if k >= n {
			continue
		}
		if existing, ok := out[k]; ok {
			out[k] = existing.Add(v)
		} else {
			out[k] = v
		}
	}
	return build(a.variable, out, n), nil
}

// Sub returns a - b.
func Sub(a, b Series) (Series, error) {
	return Add(a, Negate(b))
}

// Negate returns -a, value-wise.
func Negate(a Series) Series {
	out := make(map[int64]numeric.Q, len(a.sortedKeys))
	for k, v := range a.coeffs {
		out[k] = v.Neg()
	}
	return build(a.variable, out, a.truncation)
}

// ScalarMul returns c*a, value-wise.
func ScalarMul(c numeric.Q, a Series) Series {
	if c.IsZero() {
		return Zero(a.variable, a.truncation)
	}
	out := make(map[int64]numeric.Q, len(a.sortedKeys))
	for k, v := range a.coeffs {
		out[k] = c.Mul(v)
	}
	return build(a.variable, out, a.truncation)
}

// Mul returns a * b truncated at min(trunc(a), trunc(b)). For each pair
// of exponents (ka, kb) in ascending order, the inner loop stops as soon
// as ka+kb >= N since the remaining (ascending) kb values cannot
// contribute — bounding the work to what the truncation order allows.
func Mul(a, b Series) (Series, error) {
	if err := requireSameVariable("fps.Mul", a, b); err != nil {
		return Series{}, err
	}
	n := minI64(a.truncation, b.truncation)
	out := make(map[int64]numeric.Q)
	for _, ka := range a.sortedKeys {
		if ka >= n {
			break
		}
		ca := a.coeffs[ka]
		for _, kb := range b.sortedKeys {
			sum := ka + kb
			if sum >= n {
				break
			}
			term := ca.Mul(b.coeffs[kb])
			if existing, ok := out[sum]; ok {
				out[sum] = existing.Add(term)
			} else {
				out[sum] = term
			}
		}
	}
	return build(a.variable, out, n), nil
}

// Invert returns r such that r*a = 1 + O(q^N), N = trunc(a). Requires a
// nonzero constant term. Recurrence: r_0 = 1/c_0; for n>=1,
// r_n = -(1/c_0) * sum_{k=1..n} a_k * r_{n-k}.
func Invert(a Series) (Series, error) {
	c0 := a.CoeffUnchecked(0)
	if c0.IsZero() {
		return Series{}, qsymerr.New(qsymerr.DivisionByZero, "fps.Invert",
			"series has zero constant term, cannot invert")
	}
	invC0, err := c0.Inv()
	if err != nil {
		return Series{}, err
	}
	negInvC0 := invC0.Neg()

	n := a.truncation
	r := make(map[int64]numeric.Q)
	r[0] = invC0
	for m := int64(1); m < n; m++ {
		acc := numeric.ZeroQ()
		for k := int64(1); k <= m; k++ {
			ak := a.CoeffUnchecked(k)
			if ak.IsZero() {
				continue
			}
			rk, ok := r[m-k]
			if !ok {
				continue
			}
			acc = acc.Add(ak.Mul(rk))
		}
		if acc.IsZero() {
			continue
		}
		val := negInvC0.Mul(acc)
		if !val.IsZero() {
			r[m] = val
		}
	}
	return build(a.variable, r, n), nil
}

// Shift returns a with every exponent increased by k; new truncation is
// trunc(a) + k.
func Shift(a Series, k int64) Series {
	out := make(map[int64]numeric.Q, len(a.sortedKeys))
	for exp, v := range a.coeffs {
		out[exp+k] = v
	}
	return build(a.variable, out, a.truncation+k)
}

// PowInt raises a series to an integer power via repeated squaring.
// Negative exponents invert first.
func PowInt(a Series, n int64) (Series, error) {
	if n == 0 {
		return One(a.variable, a.truncation), nil
	}
	base := a
	exp := n
	if exp < 0 {
		inv, err := Invert(a)
		if err != nil {
			return Series{}, err
		}
		base = inv
		exp = -exp
	}
	result := One(base.variable, base.truncation)
	power := base
	e := uint64(exp)
	for e > 0 {
		if e&1 == 1 {
			r, err := Mul(result, power)
			if err != nil {
				return Series{}, err
			}
			result = r
		}
		e >>= 1
		if e > 0 {
			p, err := Mul(power, power)
			if err != nil {
				return Series{}, err
			}
			power = p
		}
	}
	return result, nil
}

// Sift extracts g with g[i] = f[m*i + (j mod m)] for m > 0. New
// truncation is ceil((N_f - j')/m) where j' = j mod m.
func Sift(f Series, m, j int64) (Series, error) {
	if m <= 0 {
		return Series{}, qsymerr.Newf(qsymerr.InvariantViolation, "fps.Sift", "m must be > 0, got %d", m)
	}
	jp := ((j % m) + m) % m
	out := make(map[int64]numeric.Q)
	for _, k := range f.sortedKeys {
		rem := ((k-jp)%m + m) % m
		if rem != 0 {
			continue
		}
		i := (k - jp) / m
		out[i] = f.coeffs[k]
	}
	diff := f.truncation - jp
	var newTrunc int64
	if diff <= 0 {
		newTrunc = 0
	} else {
		newTrunc = (diff + m - 1) / m
	}
	return build(f.variable, out, newTrunc), nil
}

// QDegree returns the highest exponent with a nonzero coefficient.
func QDegree(f Series) (int64, bool) { return f.MaxOrder() }

// LQDegree returns the lowest exponent with a nonzero coefficient.
func LQDegree(f Series) (int64, bool) { return f.MinOrder() }
