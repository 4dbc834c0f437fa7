package qseries

import (
	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/symbol"
)

// PartitionCount computes p(n), the number of partitions of n, via the
// pentagonal number recurrence in O(n*sqrt(n)) time. Returns 0 for n<0
// and 1 for n==0.
func PartitionCount(n int64) numeric.Q {
	if n < 0 {
		return numeric.ZeroQ()
	}
	if n == 0 {
		return numeric.OneQ()
	}

	table := make([]numeric.Q, n+1)
	table[0] = numeric.OneQ()

	for i := int64(1); i <= n; i++ {
		sum := numeric.ZeroQ()
		k := int64(1)
		for {
			g1 := k * (3*k - 1) / 2
			if g1 > i {
				break
			}
			var sign numeric.Q
			if k%2 == 1 {
				sign = numeric.OneQ()
			} else {
				sign = numeric.OneQ().Neg()
			}
			sum = sum.Add(sign.Mul(table[i-g1]))

			g2 := k * (3*k + 1) / 2
			if g2 <= i {
				sum = sum.Add(sign.Mul(table[i-g2]))
			}
			k++
		}
		table[i] = sum
	}
	return table[n]
}

// PartitionGF computes sum_{n>=0} p(n)*q^n = 1/(q;q)_inf.
func PartitionGF(variable symbol.ID, truncation int64) (fps.Series, error) {
	gen := fps.EulerFunctionGenerator(variable, truncation)
	euler, err := gen.IntoSeries(truncation)
	if err != nil {
		return fps.Series{}, err
	}
	return fps.Invert(euler)
}

// DistinctPartsGF computes Q(q) = prod_{n>=1}(1+q^n) = (-q;q)_inf, the
// generating function for partitions into distinct parts (OEIS A000009).
func DistinctPartsGF(variable symbol.ID, truncation int64) (fps.Series, error) {
	gen := fps.QPochhammerInfGenerator(numeric.OneQ().Neg(), 1, variable, truncation)
	return gen.IntoSeries(truncation)
}

// OddPartsGF computes prod_{k>=0} 1/(1-q^{2k+1}), the generating
// function for partitions into odd parts. By Euler's theorem this
// equals DistinctPartsGF coefficient-by-coefficient.
func OddPartsGF(variable symbol.ID, truncation int64) (fps.Series, error) {
	product := fps.One(variable, truncation)
	for k := int64(0); 2*k+1 < truncation; k++ {
		exp := 2*k + 1
		factor := fps.FromCoeffs(variable, map[int64]numeric.Q{0: numeric.OneQ(), exp: numeric.OneQ().Neg()}, truncation)
		next, err := fps.Mul(product, factor)
		if err != nil {
			return fps.Series{}, err
		}
		product = next
	}
	return fps.Invert(product)
}

// BoundedPartsGF computes prod_{k=1}^{maxParts} 1/(1-q^k), the
// generating function for partitions with at most maxParts parts
// (equivalently, largest part <= maxParts). Returns 1 for maxParts<=0.
func BoundedPartsGF(maxParts int64, variable symbol.ID, truncation int64) (fps.Series, error) {
	if maxParts <= 0 {
		return fps.One(variable, truncation), nil
	}
	product := fps.One(variable, truncation)
	for k := int64(1); k <= maxParts; k++ {
		factor := fps.FromCoeffs(variable, map[int64]numeric.Q{0: numeric.OneQ(), k: numeric.OneQ().Neg()}, truncation)
		next, err := fps.Mul(product, factor)
		if err != nil {
			return fps.Series{}, err
		}
		product = next
	}
	return fps.Invert(product)
}
