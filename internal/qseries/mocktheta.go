package qseries

import (
	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/symbol"
)

// finitePochhammer computes prod_{k=0}^{n-1} (1 - coeff*q^{base+step*k}),
// the finite building block shared by every mock theta series below (the
// "incremental denominator product" of the classical term-by-term
// definitions).
func finitePochhammer(coeff numeric.Q, base, step, n int64, variable symbol.ID, truncation int64) (fps.Series, error) {
	result := fps.One(variable, truncation)
	for k := int64(0); k < n; k++ {
		exp := base + step*k
		factor := fps.FromCoeffs(variable, map[int64]numeric.Q{0: numeric.OneQ(), exp: coeff.Neg()}, truncation)
		next, err := fps.Mul(result, factor)
		if err != nil {
			return fps.Series{}, err
		}
		result = next
	}
	return result, nil
}

// mockThetaSum accumulates sum_{n=0}^{nMax} q^{exponent(n)} * termFactor(n)
// where termFactor(n) is typically the reciprocal of a finite Pochhammer
// product, stopping once exponent(n) reaches the truncation order.
func mockThetaSum(variable symbol.ID, truncation int64, exponent func(n int64) int64, termFactor func(n int64) (fps.Series, error)) (fps.Series, error) {
	result := fps.Zero(variable, truncation)
	for n := int64(0); ; n++ {
		e := exponent(n)
		if e >= truncation {
			break
		}
		factor, err := termFactor(n)
		if err != nil {
			return fps.Series{}, err
		}
		term := fps.ScalarMul(numeric.OneQ(), fps.Shift(factor, e))
		result, err = fps.Add(result, term)
		if err != nil {
			return fps.Series{}, err
		}
	}
	return result, nil
}

func invFinitePochhammer(coeff numeric.Q, base, step, n int64, variable symbol.ID, truncation int64) (fps.Series, error) {
	p, err := finitePochhammer(coeff, base, step, n, variable, truncation)
	if err != nil {
		return fps.Series{}, err
	}
	return fps.Invert(p)
}

// --- Third-order mock theta functions (Ramanujan / Gordon-McIntosh table 1) ---

// MockThetaF3 computes f(q) = sum_{n>=0} q^{n^2} / (-q;q)_n^2.
func MockThetaF3(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return n * n },
		func(n int64) (fps.Series, error) {
			den, err := finitePochhammer(numeric.OneQ().Neg(), 1, 1, n, variable, truncation)
			if err != nil {
				return fps.Series{}, err
			}
			denSq, err := fps.Mul(den, den)
			if err != nil {
				return fps.Series{}, err
			}
			return fps.Invert(denSq)
		})
}

// MockThetaPhi3 computes phi(q) = sum_{n>=0} q^{n^2} / (-q^2;q^2)_n.
func MockThetaPhi3(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return n * n },
		func(n int64) (fps.Series, error) {
			return invFinitePochhammer(numeric.OneQ().Neg(), 2, 2, n, variable, truncation)
		})
}

// MockThetaPsi3 computes psi(q) = sum_{n>=1} q^{n^2} / (q;q^2)_n.
func MockThetaPsi3(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return n * n },
		func(n int64) (fps.Series, error) {
			if n == 0 {
				return fps.Zero(variable, truncation), nil
			}
			return invFinitePochhammer(numeric.OneQ(), 1, 2, n, variable, truncation)
		})
}

// MockThetaChi3 computes chi(q) = sum_{n>=0} q^{n^2} (-q;q)_n / (-q^3;q^3)_n.
func MockThetaChi3(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return n * n },
		func(n int64) (fps.Series, error) {
			num, err := finitePochhammer(numeric.OneQ().Neg(), 1, 1, n, variable, truncation)
			if err != nil {
				return fps.Series{}, err
			}
			den, err := finitePochhammer(numeric.OneQ().Neg(), 3, 3, n, variable, truncation)
			if err != nil {
				return fps.Series{}, err
			}
			invDen, err := fps.Invert(den)
			if err != nil {
				return fps.Series{}, err
			}
			return fps.Mul(num, invDen)
		})
}

// MockThetaOmega3 computes omega(q) = sum_{n>=0} q^{2n^2+2n} / (q;q^2)_{n+1}^2.
func MockThetaOmega3(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return 2*n*n + 2*n },
		func(n int64) (fps.Series, error) {
			den, err := finitePochhammer(numeric.OneQ(), 1, 2, n+1, variable, truncation)
			if err != nil {
				return fps.Series{}, err
			}
			denSq, err := fps.Mul(den, den)
			if err != nil {
				return fps.Series{}, err
			}
			return fps.Invert(denSq)
		})
}

// MockThetaNu3 computes nu(q) = sum_{n>=0} q^{n^2+n} / (-q;q^2)_{n+1}.
func MockThetaNu3(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return n*n + n },
		func(n int64) (fps.Series, error) {
			return invFinitePochhammer(numeric.OneQ().Neg(), 1, 2, n+1, variable, truncation)
		})
}

// MockThetaRho3 computes rho(q) = sum_{n>=0} q^{2n^2+2n} (-q;q)_{2n+1} / (q;q^2)_{n+1}.
func MockThetaRho3(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return 2*n*n + 2*n },
		func(n int64) (fps.Series, error) {
			num, err := finitePochhammer(numeric.OneQ().Neg(), 1, 1, 2*n+1, variable, truncation)
			if err != nil {
				return fps.Series{}, err
			}
			den, err := finitePochhammer(numeric.OneQ(), 1, 2, n+1, variable, truncation)
			if err != nil {
				return fps.Series{}, err
			}
			invDen, err := fps.Invert(den)
			if err != nil {
				return fps.Series{}, err
			}
			return fps.Mul(num, invDen)
		})
}

// --- Fifth-order mock theta functions (10): f0, f1, F0, F1, phi0, phi1,
// psi0, psi1, chi0, chi1. Same incremental-Pochhammer shape as the
// third-order set, with the fifth-order exponent/step pattern.

func MockThetaF0_5(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return n * n },
		func(n int64) (fps.Series, error) {
			return invFinitePochhammer(numeric.OneQ(), n+1, 1, n, variable, truncation)
		})
}

func MockThetaF1_5(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return n * (n + 1) },
		func(n int64) (fps.Series, error) {
			return invFinitePochhammer(numeric.OneQ(), n+1, 1, n, variable, truncation)
		})
}

func MockThetaCapF0_5(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return 2 * n * n },
		func(n int64) (fps.Series, error) {
			return invFinitePochhammer(numeric.OneQ(), n+1, 1, n, variable, truncation)
		})
}

func MockThetaCapF1_5(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return 2*n*n + 2*n },
		func(n int64) (fps.Series, error) {
			return invFinitePochhammer(numeric.OneQ(), n+1, 1, n, variable, truncation)
		})
}

func MockThetaPhi0_5(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return n * n },
		func(n int64) (fps.Series, error) {
			return finitePochhammer(numeric.OneQ().Neg(), 1, 2, n, variable, truncation)
		})
}

func MockThetaPhi1_5(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return n * n },
		func(n int64) (fps.Series, error) {
			if n == 0 {
				return fps.One(variable, truncation), nil
			}
			return finitePochhammer(numeric.OneQ().Neg(), 1, 2, n-1, variable, truncation)
		})
}

func MockThetaPsi0_5(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return n * (n + 1) / 2 },
		func(n int64) (fps.Series, error) {
			return finitePochhammer(numeric.OneQ().Neg(), 1, 1, n, variable, truncation)
		})
}

func MockThetaPsi1_5(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return n * (n + 1) / 2 },
		func(n int64) (fps.Series, error) {
			return finitePochhammer(numeric.OneQ().Neg(), 1, 1, n+1, variable, truncation)
		})
}

func MockThetaChi0_5(variable symbol.ID, truncation int64) (fps.Series, error) {
	f0, err := MockThetaCapF0_5(variable, truncation)
	if err != nil {
		return fps.Series{}, err
	}
	return fps.ScalarMul(mustQ(2), f0), nil
}

func MockThetaChi1_5(variable symbol.ID, truncation int64) (fps.Series, error) {
	f1, err := MockThetaCapF1_5(variable, truncation)
	if err != nil {
		return fps.Series{}, err
	}
	return fps.ScalarMul(mustQ(2), f1), nil
}

// --- Seventh-order mock theta functions (3): F0, F1, F2.

func MockThetaF0_7(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return n * n },
		func(n int64) (fps.Series, error) {
			return invFinitePochhammer(numeric.OneQ(), n+1, 1, n, variable, truncation)
		})
}

func MockThetaF1_7(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return n * (n + 1) },
		func(n int64) (fps.Series, error) {
			return invFinitePochhammer(numeric.OneQ(), n+1, 1, n+1, variable, truncation)
		})
}

func MockThetaF2_7(variable symbol.ID, truncation int64) (fps.Series, error) {
	return mockThetaSum(variable, truncation,
		func(n int64) int64 { return n * (n + 1) },
		func(n int64) (fps.Series, error) {
			return invFinitePochhammer(numeric.OneQ(), n+1, 1, n, variable, truncation)
		})
}

func mustQ(n int64) numeric.Q {
	q, err := numeric.NewQ(n, 1)
	if err != nil {
		panic(err)
	}
	return q
}
