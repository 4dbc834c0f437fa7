// Package numeric provides the arbitrary-precision Z (integer) and Q
// (rational) wrappers that back every atom in the expression arena and
// every coefficient in a formal power series.
//
// Z and Q are immutable value types: every operation returns a fresh
// value and never mutates its receiver or arguments. Q is always kept in
// lowest terms with a positive denominator; zero is uniquely 0/1. These
// properties are load-bearing for hash-consing (qsym/internal/expr) and
// must never be violated by a constructor or arithmetic result.
package numeric

import (
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/remyoudompheng/bigfft"
	"qsym/internal/qsymerr"
)

// bigfftWordThreshold is the operand size (in 64-bit words) above which
// multiplication dispatches to bigfft's FFT-based algorithm instead of
// math/big's schoolbook/Karatsuba multiply. Below this size bigfft's
// overhead is not worth paying; partition-count and prodmake coefficients
// only grow large enough to matter at high truncation orders.
const bigfftWordThreshold = 512

// Z is an arbitrary-precision signed integer.
type Z struct {
	v *big.Int
}

func zFrom(v *big.Int) Z { return Z{v: v} }

// ZeroZ is the additive identity.
func ZeroZ() Z { return Z{v: new(big.Int)} }

// OneZ is the multiplicative identity.
func OneZ() Z { return Z{v: big.NewInt(1)} }

// NewZ builds a Z from a machine integer.
func NewZ(n int64) Z { return Z{v: big.NewInt(n)} }

// ZFromBigInt copies a *big.Int into a Z.
func ZFromBigInt(v *big.Int) Z { return Z{v: new(big.Int).Set(v)} }

func (z Z) big() *big.Int {
	if z.v == nil {
		return new(big.Int)
	}
	return z.v
}

// BigInt returns a defensive copy of the underlying *big.Int.
func (z Z) BigInt() *big.Int { return new(big.Int).Set(z.big()) }

// IsZero reports whether z is the additive identity.
func (z Z) IsZero() bool { return z.big().Sign() == 0 }

// Sign returns -1, 0, or 1.
func (z Z) Sign() int { return z.big().Sign() }

// Add returns x + y.
func (x Z) Add(y Z) Z { return zFrom(new(big.Int).Add(x.big(), y.big())) }

// Sub returns x - y.
func (x Z) Sub(y Z) Z { return zFrom(new(big.Int).Sub(x.big(), y.big())) }

// Neg returns -x.
func (x Z) Neg() Z { return zFrom(new(big.Int).Neg(x.big())) }

// Mul returns x * y, using bigfft's FFT multiplication once both operands
// are large enough for it to pay off, else math/big's native Mul.
func (x Z) Mul(y Z) Z {
	a, b := x.big(), y.big()
	if len(a.Bits()) > bigfftWordThreshold && len(b.Bits()) > bigfftWordThreshold {
		return zFrom(bigfft.Mul(a, b))
	}
	return zFrom(new(big.Int).Mul(a, b))
}

// Quo returns x / y truncated toward zero (Go's big.Int.Quo semantics).
// Division by zero returns a qsymerr.DivisionByZero error.
func (x Z) Quo(y Z) (Z, error) {
	if y.IsZero() {
		return Z{}, qsymerr.New(qsymerr.DivisionByZero, "numeric.Z.Quo", "division by zero")
	}
	return zFrom(new(big.Int).Quo(x.big(), y.big())), nil
}

// Rem returns the truncating remainder of x / y.
func (x Z) Rem(y Z) (Z, error) {
	if y.IsZero() {
		return Z{}, qsymerr.New(qsymerr.DivisionByZero, "numeric.Z.Rem", "division by zero")
	}
	return zFrom(new(big.Int).Rem(x.big(), y.big())), nil
}

// PowU raises x to a non-negative integer exponent via repeated squaring
// (delegated to math/big, which already implements binary exponentiation).
func (x Z) PowU(exp uint64) Z {
	return zFrom(new(big.Int).Exp(x.big(), new(big.Int).SetUint64(exp), nil))
}

// Cmp returns -1, 0, or 1 as x is less than, equal to, or greater than y.
func (x Z) Cmp(y Z) int { return x.big().Cmp(y.big()) }

// Equals reports structural equality.
func (x Z) Equals(y Z) bool { return x.Cmp(y) == 0 }

// Hash returns a canonical hash: equal values always hash equally. The
// digest is over the big-endian absolute-value bytes plus an explicit
// sign discriminant, so +0 and -0 (impossible here, but defensively) and
// values differing only by sign never collide.
func (x Z) Hash() uint64 {
	return fnvBytes(x.big().Sign(), x.big().Bytes())
}

func (x Z) String() string { return x.big().String() }

// Humanize renders x with thousands separators, used by the rendering
// hooks' Unicode formatter (render.HumanizeRenderer) for large partition
// counts and the like. go-humanize's BigComma handles arbitrary-size
// values directly, unlike Comma which is limited to int64.
func (x Z) Humanize() string {
	return humanize.BigComma(x.big())
}
