package numeric

import (
	"math/big"

	"qsym/internal/qsymerr"
)

// Q is an arbitrary-precision rational, always stored in lowest terms
// with a positive denominator. Zero is uniquely 0/1.
type Q struct {
	v *big.Rat
}

func qFrom(v *big.Rat) Q { return Q{v: v} }

func (q Q) big() *big.Rat {
	if q.v == nil {
		return new(big.Rat)
	}
	return q.v
}

// ZeroQ is the additive identity, 0/1.
func ZeroQ() Q { return Q{v: new(big.Rat)} }

// OneQ is the multiplicative identity, 1/1.
func OneQ() Q { return Q{v: new(big.Rat).SetInt64(1)} }

// NewQ builds num/den, reducing to lowest terms with a positive
// denominator. Division by zero (den == 0) is a fatal error.
func NewQ(num, den int64) (Q, error) {
	if den == 0 {
		return Q{}, qsymerr.New(qsymerr.DivisionByZero, "numeric.NewQ", "zero denominator")
	}
	r := big.NewRat(num, den)
	return Q{v: r}, nil
}

// QFromZ lifts an integer Z into Q as Z/1.
func QFromZ(z Z) Q { return Q{v: new(big.Rat).SetInt(z.big())} }

// QFromBigRat copies a *big.Rat into Q, normalizing via big.Rat's own
// reduction (always on for big.Rat).
func QFromBigRat(v *big.Rat) Q { return Q{v: new(big.Rat).Set(v)} }

// IsZero reports whether q is 0/1.
func (q Q) IsZero() bool { return q.big().Sign() == 0 }

// IsInteger reports whether q's denominator is 1, i.e. it could be
// represented as an Integer atom per spec §3's invariant that rational
// atoms are never stored when the value is integer-valued.
func (q Q) IsInteger() bool { return q.big().IsInt() }

// Numer returns the numerator as Z.
func (q Q) Numer() Z { return ZFromBigInt(q.big().Num()) }

// Denom returns the denominator as Z (always positive).
func (q Q) Denom() Z { return ZFromBigInt(q.big().Denom()) }

// AsZ converts an integer-valued Q to Z. Panics if not integer-valued;
// callers must check IsInteger first (this mirrors the canonical
// constructors' responsibility to never store a non-reduced atom).
func (q Q) AsZ() Z {
	if !q.IsInteger() {
		panic("numeric.Q.AsZ: not integer-valued")
	}
	return ZFromBigInt(q.big().Num())
}

// Add returns x + y.
func (x Q) Add(y Q) Q { return qFrom(new(big.Rat).Add(x.big(), y.big())) }

// Sub returns x - y.
func (x Q) Sub(y Q) Q { return qFrom(new(big.Rat).Sub(x.big(), y.big())) }

// Neg returns -x.
func (x Q) Neg() Q { return qFrom(new(big.Rat).Neg(x.big())) }

// Mul returns x * y.
func (x Q) Mul(y Q) Q { return qFrom(new(big.Rat).Mul(x.big(), y.big())) }

// Quo returns x / y. Division by zero is a fatal error.
func (x Q) Quo(y Q) (Q, error) {
	if y.IsZero() {
		return Q{}, qsymerr.New(qsymerr.DivisionByZero, "numeric.Q.Quo", "division by zero")
	}
	return qFrom(new(big.Rat).Quo(x.big(), y.big())), nil
}

// Inv returns 1/x. Division by zero is a fatal error.
func (x Q) Inv() (Q, error) {
	if x.IsZero() {
		return Q{}, qsymerr.New(qsymerr.DivisionByZero, "numeric.Q.Inv", "inverse of zero")
	}
	return qFrom(new(big.Rat).Inv(x.big())), nil
}

// PowInt raises x to an integer power (positive, negative, or zero).
// Negative exponents invert first; zero-to-the-zero is defined as one.
func (x Q) PowInt(exp int64) (Q, error) {
	if exp == 0 {
		return OneQ(), nil
	}
	base := x
	n := exp
	if n < 0 {
		inv, err := x.Inv()
		if err != nil {
			return Q{}, err
		}
		base = inv
		n = -n
	}
	result := OneQ()
	power := base
	e := uint64(n)
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(power)
		}
		e >>= 1
		if e > 0 {
			power = power.Mul(power)
		}
	}
	return result, nil
}

// Cmp returns -1, 0, or 1 as x is less than, equal to, or greater than y.
func (x Q) Cmp(y Q) int { return x.big().Cmp(y.big()) }

// Equals reports value equality (both sides are always stored reduced,
// so this is equivalent to comparing numerator/denominator pairs).
func (x Q) Equals(y Q) bool { return x.Cmp(y) == 0 }

// Hash returns a canonical hash over the reduced numerator/denominator
// pair. Equal Q values (spec property #4) always hash equally.
func (x Q) Hash() uint64 {
	num := x.big().Num()
	den := x.big().Denom()
	h := fnvBytes(num.Sign(), num.Bytes())
	// Mix in the denominator's bytes (always positive for big.Rat).
	for _, b := range den.Bytes() {
		h ^= uint64(b)
		h *= 1099511628211
	}
	return h
}

func (x Q) String() string {
	if x.IsInteger() {
		return x.big().Num().String()
	}
	return x.big().RatString()
}

// Humanize renders x with a comma-grouped numerator/denominator, called
// directly by render.HumanizeRenderer's Unicode path.
func (x Q) Humanize() string {
	if x.IsInteger() {
		return x.Numer().Humanize()
	}
	return x.Numer().Humanize() + "/" + x.Denom().Humanize()
}
