// Package poly implements a dense univariate polynomial layer over Q
// (spec §4.12): arithmetic, subresultant-PRS GCD, resultants, and
// cyclotomic polynomials. Consumed by relation discovery.
package poly

import (
	"strings"

	"qsym/internal/numeric"
	"qsym/internal/qsymerr"
)

// Poly is a dense polynomial over Q, coefficients indexed by exponent
// with coeffs[i] the coefficient of x^i. The zero polynomial is the
// empty slice; there is no trailing-zero padding.
type Poly struct {
	coeffs []numeric.Q
}

// FromCoeffs builds a polynomial from coeffs[i] = coefficient of x^i,
// trimming trailing zeros.
func FromCoeffs(coeffs []numeric.Q) Poly {
	n := len(coeffs)
	for n > 0 && coeffs[n-1].IsZero() {
		n--
	}
	return Poly{coeffs: append([]numeric.Q(nil), coeffs[:n]...)}
}

// FromInts builds a polynomial from plain integer coefficients.
func FromInts(coeffs []int64) Poly {
	qs := make([]numeric.Q, len(coeffs))
	for i, c := range coeffs {
		qs[i] = numeric.QFromZ(numeric.NewZ(c))
	}
	return FromCoeffs(qs)
}

// Zero is the zero polynomial.
func Zero() Poly { return Poly{} }

// One is the constant polynomial 1.
func One() Poly { return Constant(numeric.OneQ()) }

// Constant builds the degree-0 polynomial c (or Zero if c is zero).
func Constant(c numeric.Q) Poly {
	if c.IsZero() {
		return Zero()
	}
	return Poly{coeffs: []numeric.Q{c}}
}

// Monomial builds the polynomial c*x^n.
func Monomial(c numeric.Q, n int) Poly {
	if c.IsZero() {
		return Zero()
	}
	coeffs := make([]numeric.Q, n+1)
	for i := range coeffs {
		coeffs[i] = numeric.ZeroQ()
	}
	coeffs[n] = c
	return Poly{coeffs: coeffs}
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.coeffs) == 0 }

// IsConstant reports whether p has degree <= 0.
func (p Poly) IsConstant() bool { return len(p.coeffs) <= 1 }

// IsOne reports whether p is the constant polynomial 1.
func (p Poly) IsOne() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].Equals(numeric.OneQ())
}

// Degree returns the degree and true, or (0, false) for the zero
// polynomial (which has no degree).
func (p Poly) Degree() (int, bool) {
	if p.IsZero() {
		return 0, false
	}
	return len(p.coeffs) - 1, true
}

// Coeff returns the coefficient of x^i (zero if i is out of range).
func (p Poly) Coeff(i int) numeric.Q {
	if i < 0 || i >= len(p.coeffs) {
		return numeric.ZeroQ()
	}
	return p.coeffs[i]
}

// LeadingCoeff returns the coefficient of the highest-degree term.
// Fails on the zero polynomial, which has no leading coefficient.
func (p Poly) LeadingCoeff() (numeric.Q, error) {
	if p.IsZero() {
		return numeric.Q{}, qsymerr.New(qsymerr.InvariantViolation, "poly.Poly.LeadingCoeff", "zero polynomial has no leading coefficient")
	}
	return p.coeffs[len(p.coeffs)-1], nil
}

// Add returns p + r.
func Add(p, r Poly) Poly {
	n := len(p.coeffs)
	if len(r.coeffs) > n {
		n = len(r.coeffs)
	}
	out := make([]numeric.Q, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coeff(i).Add(r.Coeff(i))
	}
	return FromCoeffs(out)
}

// Sub returns p - r.
func Sub(p, r Poly) Poly { return Add(p, Negate(r)) }

// Negate returns -p.
func Negate(p Poly) Poly {
	out := make([]numeric.Q, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Neg()
	}
	return Poly{coeffs: out}
}

// ScalarMul returns c*p.
func ScalarMul(c numeric.Q, p Poly) Poly {
	if c.IsZero() {
		return Zero()
	}
	out := make([]numeric.Q, len(p.coeffs))
	for i, v := range p.coeffs {
		out[i] = c.Mul(v)
	}
	return FromCoeffs(out)
}

// ScalarDiv returns p/c. Division by zero is a fatal error.
func ScalarDiv(p Poly, c numeric.Q) (Poly, error) {
	inv, err := c.Inv()
	if err != nil {
		return Poly{}, err
	}
	return ScalarMul(inv, p), nil
}

// Mul returns p*r.
func Mul(p, r Poly) Poly {
	if p.IsZero() || r.IsZero() {
		return Zero()
	}
	out := make([]numeric.Q, len(p.coeffs)+len(r.coeffs)-1)
	for i := range out {
		out[i] = numeric.ZeroQ()
	}
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range r.coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return FromCoeffs(out)
}

// DivRem computes the Euclidean quotient and remainder of p divided by
// d over Q: p = q*d + r with deg(r) < deg(d). Fails if d is zero.
func DivRem(p, d Poly) (q, r Poly, err error) {
	if d.IsZero() {
		return Poly{}, Poly{}, qsymerr.New(qsymerr.DivisionByZero, "poly.DivRem", "division by the zero polynomial")
	}
	degD, _ := d.Degree()
	lcD, _ := d.LeadingCoeff()
	invLcD, err := lcD.Inv()
	if err != nil {
		return Poly{}, Poly{}, err
	}

	remainder := append([]numeric.Q(nil), p.coeffs...)
	var quotient []numeric.Q

	for {
		rp := FromCoeffs(remainder)
		degR, ok := rp.Degree()
		if !ok || degR < degD {
			break
		}
		shift := degR - degD
		coeff := rp.Coeff(degR).Mul(invLcD)
		for len(quotient) <= shift {
			quotient = append(quotient, numeric.ZeroQ())
		}
		quotient[shift] = coeff

		for i, dc := range d.coeffs {
			remainder[i+shift] = remainder[i+shift].Sub(coeff.Mul(dc))
		}
	}

	return FromCoeffs(quotient), FromCoeffs(remainder), nil
}

// PseudoRem computes the pseudo-remainder of p by d: if delta =
// deg(p)-deg(d) and lc(d) is the leading coefficient of d, then
// lc(d)^(delta+1) * p = q*d + pseudoRem for some quotient q, keeping
// intermediate coefficients integral during GCD computation.
func (p Poly) PseudoRem(d Poly) (Poly, error) {
	degP, okP := p.Degree()
	degD, okD := d.Degree()
	if !okD {
		return Poly{}, qsymerr.New(qsymerr.DivisionByZero, "poly.Poly.PseudoRem", "division by the zero polynomial")
	}
	if !okP || degP < degD {
		return p, nil
	}
	delta := degP - degD
	lcD, _ := d.LeadingCoeff()
	factorPow, err := lcD.PowInt(int64(delta + 1))
	if err != nil {
		return Poly{}, err
	}
	scaled := ScalarMul(factorPow, p)
	_, r, err := pseudoDivRem(scaled, d)
	return r, err
}

// pseudoDivRem performs ordinary polynomial division assuming the
// dividend was pre-scaled so the quotient's coefficients need no
// further division by lc(d) beyond what PseudoRem already arranged.
func pseudoDivRem(p, d Poly) (Poly, Poly, error) {
	degD, _ := d.Degree()
	lcD, _ := d.LeadingCoeff()

	remainder := append([]numeric.Q(nil), p.coeffs...)
	var quotient []numeric.Q

	for {
		rp := FromCoeffs(remainder)
		degR, ok := rp.Degree()
		if !ok || degR < degD {
			break
		}
		shift := degR - degD
		numerCoeff := rp.Coeff(degR)
		coeff, err := numerCoeff.Quo(lcD)
		if err != nil {
			return Poly{}, Poly{}, err
		}
		for len(quotient) <= shift {
			quotient = append(quotient, numeric.ZeroQ())
		}
		quotient[shift] = coeff
		for i, dc := range d.coeffs {
			remainder[i+shift] = remainder[i+shift].Sub(coeff.Mul(dc))
		}
	}
	return FromCoeffs(quotient), FromCoeffs(remainder), nil
}

// MakeMonic returns p/lc(p). Returns p unchanged if p is zero.
func (p Poly) MakeMonic() (Poly, error) {
	if p.IsZero() {
		return p, nil
	}
	lc, _ := p.LeadingCoeff()
	return ScalarDiv(p, lc)
}

// Content returns p's leading coefficient, the scalar PrimitivePart
// divides out. Over the field Q a true integral content is vacuous;
// this normalizes by the leading term instead.
func (p Poly) Content() (numeric.Q, error) {
	if p.IsZero() {
		return numeric.OneQ(), nil
	}
	lc, _ := p.LeadingCoeff()
	return lc, nil
}

// PrimitivePart returns p divided by its content (its leading
// coefficient), keeping GCD intermediate coefficients bounded.
func (p Poly) PrimitivePart() Poly {
	if p.IsZero() {
		return p
	}
	lc, _ := p.LeadingCoeff()
	out, err := ScalarDiv(p, lc)
	if err != nil {
		return p
	}
	return out
}

func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c.IsZero() {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		first = false
		switch i {
		case 0:
			b.WriteString(c.String())
		case 1:
			b.WriteString(c.String() + "*x")
		default:
			b.WriteString(c.String() + "*x^")
			b.WriteString(itoa(i))
		}
	}
	return b.String()
}

func itoa(n int) string {
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
