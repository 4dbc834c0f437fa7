package identity

import (
	"strconv"
	"strings"

	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/qseries"
	"qsym/internal/qsymerr"
	"qsym/internal/symbol"
)

// JacFactor is a single JAC(a,b)^exponent factor, requiring 0 < a < b.
type JacFactor struct {
	A        int64
	B        int64
	Exponent int64
}

// NewJacFactor validates 0 < a < b before constructing a JacFactor.
func NewJacFactor(a, b, exponent int64) (JacFactor, error) {
	if a <= 0 {
		return JacFactor{}, qsymerr.Newf(qsymerr.InvariantViolation, "identity.NewJacFactor", "a must be > 0, got %d", a)
	}
	if a >= b {
		return JacFactor{}, qsymerr.Newf(qsymerr.InvariantViolation, "identity.NewJacFactor", "a must be < b, got a=%d, b=%d", a, b)
	}
	return JacFactor{A: a, B: b, Exponent: exponent}, nil
}

// IsValid reports whether the factor's parameters satisfy 0 < a < b.
func (f JacFactor) IsValid() bool { return f.A > 0 && f.A < f.B }

// JacExpression represents scalar * q^{q_shift} * prod_i JAC(a_i,b_i)^{e_i},
// the Jacobi-triple-product analogue of EtaExpression: an algebraic form
// that is not expanded to a series until ToSeries is called.
type JacExpression struct {
	Scalar  numeric.Q
	QShift  numeric.Q
	Factors []JacFactor
}

// NewJacExpression builds a JacExpression, rejecting any invalid factor.
func NewJacExpression(scalar, qShift numeric.Q, factors []JacFactor) (JacExpression, error) {
	for _, f := range factors {
		if !f.IsValid() {
			return JacExpression{}, qsymerr.Newf(qsymerr.InvariantViolation, "identity.NewJacExpression",
				"factor JAC(%d,%d) violates 0 < a < b", f.A, f.B)
		}
	}
	return JacExpression{Scalar: scalar, QShift: qShift, Factors: append([]JacFactor(nil), factors...)}, nil
}

// SingleJac builds JAC(a,b)^1 with scalar 1 and q-shift 0.
func SingleJac(a, b int64) (JacExpression, error) {
	f, err := NewJacFactor(a, b, 1)
	if err != nil {
		return JacExpression{}, err
	}
	return JacExpression{Scalar: numeric.OneQ(), QShift: numeric.ZeroQ(), Factors: []JacFactor{f}}, nil
}

// IsEmpty reports whether the expression has no JAC factors.
func (j JacExpression) IsEmpty() bool { return len(j.Factors) == 0 }

// ToSeries expands the expression: each JAC(a,b)^e factor via
// qseries.Jacprod raised to e, multiplied together, scaled by Scalar and
// shifted by q^QShift. Fails if QShift is not an integer.
func (j JacExpression) ToSeries(variable symbol.ID, truncation int64) (fps.Series, error) {
	result := fps.One(variable, truncation)
	for _, factor := range j.Factors {
		jacSeries, err := qseries.Jacprod(factor.A, factor.B, variable, truncation)
		if err != nil {
			return fps.Series{}, err
		}
		powered, err := fps.PowInt(jacSeries, factor.Exponent)
		if err != nil {
			return fps.Series{}, err
		}
		result, err = fps.Mul(result, powered)
		if err != nil {
			return fps.Series{}, err
		}
	}

	if !j.Scalar.Equals(numeric.OneQ()) {
		result = fps.ScalarMul(j.Scalar, result)
	}

	if !j.QShift.IsZero() {
		if !j.QShift.IsInteger() {
			return fps.Series{}, qsymerr.Newf(qsymerr.InvariantViolation, "identity.JacExpression.ToSeries",
				"q-shift %s is not an integer; FPS only supports integer exponents", j.QShift.String())
		}
		shift := j.QShift.AsZ().BigInt().Int64()
		monomial := fps.Monomial(variable, numeric.OneQ(), shift, truncation)
		var err error
		result, err = fps.Mul(monomial, result)
		if err != nil {
			return fps.Series{}, err
		}
	}

	return result, nil
}

// AsJac converts side to a JacExpression when it is of type "jac".
// Jac sides store their scalar, q-shift and factor list in Formula as
// "scalar=.. shift=.. factors=a:b:e,a:b:e,...", the same line/record text style
// used elsewhere in the database.
func (s Side) AsJac() (JacExpression, bool) {
	if s.ExprType != "jac" {
		return JacExpression{}, false
	}
	scalar, shift, factors, ok := parseJacFormula(s.Formula)
	if !ok {
		return JacExpression{}, false
	}
	expr, err := NewJacExpression(scalar, shift, factors)
	if err != nil {
		return JacExpression{}, false
	}
	return expr, true
}

// FormatJacFormula renders a JacExpression into the Formula string used by
// the "jac" expr_type: "scalar=n/d shift=n/d factors=a:b:e,a:b:e,...".
func FormatJacFormula(j JacExpression) string {
	var b strings.Builder
	b.WriteString("scalar=")
	b.WriteString(formatQRatio(j.Scalar))
	b.WriteString(" shift=")
	b.WriteString(formatQRatio(j.QShift))
	if len(j.Factors) > 0 {
		b.WriteString(" factors=")
		for i, f := range j.Factors {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(strconv.FormatInt(f.A, 10))
			b.WriteString(":")
			b.WriteString(strconv.FormatInt(f.B, 10))
			b.WriteString(":")
			b.WriteString(strconv.FormatInt(f.Exponent, 10))
		}
	}
	return b.String()
}

func formatQRatio(q numeric.Q) string {
	return q.Numer().String() + "/" + q.Denom().String()
}

func parseQRatio(s string) (numeric.Q, bool) {
	numStr, denStr, ok := strings.Cut(s, "/")
	if !ok {
		numStr, denStr = s, "1"
	}
	num, err1 := strconv.ParseInt(numStr, 10, 64)
	den, err2 := strconv.ParseInt(denStr, 10, 64)
	if err1 != nil || err2 != nil {
		return numeric.Q{}, false
	}
	q, err := numeric.NewQ(num, den)
	if err != nil {
		return numeric.Q{}, false
	}
	return q, true
}

// parseJacFormula parses a Formula string of the form produced by
// FormatJacFormula into its scalar, q-shift, and factor list.
func parseJacFormula(formula string) (numeric.Q, numeric.Q, []JacFactor, bool) {
	scalar, shift := numeric.OneQ(), numeric.ZeroQ()
	var factors []JacFactor

	for _, field := range strings.Fields(formula) {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			return numeric.Q{}, numeric.Q{}, nil, false
		}
		switch key {
		case "scalar":
			q, ok := parseQRatio(val)
			if !ok {
				return numeric.Q{}, numeric.Q{}, nil, false
			}
			scalar = q
		case "shift":
			q, ok := parseQRatio(val)
			if !ok {
				return numeric.Q{}, numeric.Q{}, nil, false
			}
			shift = q
		case "factors":
			for _, part := range strings.Split(val, ",") {
				if part == "" {
					continue
				}
				pieces := strings.Split(part, ":")
				if len(pieces) != 3 {
					return numeric.Q{}, numeric.Q{}, nil, false
				}
				a, err1 := strconv.ParseInt(pieces[0], 10, 64)
				bb, err2 := strconv.ParseInt(pieces[1], 10, 64)
				e, err3 := strconv.ParseInt(pieces[2], 10, 64)
				if err1 != nil || err2 != nil || err3 != nil {
					return numeric.Q{}, numeric.Q{}, nil, false
				}
				factors = append(factors, JacFactor{A: a, B: bb, Exponent: e})
			}
		default:
			return numeric.Q{}, numeric.Q{}, nil, false
		}
	}
	return scalar, shift, factors, true
}
