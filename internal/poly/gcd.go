package poly

import "qsym/internal/numeric"

func qratPow(base numeric.Q, exp int64) numeric.Q {
	r, err := base.PowInt(exp)
	if err != nil {
		panic(err)
	}
	return r
}

// GCD computes the monic GCD of a and b via the subresultant PRS
// algorithm, avoiding the coefficient explosion of naive Euclidean
// division over degree 5-30 polynomials.
func GCD(a, b Poly) (Poly, error) {
	if a.IsZero() {
		return b.MakeMonic()
	}
	if b.IsZero() {
		return a.MakeMonic()
	}
	if a.IsConstant() && b.IsConstant() {
		return One(), nil
	}

	degA, _ := a.Degree()
	degB, _ := b.Degree()
	f, g := a, b
	if degA < degB {
		f, g = b, a
	}

	f = f.PrimitivePart()
	g = g.PrimitivePart()
	if f.IsZero() {
		return g.MakeMonic()
	}
	if g.IsZero() {
		return f.MakeMonic()
	}

	negOne := numeric.OneQ().Neg()
	psi := negOne

	degF, _ := f.Degree()
	degG, _ := g.Degree()
	delta0 := degF - degG
	var sign0 numeric.Q
	if (delta0+1)%2 == 0 {
		sign0 = numeric.OneQ()
	} else {
		sign0 = negOne
	}

	h, err := f.PseudoRem(g)
	if err != nil {
		return Poly{}, err
	}
	if h.IsZero() {
		return g.PrimitivePart().MakeMonic()
	}

	beta0 := sign0
	h, err = ScalarDiv(h, beta0)
	if err != nil {
		return Poly{}, err
	}

	lcF, _ := f.LeadingCoeff()
	lcFNeg := lcF.Neg()
	if delta0 == 1 {
		psi = lcFNeg
	} else if delta0 > 1 {
		num := qratPow(lcFNeg, int64(delta0))
		den := qratPow(psi, int64(delta0-1))
		psi, err = num.Quo(den)
		if err != nil {
			return Poly{}, err
		}
	}

	f, g = g, h

	for {
		if g.IsZero() {
			return f.PrimitivePart().MakeMonic()
		}
		if g.IsConstant() {
			return One(), nil
		}

		degF, _ = f.Degree()
		degG, _ = g.Degree()
		if degF < degG {
			return g.PrimitivePart().MakeMonic()
		}

		delta := degF - degG
		h, err = f.PseudoRem(g)
		if err != nil {
			return Poly{}, err
		}
		if h.IsZero() {
			return g.PrimitivePart().MakeMonic()
		}

		lc, _ := f.LeadingCoeff()
		negLc := lc.Neg()
		psiDelta := qratPow(psi, int64(delta))
		beta := negLc.Mul(psiDelta)
		h, err = ScalarDiv(h, beta)
		if err != nil {
			return Poly{}, err
		}

		if delta == 1 {
			psi = negLc
		} else if delta > 1 {
			num := qratPow(negLc, int64(delta))
			den := qratPow(psi, int64(delta-1))
			psi, err = num.Quo(den)
			if err != nil {
				return Poly{}, err
			}
		}

		f, g = g, h
	}
}

// Resultant computes the resultant of a and b via the Euclidean
// recursion res(f,g) = (-1)^(mn) * lc(g)^(m-k) * res(g,r), r = f mod g.
// Zero exactly when a and b share a common root over the algebraic
// closure of Q.
func Resultant(a, b Poly) (numeric.Q, error) {
	if a.IsZero() || b.IsZero() {
		return numeric.ZeroQ(), nil
	}
	m, okM := a.Degree()
	if !okM {
		return numeric.ZeroQ(), nil
	}
	n, okN := b.Degree()
	if !okN {
		return numeric.ZeroQ(), nil
	}

	if m == 0 {
		return qratPow(a.Coeff(0), int64(n)), nil
	}
	if n == 0 {
		return qratPow(b.Coeff(0), int64(m)), nil
	}

	_, r, err := DivRem(a, b)
	if err != nil {
		return numeric.Q{}, err
	}
	if r.IsZero() {
		return numeric.ZeroQ(), nil
	}

	k, _ := r.Degree()
	var sign numeric.Q
	if (m*n)%2 == 1 {
		sign = numeric.OneQ().Neg()
	} else {
		sign = numeric.OneQ()
	}

	lcB, _ := b.LeadingCoeff()
	lcBPow := qratPow(lcB, int64(m-k))

	subRes, err := Resultant(b, r)
	if err != nil {
		return numeric.Q{}, err
	}
	return sign.Mul(lcBPow).Mul(subRes), nil
}
