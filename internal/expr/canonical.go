package expr

import (
	"qsym/internal/numeric"
	"qsym/internal/qsymerr"

	"golang.org/x/exp/slices"
)

// MakeAdd is the sole legal way to build an Add node (spec §4.4). It
// sorts children by Ref (so a+b and b+a intern to the same node), and
// collapses the identity/singleton cases: zero children -> Integer(0),
// one child -> that child.
func MakeAdd(a *Arena, children []Ref) Ref {
	if len(children) == 0 {
		return a.InternInt(numeric.ZeroZ())
	}
	sorted := append([]Ref(nil), children...)
	slices.Sort(sorted)
	if len(sorted) == 1 {
		return sorted[0]
	}
	return a.Intern(Expr{Kind: KindAdd, Children: sorted})
}

// MakeMul is the sole legal way to build a Mul node. Sorts children by
// Ref; zero children -> Integer(1), one child -> that child.
func MakeMul(a *Arena, children []Ref) Ref {
	if len(children) == 0 {
		return a.InternInt(numeric.OneZ())
	}
	sorted := append([]Ref(nil), children...)
	slices.Sort(sorted)
	if len(sorted) == 1 {
		return sorted[0]
	}
	return a.Intern(Expr{Kind: KindMul, Children: sorted})
}

// MakeNeg interns Neg(x) verbatim. Double-negation collapse is the
// simplifier's job, not the constructor's (spec §4.4).
func MakeNeg(a *Arena, x Ref) Ref {
	return a.Intern(Expr{Kind: KindNeg, Operand: x})
}

// MakePow interns Pow(base, exp) verbatim.
func MakePow(a *Arena, base, exp Ref) Ref {
	return a.Intern(Expr{Kind: KindPow, Base: base, Exp: exp})
}

// MakeQPochhammer interns a QPochhammer(base, nome, order) node.
func MakeQPochhammer(a *Arena, base, nome, order Ref) Ref {
	return a.Intern(Expr{Kind: KindQPochhammer, PochBase: base, PochNome: nome, PochOrder: order})
}

// MakeJacobiTheta interns a JacobiTheta(index, nome) node. index must be
// in 1..4; anything else is an InvariantViolation (spec §7).
func MakeJacobiTheta(a *Arena, index ThetaIndex, nome Ref) (Ref, error) {
	if index < Theta1 || index > Theta4 {
		return 0, qsymerr.Newf(qsymerr.InvariantViolation, "expr.MakeJacobiTheta",
			"theta index %d outside 1..4", index)
	}
	return a.Intern(Expr{Kind: KindJacobiTheta, ThetaIdx: index, ThetaNome: nome}), nil
}

// MakeDedekindEta interns DedekindEta(tau).
func MakeDedekindEta(a *Arena, tau Ref) Ref {
	return a.Intern(Expr{Kind: KindDedekindEta, Tau: tau})
}

// MakeBasicHypergeometric interns a BasicHypergeometric node.
func MakeBasicHypergeometric(a *Arena, upper, lower []Ref, nome, argument Ref) Ref {
	return a.Intern(Expr{
		Kind:   KindBasicHypergeometric,
		Upper:  append([]Ref(nil), upper...),
		Lower:  append([]Ref(nil), lower...),
		HGNome: nome,
		HGArg:  argument,
	})
}
