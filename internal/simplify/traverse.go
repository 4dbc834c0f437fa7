// Package simplify implements the phased bottom-up rewrite-to-fixpoint
// simplifier (spec §4.10): four ordered rule phases driven to a
// fixpoint, detected via O(1) Ref comparison thanks to hash-consing.
package simplify

import "qsym/internal/expr"

// RuleFunc rewrites a single node whose children have already been
// simplified. It may return the input ref unchanged.
type RuleFunc func(e expr.Ref, a *expr.Arena) expr.Ref

// bottomUpApply recursively simplifies expr's children, reconstructs the
// node via canonical constructors if any child changed, then applies
// ruleFn to the (possibly reconstructed) node.
func bottomUpApply(e expr.Ref, a *expr.Arena, ruleFn RuleFunc) expr.Ref {
	node := a.Get(e)

	var withSimplifiedChildren expr.Ref
	switch node.Kind {
	case expr.KindAdd:
		newChildren := mapRefs(node.Children, a, ruleFn)
		if refsEqual(newChildren, node.Children) {
			withSimplifiedChildren = e
		} else {
			withSimplifiedChildren = expr.MakeAdd(a, newChildren)
		}

	case expr.KindMul:
		newChildren := mapRefs(node.Children, a, ruleFn)
		if refsEqual(newChildren, node.Children) {
			withSimplifiedChildren = e
		} else {
			withSimplifiedChildren = expr.MakeMul(a, newChildren)
		}

	case expr.KindNeg:
		newChild := bottomUpApply(node.Operand, a, ruleFn)
		if newChild == node.Operand {
			withSimplifiedChildren = e
		} else {
			withSimplifiedChildren = expr.MakeNeg(a, newChild)
		}

	case expr.KindPow:
		newBase := bottomUpApply(node.Base, a, ruleFn)
		newExp := bottomUpApply(node.Exp, a, ruleFn)
		if newBase == node.Base && newExp == node.Exp {
			withSimplifiedChildren = e
		} else {
			withSimplifiedChildren = expr.MakePow(a, newBase, newExp)
		}

	case expr.KindQPochhammer:
		newBase := bottomUpApply(node.PochBase, a, ruleFn)
		newNome := bottomUpApply(node.PochNome, a, ruleFn)
		newOrder := bottomUpApply(node.PochOrder, a, ruleFn)
		if newBase == node.PochBase && newNome == node.PochNome && newOrder == node.PochOrder {
			withSimplifiedChildren = e
		} else {
			withSimplifiedChildren = expr.MakeQPochhammer(a, newBase, newNome, newOrder)
		}

	case expr.KindJacobiTheta:
		newNome := bottomUpApply(node.ThetaNome, a, ruleFn)
		if newNome == node.ThetaNome {
			withSimplifiedChildren = e
		} else {
			ref, err := expr.MakeJacobiTheta(a, node.ThetaIdx, newNome)
			if err != nil {
				withSimplifiedChildren = e
			} else {
				withSimplifiedChildren = ref
			}
		}

	case expr.KindDedekindEta:
		newTau := bottomUpApply(node.Tau, a, ruleFn)
		if newTau == node.Tau {
			withSimplifiedChildren = e
		} else {
			withSimplifiedChildren = expr.MakeDedekindEta(a, newTau)
		}

	case expr.KindBasicHypergeometric:
		newUpper := mapRefs(node.Upper, a, ruleFn)
		newLower := mapRefs(node.Lower, a, ruleFn)
		newNome := bottomUpApply(node.HGNome, a, ruleFn)
		newArgument := bottomUpApply(node.HGArg, a, ruleFn)
		if refsEqual(newUpper, node.Upper) && refsEqual(newLower, node.Lower) &&
			newNome == node.HGNome && newArgument == node.HGArg {
			withSimplifiedChildren = e
		} else {
			withSimplifiedChildren = expr.MakeBasicHypergeometric(a, newUpper, newLower, newNome, newArgument)
		}

	default:
		// Atoms: Integer, Rational, Symbol, Infinity, Undefined.
		withSimplifiedChildren = e
	}

	return ruleFn(withSimplifiedChildren, a)
}

func mapRefs(refs []expr.Ref, a *expr.Arena, ruleFn RuleFunc) []expr.Ref {
	out := make([]expr.Ref, len(refs))
	for i, r := range refs {
		out[i] = bottomUpApply(r, a, ruleFn)
	}
	return out
}

func refsEqual(a, b []expr.Ref) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
