package simplify

import (
	"qsym/internal/expr"
	"qsym/internal/numeric"
)

// constValue extracts the numeric value of an Integer or Rational node.
func constValue(n expr.Expr) (numeric.Q, bool) {
	switch n.Kind {
	case expr.KindInteger:
		return numeric.QFromZ(n.Int), true
	case expr.KindRational:
		return n.Rat, true
	default:
		return numeric.Q{}, false
	}
}

// internQ interns q as an Integer node when it holds an integer value,
// Rational otherwise, preserving the arena's no-integer-valued-Rational
// invariant.
func internQ(a *expr.Arena, q numeric.Q) expr.Ref {
	if q.IsInteger() {
		return a.InternInt(q.AsZ())
	}
	return a.InternRat(q)
}

// flattenChildren hoists grandchildren whose own Kind equals kind,
// implementing the Add-in-Add / Mul-in-Mul flattening normalize is
// responsible for. Children are already bottom-up simplified by the time
// normalize sees them, so a single hoist per call reaches the flat form.
func flattenChildren(a *expr.Arena, children []expr.Ref, kind expr.Kind) ([]expr.Ref, bool) {
	changed := false
	for _, c := range children {
		if a.Get(c).Kind == kind {
			changed = true
			break
		}
	}
	if !changed {
		return children, false
	}
	var out []expr.Ref
	for _, c := range children {
		if node := a.Get(c); node.Kind == kind {
			out = append(out, node.Children...)
			continue
		}
		out = append(out, c)
	}
	return out, true
}

// normalize flattens nested Add-in-Add and Mul-in-Mul, and folds double
// negation, trivial powers, and integer-valued Rational atoms into their
// canonical Integer form.
func normalize(e expr.Ref, a *expr.Arena) expr.Ref {
	n := a.Get(e)

	switch n.Kind {
	case expr.KindRational:
		if n.Rat.IsInteger() {
			return a.InternInt(n.Rat.AsZ())
		}
		return e

	case expr.KindNeg:
		inner := a.Get(n.Operand)
		if inner.Kind == expr.KindNeg {
			return inner.Operand
		}
		if q, ok := constValue(inner); ok {
			return internQ(a, q.Neg())
		}
		return e

	case expr.KindPow:
		expNode := a.Get(n.Exp)
		if expNode.Kind == expr.KindInteger {
			if expNode.Int.IsZero() {
				return a.InternInt(numeric.OneZ())
			}
			if expNode.Int.Equals(numeric.OneZ()) {
				return n.Base
			}
		}
		return e

	case expr.KindAdd:
		flat, flattened := flattenChildren(a, n.Children, expr.KindAdd)
		var kept []expr.Ref
		dropped := false
		for _, c := range flat {
			if q, ok := constValue(a.Get(c)); ok && q.IsZero() {
				dropped = true
				continue
			}
			kept = append(kept, c)
		}
		if !flattened && !dropped {
			return e
		}
		return expr.MakeAdd(a, kept)

	case expr.KindMul:
		flat, flattened := flattenChildren(a, n.Children, expr.KindMul)
		var kept []expr.Ref
		dropped := false
		for _, c := range flat {
			if q, ok := constValue(a.Get(c)); ok && q.Equals(numeric.OneQ()) {
				dropped = true
				continue
			}
			kept = append(kept, c)
		}
		if !flattened && !dropped {
			return e
		}
		return expr.MakeMul(a, kept)

	default:
		return e
	}
}

// cancel removes additive inverses from Add and multiplicative inverses
// from Mul, and collapses a Mul containing a zero factor.
func cancel(e expr.Ref, a *expr.Arena) expr.Ref {
	n := a.Get(e)

	switch n.Kind {
	case expr.KindAdd:
		remaining, changed := cancelPairs(n.Children, func(ref expr.Ref) (expr.Ref, bool) {
			return negationOf(a, ref)
		})
		if !changed {
			return e
		}
		return expr.MakeAdd(a, remaining)

	case expr.KindMul:
		for _, c := range n.Children {
			if q, ok := constValue(a.Get(c)); ok && q.IsZero() {
				return a.InternInt(numeric.ZeroZ())
			}
		}

		remaining, changed := cancelPairs(n.Children, func(ref expr.Ref) (expr.Ref, bool) {
			return reciprocalOf(a, ref)
		})
		if !changed {
			return e
		}
		return expr.MakeMul(a, remaining)

	default:
		return e
	}
}

// cancelPairs removes each element ref for which inverseOf(ref) names
// another still-present element, together with that counterpart. Order
// of refs is irrelevant to the search: canonical Add/Mul children are
// sorted by Ref, not by insertion order.
func cancelPairs(refs []expr.Ref, inverseOf func(expr.Ref) (expr.Ref, bool)) ([]expr.Ref, bool) {
	removed := make([]bool, len(refs))
	changed := false
	for i, ri := range refs {
		if removed[i] {
			continue
		}
		counterpart, ok := inverseOf(ri)
		if !ok {
			continue
		}
		for j, rj := range refs {
			if j == i || removed[j] {
				continue
			}
			if rj == counterpart {
				removed[i] = true
				removed[j] = true
				changed = true
				break
			}
		}
	}
	if !changed {
		return refs, false
	}
	var out []expr.Ref
	for i, r := range refs {
		if !removed[i] {
			out = append(out, r)
		}
	}
	return out, true
}

// negationOf reports whether ref is structurally Neg(x), returning x.
func negationOf(a *expr.Arena, ref expr.Ref) (expr.Ref, bool) {
	n := a.Get(ref)
	if n.Kind == expr.KindNeg {
		return n.Operand, true
	}
	return 0, false
}

// reciprocalOf reports whether ref is structurally Pow(x, -1), returning x.
func reciprocalOf(a *expr.Arena, ref expr.Ref) (expr.Ref, bool) {
	n := a.Get(ref)
	if n.Kind != expr.KindPow {
		return 0, false
	}
	expNode := a.Get(n.Exp)
	if expNode.Kind == expr.KindInteger && expNode.Int.Equals(numeric.NewZ(-1)) {
		return n.Base, true
	}
	return 0, false
}

// collect merges like terms in Add (c1*x + c2*x -> (c1+c2)*x, x + x ->
// 2*x) and like bases in Mul (x^a * x^b -> x^(a+b), x*x -> x^2).
func collect(e expr.Ref, a *expr.Arena) expr.Ref {
	n := a.Get(e)

	switch n.Kind {
	case expr.KindAdd:
		type bucket struct {
			base  expr.Ref
			coeff numeric.Q
		}
		var buckets []bucket
		for _, c := range n.Children {
			base, coeff := termOf(a, c)
			found := false
			for i := range buckets {
				if buckets[i].base == base {
					buckets[i].coeff = buckets[i].coeff.Add(coeff)
					found = true
					break
				}
			}
			if !found {
				buckets = append(buckets, bucket{base: base, coeff: coeff})
			}
		}
		if len(buckets) == len(n.Children) {
			return e
		}
		var out []expr.Ref
		for _, b := range buckets {
			if b.coeff.IsZero() {
				continue
			}
			out = append(out, rebuildTerm(a, b.base, b.coeff))
		}
		return expr.MakeAdd(a, out)

	case expr.KindMul:
		type bucket struct {
			base expr.Ref
			exp  numeric.Q
		}
		var buckets []bucket
		for _, c := range n.Children {
			base, exp := factorOf(a, c)
			found := false
			for i := range buckets {
				if buckets[i].base == base {
					buckets[i].exp = buckets[i].exp.Add(exp)
					found = true
					break
				}
			}
			if !found {
				buckets = append(buckets, bucket{base: base, exp: exp})
			}
		}
		if len(buckets) == len(n.Children) {
			return e
		}
		var out []expr.Ref
		for _, b := range buckets {
			out = append(out, rebuildFactor(a, b.base, b.exp))
		}
		return expr.MakeMul(a, out)

	default:
		return e
	}
}

// termOf splits an Add summand into (base, coefficient): Mul(c, x) ->
// (x, c); a bare constant -> (1, c); anything else -> (ref, 1).
func termOf(a *expr.Arena, ref expr.Ref) (expr.Ref, numeric.Q) {
	n := a.Get(ref)
	if q, ok := constValue(n); ok {
		return a.InternInt(numeric.OneZ()), q
	}
	if n.Kind == expr.KindMul && len(n.Children) == 2 {
		first := a.Get(n.Children[0])
		if q, ok := constValue(first); ok {
			return n.Children[1], q
		}
	}
	if n.Kind == expr.KindNeg {
		base, coeff := termOf(a, n.Operand)
		return base, coeff.Neg()
	}
	return ref, numeric.OneQ()
}

func rebuildTerm(a *expr.Arena, base expr.Ref, coeff numeric.Q) expr.Ref {
	one := a.InternInt(numeric.OneZ())
	if base == one {
		return internQ(a, coeff)
	}
	if coeff.Equals(numeric.OneQ()) {
		return base
	}
	return expr.MakeMul(a, []expr.Ref{internQ(a, coeff), base})
}

// factorOf splits a Mul factor into (base, exponent): Pow(x, k) -> (x,
// k); anything else -> (ref, 1).
func factorOf(a *expr.Arena, ref expr.Ref) (expr.Ref, numeric.Q) {
	n := a.Get(ref)
	if n.Kind == expr.KindPow {
		if q, ok := constValue(a.Get(n.Exp)); ok {
			return n.Base, q
		}
	}
	return ref, numeric.OneQ()
}

func rebuildFactor(a *expr.Arena, base expr.Ref, exp numeric.Q) expr.Ref {
	if exp.Equals(numeric.OneQ()) {
		return base
	}
	return expr.MakePow(a, base, internQ(a, exp))
}

// simplifyArith folds arithmetic on all-constant Add/Mul/Neg/Pow nodes.
func simplifyArith(e expr.Ref, a *expr.Arena) expr.Ref {
	n := a.Get(e)

	switch n.Kind {
	case expr.KindAdd:
		sum := numeric.ZeroQ()
		allConst := true
		for _, c := range n.Children {
			q, ok := constValue(a.Get(c))
			if !ok {
				allConst = false
				break
			}
			sum = sum.Add(q)
		}
		if allConst {
			return internQ(a, sum)
		}
		return e

	case expr.KindMul:
		prod := numeric.OneQ()
		allConst := true
		for _, c := range n.Children {
			q, ok := constValue(a.Get(c))
			if !ok {
				allConst = false
				break
			}
			prod = prod.Mul(q)
		}
		if allConst {
			return internQ(a, prod)
		}
		return e

	case expr.KindNeg:
		if q, ok := constValue(a.Get(n.Operand)); ok {
			return internQ(a, q.Neg())
		}
		return e

	case expr.KindPow:
		base, baseOk := constValue(a.Get(n.Base))
		expNode := a.Get(n.Exp)
		if baseOk && expNode.Kind == expr.KindInteger {
			result, err := base.PowInt(expNode.Int.BigInt().Int64())
			if err != nil {
				return e
			}
			return internQ(a, result)
		}
		return e

	default:
		return e
	}
}
