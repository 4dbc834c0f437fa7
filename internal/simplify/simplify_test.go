package simplify

import (
	"testing"

	"qsym/internal/expr"
	"qsym/internal/numeric"
)

func TestAtomsUnchanged(t *testing.T) {
	a := expr.New()
	i := a.InternInt(numeric.NewZ(42))
	s := a.InternSymbol("x")

	if got := Simplify(i, a); got != i {
		t.Errorf("Integer atom should be unchanged, got ref %d want %d", got, i)
	}
	if got := Simplify(s, a); got != s {
		t.Errorf("Symbol atom should be unchanged, got ref %d want %d", got, s)
	}
}

func TestDoubleNegation(t *testing.T) {
	a := expr.New()
	x := a.InternSymbol("x")
	negX := expr.MakeNeg(a, x)
	negNegX := expr.MakeNeg(a, negX)

	got := Simplify(negNegX, a)
	if got != x {
		t.Errorf("Neg(Neg(x)) should simplify to x, got ref %d want %d", got, x)
	}
}

func TestAddZeroIdentity(t *testing.T) {
	a := expr.New()
	x := a.InternSymbol("x")
	zero := a.InternInt(numeric.ZeroZ())
	sum := expr.MakeAdd(a, []expr.Ref{zero, x})

	got := Simplify(sum, a)
	if got != x {
		t.Errorf("Add([0, x]) should simplify to x, got ref %d want %d", got, x)
	}
}

func TestCancelAdditiveInverse(t *testing.T) {
	a := expr.New()
	x := a.InternSymbol("x")
	negX := expr.MakeNeg(a, x)
	y := a.InternSymbol("y")
	sum := expr.MakeAdd(a, []expr.Ref{x, negX, y})

	got := Simplify(sum, a)
	if got != y {
		t.Errorf("x + (-x) + y should simplify to y, got ref %d want %d", got, y)
	}
}

func TestCancelMultiplicativeInverse(t *testing.T) {
	a := expr.New()
	x := a.InternSymbol("x")
	negOne := a.InternInt(numeric.NewZ(-1))
	invX := expr.MakePow(a, x, negOne)
	y := a.InternSymbol("y")
	product := expr.MakeMul(a, []expr.Ref{x, invX, y})

	got := Simplify(product, a)
	if got != y {
		t.Errorf("x * x^-1 * y should simplify to y, got ref %d want %d", got, y)
	}
}

func TestCollectLikeTerms(t *testing.T) {
	a := expr.New()
	x := a.InternSymbol("x")
	two := a.InternInt(numeric.NewZ(2))
	sum := expr.MakeAdd(a, []expr.Ref{x, x})

	got := Simplify(sum, a)
	want := expr.MakeMul(a, []expr.Ref{two, x})
	if got != want {
		t.Errorf("x + x should collect to 2*x, got ref %d want %d", got, want)
	}
}

func TestCollectLikeFactors(t *testing.T) {
	a := expr.New()
	x := a.InternSymbol("x")
	two := a.InternInt(numeric.NewZ(2))
	product := expr.MakeMul(a, []expr.Ref{x, x})

	got := Simplify(product, a)
	want := expr.MakePow(a, x, two)
	if got != want {
		t.Errorf("x * x should collect to x^2, got ref %d want %d", got, want)
	}
}

func TestArithmeticFolding(t *testing.T) {
	a := expr.New()
	two := a.InternInt(numeric.NewZ(2))
	three := a.InternInt(numeric.NewZ(3))
	sum := expr.MakeAdd(a, []expr.Ref{two, three})

	got := Simplify(sum, a)
	want := a.InternInt(numeric.NewZ(5))
	if got != want {
		t.Errorf("2 + 3 should fold to 5, got ref %d want %d", got, want)
	}
}

func TestMultiplicationByZero(t *testing.T) {
	a := expr.New()
	x := a.InternSymbol("x")
	zero := a.InternInt(numeric.ZeroZ())
	product := expr.MakeMul(a, []expr.Ref{x, zero})

	got := Simplify(product, a)
	want := a.InternInt(numeric.ZeroZ())
	if got != want {
		t.Errorf("x * 0 should simplify to 0, got ref %d want %d", got, want)
	}
}

func TestPowZeroAndOne(t *testing.T) {
	a := expr.New()
	x := a.InternSymbol("x")
	zero := a.InternInt(numeric.ZeroZ())
	one := a.InternInt(numeric.OneZ())

	powZero := expr.MakePow(a, x, zero)
	if got := Simplify(powZero, a); got != one {
		t.Errorf("x^0 should simplify to 1, got ref %d want %d", got, one)
	}

	powOne := expr.MakePow(a, x, one)
	if got := Simplify(powOne, a); got != x {
		t.Errorf("x^1 should simplify to x, got ref %d want %d", got, x)
	}
}

func TestIntegerValuedRationalNormalizesToInteger(t *testing.T) {
	a := expr.New()
	four, err := numeric.NewQ(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	ratRef := a.InternRat(four)

	got := Simplify(ratRef, a)
	want := a.InternInt(numeric.NewZ(4))
	if got != want {
		t.Errorf("Rational(4/1) should normalize to Integer(4), got ref %d want %d", got, want)
	}
}

func TestFlattenNestedAdd(t *testing.T) {
	a := expr.New()
	x := a.InternSymbol("x")
	y := a.InternSymbol("y")
	z := a.InternSymbol("z")
	inner := expr.MakeAdd(a, []expr.Ref{x, y})
	nested := expr.MakeAdd(a, []expr.Ref{inner, z})

	got := Simplify(nested, a)
	want := expr.MakeAdd(a, []expr.Ref{x, y, z})
	if got != want {
		t.Errorf("Add(Add(x, y), z) should flatten to Add(x, y, z), got ref %d want %d", got, want)
	}
}

func TestFlattenNestedMul(t *testing.T) {
	a := expr.New()
	x := a.InternSymbol("x")
	y := a.InternSymbol("y")
	z := a.InternSymbol("z")
	inner := expr.MakeMul(a, []expr.Ref{x, y})
	nested := expr.MakeMul(a, []expr.Ref{inner, z})

	got := Simplify(nested, a)
	want := expr.MakeMul(a, []expr.Ref{x, y, z})
	if got != want {
		t.Errorf("Mul(Mul(x, y), z) should flatten to Mul(x, y, z), got ref %d want %d", got, want)
	}
}

func TestIdempotentOnAlreadySimplified(t *testing.T) {
	a := expr.New()
	x := a.InternSymbol("x")
	first := Simplify(expr.MakeAdd(a, []expr.Ref{x, x}), a)
	second := Simplify(first, a)
	if first != second {
		t.Errorf("simplifying an already-simplified expression should be a no-op, got %d then %d", first, second)
	}
}
