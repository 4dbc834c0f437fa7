package expr

import (
	"testing"

	"qsym/internal/numeric"
)

func TestHashConsingIdempotence(t *testing.T) {
	a := New()
	r1 := a.InternInt(numeric.NewZ(5))
	r2 := a.InternInt(numeric.NewZ(5))
	if r1 != r2 {
		t.Errorf("structurally equal Integer atoms must intern to the same ref, got %d and %d", r1, r2)
	}
	if a.Len() != 1 {
		t.Errorf("arena should contain exactly 1 node, got %d", a.Len())
	}
}

func TestCommutativeCanonicalization(t *testing.T) {
	a := New()
	x := a.InternSymbol("x")
	y := a.InternSymbol("y")

	ab := MakeAdd(a, []Ref{x, y})
	ba := MakeAdd(a, []Ref{y, x})
	if ab != ba {
		t.Errorf("make_add([x,y]) = %d should equal make_add([y,x]) = %d", ab, ba)
	}

	mb := MakeMul(a, []Ref{x, y})
	nb := MakeMul(a, []Ref{y, x})
	if mb != nb {
		t.Errorf("make_mul([x,y]) = %d should equal make_mul([y,x]) = %d", mb, nb)
	}
}

func TestAddIdentityCollapse(t *testing.T) {
	a := New()
	x := a.InternSymbol("x")

	if got := MakeAdd(a, nil); got != a.InternInt(numeric.ZeroZ()) {
		t.Error("make_add([]) should be Integer(0)")
	}
	if got := MakeAdd(a, []Ref{x}); got != x {
		t.Error("make_add([x]) should collapse to x")
	}
}

func TestMulIdentityCollapse(t *testing.T) {
	a := New()
	x := a.InternSymbol("x")

	if got := MakeMul(a, nil); got != a.InternInt(numeric.OneZ()) {
		t.Error("make_mul([]) should be Integer(1)")
	}
	if got := MakeMul(a, []Ref{x}); got != x {
		t.Error("make_mul([x]) should collapse to x")
	}
}

func TestJacobiThetaInvariant(t *testing.T) {
	a := New()
	q := a.InternSymbol("q")
	if _, err := MakeJacobiTheta(a, 5, q); err == nil {
		t.Error("theta index 5 should be an invariant violation")
	}
	if _, err := MakeJacobiTheta(a, Theta3, q); err != nil {
		t.Errorf("theta index 3 should be valid: %v", err)
	}
}

func TestDistinctNodesGetDistinctRefs(t *testing.T) {
	a := New()
	five := a.InternInt(numeric.NewZ(5))
	six := a.InternInt(numeric.NewZ(6))
	if five == six {
		t.Error("distinct integers must not alias")
	}
}
