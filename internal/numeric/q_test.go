package numeric

import "testing"

func TestQReduction(t *testing.T) {
	a, err := NewQ(6, 4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewQ(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equals(b) {
		t.Errorf("Q(6,4) = %s should equal Q(3,2) = %s", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Error("equal Q values must hash equally")
	}
	if a.Denom().Cmp(NewZ(2)) != 0 {
		t.Errorf("reduced denominator should be 2, got %s", a.Denom())
	}
}

func TestQZeroUnique(t *testing.T) {
	z1 := ZeroQ()
	z2, err := NewQ(0, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !z1.Equals(z2) {
		t.Error("zero must be unique regardless of constructing denominator")
	}
}

func TestQDivisionByZero(t *testing.T) {
	if _, err := NewQ(1, 0); err == nil {
		t.Fatal("expected division-by-zero error for zero denominator")
	}
	one := OneQ()
	if _, err := one.Quo(ZeroQ()); err == nil {
		t.Fatal("expected division-by-zero error for Quo by zero")
	}
}

func TestQPowInt(t *testing.T) {
	half, _ := NewQ(1, 2)
	got, err := half.PowInt(-2)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := NewQ(4, 1)
	if !got.Equals(want) {
		t.Errorf("(1/2)^-2 = %s, want 4", got)
	}
}

func TestQIsIntegerRoundtrip(t *testing.T) {
	q := QFromZ(NewZ(7))
	if !q.IsInteger() {
		t.Error("Q built from Z must be integer-valued")
	}
	if q.AsZ().Cmp(NewZ(7)) != 0 {
		t.Error("AsZ must recover the original integer")
	}
}
