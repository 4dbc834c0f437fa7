package qseries

import (
	"testing"

	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/symbol"
)

func TestPartitionCountKnownValues(t *testing.T) {
	cases := []struct {
		n    int64
		want int64
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 3}, {4, 5}, {5, 7}, {10, 42},
	}
	for _, c := range cases {
		got := PartitionCount(c.n)
		want := numeric.QFromZ(numeric.NewZ(c.want))
		if !got.Equals(want) {
			t.Errorf("p(%d) = %s, want %d", c.n, got, c.want)
		}
	}
}

func TestPartitionGFMatchesPartitionCount(t *testing.T) {
	reg := symbol.New()
	q := reg.Intern("q")
	N := int64(15)
	series, err := PartitionGF(q, N)
	if err != nil {
		t.Fatal(err)
	}
	for n := int64(0); n < N; n++ {
		c, err := series.Coeff(n)
		if err != nil {
			t.Fatal(err)
		}
		want := PartitionCount(n)
		if !c.Equals(want) {
			t.Errorf("partition_gf coeff %d = %s, want p(%d)=%s", n, c, n, want)
		}
	}
}

func TestEulerTheoremDistinctEqualsOdd(t *testing.T) {
	reg := symbol.New()
	q := reg.Intern("q")
	N := int64(20)
	distinct, err := DistinctPartsGF(q, N)
	if err != nil {
		t.Fatal(err)
	}
	odd, err := OddPartsGF(q, N)
	if err != nil {
		t.Fatal(err)
	}
	for n := int64(0); n < N; n++ {
		a, _ := distinct.Coeff(n)
		b, _ := odd.Coeff(n)
		if !a.Equals(b) {
			t.Errorf("Euler's theorem: distinct[%d]=%s, odd[%d]=%s", n, a, n, b)
		}
	}
}

func TestQbinSymmetry(t *testing.T) {
	reg := symbol.New()
	q := reg.Intern("q")
	N := int64(20)
	left, err := Qbin(6, 2, q, N)
	if err != nil {
		t.Fatal(err)
	}
	right, err := Qbin(6, 4, q, N)
	if err != nil {
		t.Fatal(err)
	}
	for n := int64(0); n < N; n++ {
		a, _ := left.Coeff(n)
		b, _ := right.Coeff(n)
		if !a.Equals(b) {
			t.Errorf("qbin(6,2)[%d]=%s != qbin(6,4)[%d]=%s", n, a, n, b)
		}
	}
}

func TestAqprodFiniteZeroFactorVanishes(t *testing.T) {
	reg := symbol.New()
	q := reg.Intern("q")
	series, err := Aqprod(Constant(numeric.OneQ()), q, Finite(3), 10)
	if err != nil {
		t.Fatal(err)
	}
	if !series.IsZero() {
		t.Error("(1;q)_3 must vanish: its k=0 factor is (1-1)=0")
	}
}

func TestTheta3SumOfTwoSquares(t *testing.T) {
	reg := symbol.New()
	q := reg.Intern("q")
	N := int64(20)
	t3, err := Theta3(q, N)
	if err != nil {
		t.Fatal(err)
	}
	t3sq, err := fps.Mul(t3, t3)
	if err != nil {
		t.Fatal(err)
	}
	c4, _ := t3sq.Coeff(4)
	want := numeric.QFromZ(numeric.NewZ(4))
	if !c4.Equals(want) {
		t.Errorf("theta3^2 coeff 4 (r2(4), representations of 4 as sum of two squares) = %s, want 4", c4)
	}
}

func TestMockThetaF3ConstantTermIsOne(t *testing.T) {
	reg := symbol.New()
	q := reg.Intern("q")
	series, err := MockThetaF3(q, 10)
	if err != nil {
		t.Fatal(err)
	}
	c0, _ := series.Coeff(0)
	if !c0.Equals(numeric.OneQ()) {
		t.Errorf("f(q) constant term = %s, want 1", c0)
	}
}
