package fps

import (
	"testing"

	"qsym/internal/numeric"
	"qsym/internal/symbol"
)

func TestTruncationPropagation(t *testing.T) {
	reg := symbol.New()
	qid := reg.Intern("q")
	a := Monomial(qid, numeric.OneQ(), 0, 10)
	b := Monomial(qid, numeric.OneQ(), 0, 20)

	sum, err := Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if sum.TruncationOrder() != 10 {
		t.Errorf("trunc(a+b) = %d, want min(10,20)=10", sum.TruncationOrder())
	}

	shifted := Shift(a, 3)
	if shifted.TruncationOrder() != 13 {
		t.Errorf("trunc(shift(a,3)) = %d, want 13", shifted.TruncationOrder())
	}
}

func TestMultiplicativeIdentity(t *testing.T) {
	reg := symbol.New()
	qid := reg.Intern("q")
	// f = 1 - q (nonzero constant term)
	f := FromCoeffs(qid, map[int64]numeric.Q{0: numeric.OneQ(), 1: numeric.OneQ().Neg()}, 15)
	inv, err := Invert(f)
	if err != nil {
		t.Fatal(err)
	}
	prod, err := Mul(f, inv)
	if err != nil {
		t.Fatal(err)
	}
	one := One(qid, 15)
	for k := int64(0); k < 15; k++ {
		pc, _ := prod.Coeff(k)
		oc, _ := one.Coeff(k)
		if !pc.Equals(oc) {
			t.Errorf("coeff %d: f*invert(f) = %s, want %s", k, pc, oc)
		}
	}
}

func TestVariableMismatch(t *testing.T) {
	reg := symbol.New()
	qid := reg.Intern("q")
	xid := reg.Intern("x")
	a := One(qid, 10)
	b := One(xid, 10)
	if _, err := Add(a, b); err == nil {
		t.Error("expected VariableMismatch error")
	}
}

func TestSiftLaw(t *testing.T) {
	reg := symbol.New()
	qid := reg.Intern("q")
	coeffs := map[int64]numeric.Q{}
	for i := int64(0); i < 20; i++ {
		coeffs[i] = numeric.QFromZ(numeric.NewZ(i + 1))
	}
	f := FromCoeffs(qid, coeffs, 20)
	sifted, err := Sift(f, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := int64(0); i < sifted.TruncationOrder(); i++ {
		want, _ := f.Coeff(3*i + 1)
		got, _ := sifted.Coeff(i)
		if !got.Equals(want) {
			t.Errorf("sift(f,3,1)[%d] = %s, want %s", i, got, want)
		}
	}
}

func TestEulerIdentityViaGenerator(t *testing.T) {
	reg := symbol.New()
	qid := reg.Intern("q")
	N := int64(20)
	gen := NewProductGenerator(One(qid, N), 1, func(k int64, v symbol.ID, trunc int64) Series {
		return FromCoeffs(v, map[int64]numeric.Q{0: numeric.OneQ(), k: numeric.OneQ().Neg()}, trunc)
	})
	series, err := gen.IntoSeries(N)
	if err != nil {
		t.Fatal(err)
	}
	expected := []int64{1, -1, -1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0}
	for i, want := range expected {
		c, _ := series.Coeff(int64(i))
		if !c.Equals(numeric.QFromZ(numeric.NewZ(want))) {
			t.Errorf("euler coeff %d = %s, want %d", i, c, want)
		}
	}
}

func TestSetCoeff(t *testing.T) {
	reg := symbol.New()
	qid := reg.Intern("q")
	f := One(qid, 10)

	withFive, err := numeric.NewQ(5, 1)
	if err != nil {
		t.Fatal(err)
	}
	updated := f.SetCoeff(2, withFive)
	c, err := updated.Coeff(2)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Equals(withFive) {
		t.Errorf("SetCoeff(2, 5) then Coeff(2) = %s, want 5", c)
	}
	if updated.NumNonzero() != 2 {
		t.Errorf("NumNonzero() = %d, want 2", updated.NumNonzero())
	}

	cleared := updated.SetCoeff(2, numeric.ZeroQ())
	if cleared.NumNonzero() != 1 {
		t.Errorf("SetCoeff(2, 0) should remove the entry, NumNonzero() = %d, want 1", cleared.NumNonzero())
	}

	beyond := f.SetCoeff(10, withFive)
	if beyond.TruncationOrder() != f.TruncationOrder() || beyond.NumNonzero() != f.NumNonzero() {
		t.Error("SetCoeff at or beyond the truncation order should be a no-op")
	}

	if f.NumNonzero() != 1 {
		t.Error("SetCoeff must not mutate the receiver")
	}
}
