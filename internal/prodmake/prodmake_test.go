package prodmake

import (
	"testing"

	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/symbol"
)

func TestEulerFunctionHasConstantExponentsMinusOne(t *testing.T) {
	reg := symbol.New()
	q := reg.Intern("q")
	N := int64(15)
	gen := fps.EulerFunctionGenerator(q, N)
	euler, err := gen.IntoSeries(N)
	if err != nil {
		t.Fatal(err)
	}
	form, err := Prodmake(euler, N-1)
	if err != nil {
		t.Fatal(err)
	}
	negOne := numeric.OneQ().Neg()
	for n := int64(1); n <= form.TermsUsed; n++ {
		a, ok := form.Exponents[n]
		if !ok || !a.Equals(negOne) {
			t.Errorf("euler function exponent a_%d = %v, want -1", n, a)
		}
	}
}

func TestPartitionGFRecoversAllOnes(t *testing.T) {
	reg := symbol.New()
	q := reg.Intern("q")
	N := int64(12)
	one := fps.One(q, N)
	// f = 1/(q;q)_inf = prod 1/(1-q^n), so a_n = 1 for all n.
	gen := fps.EulerFunctionGenerator(q, N)
	euler, err := gen.IntoSeries(N)
	if err != nil {
		t.Fatal(err)
	}
	pgf, err := fps.Invert(euler)
	if err != nil {
		t.Fatal(err)
	}
	_ = one
	form, err := Prodmake(pgf, N-1)
	if err != nil {
		t.Fatal(err)
	}
	for n := int64(1); n <= form.TermsUsed; n++ {
		a, ok := form.Exponents[n]
		if !ok || !a.Equals(numeric.OneQ()) {
			t.Errorf("partition gf exponent a_%d = %v, want 1", n, a)
		}
	}
}
