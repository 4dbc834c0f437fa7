package relation

import (
	"testing"

	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/symbol"
)

func q(n int64) numeric.Q { return numeric.QFromZ(numeric.NewZ(n)) }

func seriesFromCoeffs(variable symbol.ID, trunc int64, coeffs map[int64]int64) fps.Series {
	m := make(map[int64]numeric.Q, len(coeffs))
	for k, v := range coeffs {
		m[k] = q(v)
	}
	return fps.FromCoeffs(variable, m, trunc)
}

func TestFindLinComboDiscoversKnownCombination(t *testing.T) {
	reg := symbol.New()
	v := reg.Intern("q")
	const trunc = 10

	a := seriesFromCoeffs(v, trunc, map[int64]int64{0: 1, 1: 1})
	b := seriesFromCoeffs(v, trunc, map[int64]int64{0: 2, 1: 1})
	// target = 3*a - b => coeffs {0: 1, 1: 2}
	target, err := fps.Sub(fps.ScalarMul(q(3), a), b)
	if err != nil {
		t.Fatal(err)
	}

	coeffs, ok := FindLinCombo(target, []fps.Series{a, b}, trunc)
	if !ok {
		t.Fatal("expected a linear combination to be found")
	}
	want := []numeric.Q{q(3), q(-1)}
	for i, w := range want {
		if !coeffs[i].Equals(w) {
			t.Errorf("coeffs[%d] = %s, want %s", i, coeffs[i].String(), w.String())
		}
	}
}

func TestFindLinComboNoRelation(t *testing.T) {
	reg := symbol.New()
	v := reg.Intern("q")
	const trunc = 6

	a := seriesFromCoeffs(v, trunc, map[int64]int64{0: 1})
	b := seriesFromCoeffs(v, trunc, map[int64]int64{1: 1})
	target := seriesFromCoeffs(v, trunc, map[int64]int64{2: 1})

	if _, ok := FindLinCombo(target, []fps.Series{a, b}, trunc); ok {
		t.Error("expected no linear combination to exist")
	}
}

func TestFindHomRankOneRelation(t *testing.T) {
	reg := symbol.New()
	v := reg.Intern("q")
	const trunc = 8

	a := seriesFromCoeffs(v, trunc, map[int64]int64{0: 1})
	b := seriesFromCoeffs(v, trunc, map[int64]int64{0: 2})

	basis := FindHom([]fps.Series{a, b}, trunc)
	if len(basis) != 1 {
		t.Fatalf("expected one relation, got %d", len(basis))
	}
}

func TestFindPolyUnderdeterminedSystemHasRelation(t *testing.T) {
	reg := symbol.New()
	v := reg.Intern("q")
	const trunc = 6

	f := seriesFromCoeffs(v, trunc, map[int64]int64{0: 1, 1: 1})

	// Matching only 2 coefficients of 1, f, f^2 (3 unknowns, 2
	// equations) guarantees a nontrivial nullspace vector regardless
	// of f's actual structure.
	p, ok := FindPoly(f, 2, 2)
	if !ok {
		t.Fatal("an underdetermined system must have a nontrivial relation")
	}
	if p.IsZero() {
		t.Error("relation polynomial should not be the zero polynomial")
	}
}

func TestFindCongDetectsAllZeroClass(t *testing.T) {
	reg := symbol.New()
	v := reg.Intern("q")
	const trunc = 12

	// series with coefficients divisible by 5 whenever n is even, and
	// not otherwise.
	coeffs := map[int64]int64{}
	for n := int64(0); n < trunc; n++ {
		if n%2 == 0 {
			coeffs[n] = 5 * n
		} else {
			coeffs[n] = 1
		}
	}
	f := seriesFromCoeffs(v, trunc, coeffs)

	got := FindCong(f, 5, []int64{0}, 2)
	if !got[0] {
		t.Error("even class should satisfy the mod-5 congruence")
	}
	if got[1] {
		t.Error("odd class should not satisfy the mod-5 congruence")
	}
}
