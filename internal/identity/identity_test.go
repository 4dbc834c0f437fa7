package identity

import (
	"testing"

	"qsym/internal/numeric"
)

func TestCuspCountMatchesEnumeration(t *testing.T) {
	for _, n := range []int64{1, 2, 3, 4, 6, 11, 12, 24} {
		cusps, err := Cuspmake(n)
		if err != nil {
			t.Fatal(err)
		}
		want := NumCuspsGamma0(n)
		if int64(len(cusps)) != want {
			t.Errorf("Cuspmake(%d) returned %d cusps, NumCuspsGamma0 says %d", n, len(cusps), want)
		}
	}
}

func TestCuspmakeInvalidLevel(t *testing.T) {
	if _, err := Cuspmake(0); err == nil {
		t.Error("Cuspmake(0) should fail")
	}
}

func TestEtaExpressionDeltaMustDivideLevel(t *testing.T) {
	_, err := NewEtaExpression(map[int64]int64{5: 1}, 4)
	if err == nil {
		t.Error("delta=5 does not divide level=4, should fail")
	}
}

func TestWeightZeroEtaQuotientIsModular(t *testing.T) {
	// eta(tau)^24 / eta(2*tau)^24 on Gamma_0(2): weight 0, a classical
	// Hauptmodul-style eta quotient.
	eta, err := NewEtaExpression(map[int64]int64{1: 24, 2: -24}, 2)
	if err != nil {
		t.Fatal(err)
	}
	result := eta.CheckModularity()
	if !result.Modular {
		t.Errorf("eta(tau)^24/eta(2tau)^24 should be modular, failed: %v", result.FailedConditions)
	}
	if w := eta.Weight(); !w.IsZero() {
		t.Errorf("weight = %s, want 0", w)
	}
}

func TestDiscriminantFailsNewmanWeightCondition(t *testing.T) {
	// Ramanujan's Delta, eta(tau)^24, is weight 12 -- not weight 0, so it
	// must fail Newman's sum(r_delta) == 0 condition.
	eta, err := NewEtaExpression(map[int64]int64{1: 24}, 1)
	if err != nil {
		t.Fatal(err)
	}
	result := eta.CheckModularity()
	if result.Modular {
		t.Error("weight-12 Delta should not satisfy Newman's weight-zero condition")
	}
	want, _ := numeric.NewQ(12, 1)
	if w := eta.Weight(); !w.Equals(want) {
		t.Errorf("Delta weight = %s, want 12", w)
	}
}

func TestNonModularEtaQuotient(t *testing.T) {
	eta, err := NewEtaExpression(map[int64]int64{1: 1}, 1)
	if err != nil {
		t.Fatal(err)
	}
	result := eta.CheckModularity()
	if result.Modular {
		t.Error("eta(tau) alone (weight 1/2) should fail Newman's conditions")
	}
}

func TestProveTrivialIdentity(t *testing.T) {
	eta, err := NewEtaExpression(map[int64]int64{1: 1}, 1)
	if err != nil {
		t.Fatal(err)
	}
	identity := TwoSided(eta, eta, 1)
	result, err := ProveEtaIdentity(identity)
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsProved() {
		t.Errorf("f = f should trivially prove, got kind %d", result.Kind)
	}
}

func TestDatabaseRoundTrip(t *testing.T) {
	db := NewDatabase()
	level := int64(1)
	db.Add(Entry{
		ID:        "euler-pentagonal",
		Name:      "Euler's Pentagonal Number Theorem",
		Tags:      []string{"classical", "partitions"},
		Functions: []string{"eta"},
		LHS: Side{
			ExprType: "eta_quotient",
			Level:    &level,
			Factors:  map[int64]int64{1: 1},
		},
		RHS: Side{ExprType: "q_series", Formula: "sum (-1)^k q^(k(3k-1)/2)"},
		Citation: &Citation{Author: "Euler", Year: 1750},
	})

	text := db.Serialize()
	db2, err := Load(text)
	if err != nil {
		t.Fatal(err)
	}
	if db2.Len() != 1 {
		t.Fatalf("round trip lost entries: got %d want 1", db2.Len())
	}
	e, ok := db2.ByID("euler-pentagonal")
	if !ok {
		t.Fatal("euler-pentagonal missing after round trip")
	}
	if e.Name != "Euler's Pentagonal Number Theorem" {
		t.Errorf("name = %q", e.Name)
	}
	if e.Citation == nil || e.Citation.Author != "Euler" || e.Citation.Year != 1750 {
		t.Errorf("citation not preserved: %+v", e.Citation)
	}
	eta, ok := e.LHSAsEta()
	if !ok {
		t.Fatal("LHS should convert to EtaExpression")
	}
	if eta.Level != 1 || eta.Factors[1] != 1 {
		t.Errorf("eta = %+v", eta)
	}
}

func TestJacFactorRejectsInvalidParameters(t *testing.T) {
	if _, err := NewJacFactor(0, 5, 1); err == nil {
		t.Error("a=0 should be rejected")
	}
	if _, err := NewJacFactor(5, 5, 1); err == nil {
		t.Error("a==b should be rejected")
	}
	if _, err := NewJacFactor(6, 5, 1); err == nil {
		t.Error("a>b should be rejected")
	}
}

func TestJacFormulaRoundTrip(t *testing.T) {
	jac, err := SingleJac(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	side := Side{ExprType: "jac", Formula: FormatJacFormula(jac)}
	got, ok := side.AsJac()
	if !ok {
		t.Fatal("jac side should convert back to JacExpression")
	}
	if len(got.Factors) != 1 || got.Factors[0] != (JacFactor{A: 2, B: 5, Exponent: 1}) {
		t.Errorf("factors = %+v", got.Factors)
	}
	if !got.Scalar.Equals(numeric.OneQ()) || !got.QShift.Equals(numeric.ZeroQ()) {
		t.Errorf("scalar/shift not preserved: %+v", got)
	}
}

func TestDatabaseSearch(t *testing.T) {
	db := NewDatabase()
	db.Add(Entry{ID: "a", Name: "A", Tags: []string{"classical"}, Functions: []string{"eta"}, LHS: Side{ExprType: "q_series"}, RHS: Side{ExprType: "q_series"}})
	db.Add(Entry{ID: "b", Name: "B", Tags: []string{"ramanujan"}, Functions: []string{"theta"}, LHS: Side{ExprType: "q_series"}, RHS: Side{ExprType: "q_series"}})

	if got := db.ByTag("classical"); len(got) != 1 || got[0].ID != "a" {
		t.Errorf("ByTag classical = %v", got)
	}
	if got := db.ByFunction("theta"); len(got) != 1 || got[0].ID != "b" {
		t.Errorf("ByFunction theta = %v", got)
	}
	if got := db.ByPattern("nonexistent"); len(got) != 0 {
		t.Errorf("ByPattern nonexistent should be empty, got %v", got)
	}
}

