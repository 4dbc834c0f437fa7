package poly

import (
	"testing"

	"qsym/internal/numeric"
)

func polyFromRoots(roots []int64) Poly {
	result := One()
	for _, r := range roots {
		factor := FromInts([]int64{-r, 1})
		result = Mul(result, factor)
	}
	return result
}

func TestGCDCoprimeLinears(t *testing.T) {
	a := FromInts([]int64{-1, 1})
	b := FromInts([]int64{-2, 1})
	g, err := GCD(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !g.IsOne() {
		t.Errorf("gcd of coprime linears should be 1, got %s", g)
	}
}

func TestGCDCommonFactor(t *testing.T) {
	a := polyFromRoots([]int64{1, 2})
	b := polyFromRoots([]int64{1, 3})
	g, err := GCD(a, b)
	if err != nil {
		t.Fatal(err)
	}
	expected := FromInts([]int64{-1, 1})
	if !polyEqual(g, expected) {
		t.Errorf("gcd = %s, want x-1", g)
	}
}

func TestGCDDegreeTen(t *testing.T) {
	common := polyFromRoots([]int64{1, 2, 3})
	a := Mul(common, polyFromRoots([]int64{4, 5, 6, 7, 8, 9, 10}))
	b := Mul(common, polyFromRoots([]int64{11, 12, 13, 14, 15, 16, 17}))

	g, err := GCD(a, b)
	if err != nil {
		t.Fatal(err)
	}
	deg, _ := g.Degree()
	if deg != 3 {
		t.Fatalf("gcd degree = %d, want 3", deg)
	}
	monicCommon, _ := common.MakeMonic()
	if !polyEqual(g, monicCommon) {
		t.Errorf("gcd = %s, want %s", g, monicCommon)
	}
}

func TestResultantCommonRootIsZero(t *testing.T) {
	a := polyFromRoots([]int64{1, 2})
	b := polyFromRoots([]int64{1, 3})
	r, err := Resultant(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsZero() {
		t.Errorf("resultant of polynomials with a common root should be 0, got %s", r)
	}
}

func TestResultantLinearPair(t *testing.T) {
	a := FromInts([]int64{-3, 1}) // x - 3
	b := FromInts([]int64{-5, 1}) // x - 5
	r, err := Resultant(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := numeric.QFromZ(numeric.NewZ(-2))
	if !r.Equals(want) {
		t.Errorf("res(x-3,x-5) = %s, want -2", r)
	}
}

func TestCyclotomicProductEqualsXNMinusOne(t *testing.T) {
	for n := 1; n <= 15; n++ {
		product, err := cyclotomicProductCheck(n)
		if err != nil {
			t.Fatal(err)
		}
		want := xNMinusOne(n)
		if !polyEqual(product, want) {
			t.Errorf("prod_{d|%d} Phi_d = %s, want x^%d-1", n, product, n)
		}
	}
}

func TestCyclotomicSmallCases(t *testing.T) {
	phi1, err := Cyclotomic(1)
	if err != nil {
		t.Fatal(err)
	}
	if !polyEqual(phi1, FromInts([]int64{-1, 1})) {
		t.Errorf("Phi_1 = %s, want x-1", phi1)
	}

	phi2, err := Cyclotomic(2)
	if err != nil {
		t.Fatal(err)
	}
	if !polyEqual(phi2, FromInts([]int64{1, 1})) {
		t.Errorf("Phi_2 = %s, want x+1", phi2)
	}
}

func polyEqual(a, b Poly) bool {
	degA, okA := a.Degree()
	degB, okB := b.Degree()
	if okA != okB {
		return false
	}
	if !okA {
		return true
	}
	if degA != degB {
		return false
	}
	for i := 0; i <= degA; i++ {
		if !a.Coeff(i).Equals(b.Coeff(i)) {
			return false
		}
	}
	return true
}
