package linalg

import (
	"testing"

	"qsym/internal/numeric"
)

func q(n int64) numeric.Q { return numeric.QFromZ(numeric.NewZ(n)) }

func TestRationalNullSpaceOfRankOneMatrix(t *testing.T) {
	// [[1,2,3],[2,4,6]] has rank 1; null space should have dimension 2.
	m := NewMatrix(2, 3)
	vals := [][]int64{{1, 2, 3}, {2, 4, 6}}
	for i, row := range vals {
		for j, v := range row {
			m.Set(i, j, q(v))
		}
	}
	basis, err := RationalNullSpace(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(basis) != 2 {
		t.Fatalf("expected null space dimension 2, got %d", len(basis))
	}
	for _, v := range basis {
		var sum0, sum1 numeric.Q = numeric.ZeroQ(), numeric.ZeroQ()
		for j, c := range v {
			sum0 = sum0.Add(c.Mul(m.At(0, j)))
			sum1 = sum1.Add(c.Mul(m.At(1, j)))
		}
		if !sum0.IsZero() || !sum1.IsZero() {
			t.Errorf("basis vector %v is not in the null space", v)
		}
	}
}

func TestRationalNullSpaceFullRankIsEmpty(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Set(0, 0, numeric.OneQ())
	m.Set(1, 1, numeric.OneQ())
	basis, err := RationalNullSpace(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(basis) != 0 {
		t.Errorf("full rank matrix should have empty null space, got %d vectors", len(basis))
	}
}

func TestModInvFermat(t *testing.T) {
	const p = int64(101)
	for a := int64(1); a < p; a++ {
		inv, err := ModInv(a, p)
		if err != nil {
			t.Fatal(err)
		}
		if ModMul(a, inv, p) != 1 {
			t.Errorf("%d * inv(%d)=%d != 1 mod %d", a, a, inv, p)
		}
	}
}

func TestModularNullSpaceMatchesRational(t *testing.T) {
	const p = int64(1000003)
	m := [][]int64{{1, 2, 3}, {2, 4, 6}}
	basis, err := ModularNullSpace(m, 2, 3, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(basis) != 2 {
		t.Fatalf("expected null space dimension 2, got %d", len(basis))
	}
}
