// Package expr implements the hash-consed expression arena (spec §4.3)
// and its canonical constructors (spec §4.4), grounded on sentra's
// internal/bytecode.Chunk append-and-index interning pattern and its
// internal/module.ModuleLoader mutex-guarded cache.
package expr

import (
	"qsym/internal/numeric"
	"qsym/internal/symbol"
)

// Ref is a dense handle into the expression arena. Structural equality
// is handle equality by the hash-consing invariant.
type Ref int32

// ThetaIndex identifies which classical Jacobi theta function a
// JacobiTheta node denotes (1..4).
type ThetaIndex int

const (
	Theta1 ThetaIndex = 1
	Theta2 ThetaIndex = 2
	Theta3 ThetaIndex = 3
	Theta4 ThetaIndex = 4
)

// Kind discriminates the Expr variants.
type Kind uint8

const (
	KindInteger Kind = iota
	KindRational
	KindSymbol
	KindInfinity
	KindUndefined
	KindAdd
	KindMul
	KindNeg
	KindPow
	KindQPochhammer
	KindJacobiTheta
	KindDedekindEta
	KindBasicHypergeometric
)

// Expr is the tagged DAG node. Only the fields relevant to Kind are
// populated; this mirrors the Rust source's enum-with-payload shape
// using a single flat struct, which keeps the arena's backing slice a
// plain []Expr with no per-variant boxing.
type Expr struct {
	Kind Kind

	// KindInteger
	Int numeric.Z
	// KindRational
	Rat numeric.Q
	// KindSymbol
	Sym symbol.ID

	// KindAdd, KindMul: sorted, length >= 2
	Children []Ref

	// KindNeg: single child
	Operand Ref

	// KindPow: (Base, Exp)
	Base Ref
	Exp  Ref

	// KindQPochhammer: (Base, Nome, Order)
	PochBase  Ref
	PochNome  Ref
	PochOrder Ref

	// KindJacobiTheta
	ThetaIdx  ThetaIndex
	ThetaNome Ref

	// KindDedekindEta
	Tau Ref

	// KindBasicHypergeometric
	Upper    []Ref
	Lower    []Ref
	HGNome   Ref
	HGArg    Ref
}

// Equal reports structural equality between two Expr values — the
// predicate the arena's dedup map is built on.
func (e Expr) Equal(o Expr) bool {
	if e.Kind != o.Kind {
		return false
	}
	switch e.Kind {
	case KindInteger:
		return e.Int.Equals(o.Int)
	case KindRational:
		return e.Rat.Equals(o.Rat)
	case KindSymbol:
		return e.Sym == o.Sym
	case KindInfinity, KindUndefined:
		return true
	case KindAdd, KindMul:
		return refSliceEqual(e.Children, o.Children)
	case KindNeg:
		return e.Operand == o.Operand
	case KindPow:
		return e.Base == o.Base && e.Exp == o.Exp
	case KindQPochhammer:
		return e.PochBase == o.PochBase && e.PochNome == o.PochNome && e.PochOrder == o.PochOrder
	case KindJacobiTheta:
		return e.ThetaIdx == o.ThetaIdx && e.ThetaNome == o.ThetaNome
	case KindDedekindEta:
		return e.Tau == o.Tau
	case KindBasicHypergeometric:
		return refSliceEqual(e.Upper, o.Upper) && refSliceEqual(e.Lower, o.Lower) &&
			e.HGNome == o.HGNome && e.HGArg == o.HGArg
	default:
		return false
	}
}

func refSliceEqual(a, b []Ref) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// dedupKey is a comparable dedup key. Go maps can't key on slices, so
// composite variants (Add/Mul/BasicHypergeometric) are keyed by a string
// encoding of their Ref sequence alongside the scalar fields.
type dedupKey struct {
	kind     Kind
	scalar   [3]int64
	theta    ThetaIndex
	numHash  uint64
	childKey string
}

func (e Expr) dedupKey() dedupKey {
	k := dedupKey{kind: e.Kind}
	switch e.Kind {
	case KindInteger:
		k.numHash = e.Int.Hash()
	case KindRational:
		k.numHash = e.Rat.Hash()
	case KindSymbol:
		k.scalar[0] = int64(e.Sym)
	case KindAdd, KindMul:
		k.childKey = encodeRefs(e.Children)
	case KindNeg:
		k.scalar[0] = int64(e.Operand)
	case KindPow:
		k.scalar[0] = int64(e.Base)
		k.scalar[1] = int64(e.Exp)
	case KindQPochhammer:
		k.scalar[0] = int64(e.PochBase)
		k.scalar[1] = int64(e.PochNome)
		k.scalar[2] = int64(e.PochOrder)
	case KindJacobiTheta:
		k.theta = e.ThetaIdx
		k.scalar[0] = int64(e.ThetaNome)
	case KindDedekindEta:
		k.scalar[0] = int64(e.Tau)
	case KindBasicHypergeometric:
		k.childKey = encodeRefs(e.Upper) + "|" + encodeRefs(e.Lower)
		k.scalar[0] = int64(e.HGNome)
		k.scalar[1] = int64(e.HGArg)
	}
	return k
}

func encodeRefs(refs []Ref) string {
	b := make([]byte, 0, len(refs)*5)
	for _, r := range refs {
		v := uint32(r)
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), ',')
	}
	return string(b)
}
