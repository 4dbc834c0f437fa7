// Package qseries implements the named q-series function library (spec
// §4.7): q-Pochhammer symbols, q-binomial coefficients, eta/theta/triple
// and quintuple products, Winquist's identity, partition-theoretic
// generating functions, and the classical mock theta functions.
package qseries

import "qsym/internal/numeric"

// Monomial is c*q^power, used as the `a` parameter of a q-Pochhammer
// symbol (a;q)_n.
type Monomial struct {
	Coeff numeric.Q
	Power int64
}

// QPower returns the monomial 1*q^m.
func QPower(m int64) Monomial { return Monomial{Coeff: numeric.OneQ(), Power: m} }

// Constant returns the monomial c*q^0.
func Constant(c numeric.Q) Monomial { return Monomial{Coeff: c, Power: 0} }

// Order is the order parameter of a q-Pochhammer symbol (a;q)_n: either
// a finite signed count of factors or the infinite product.
type Order struct {
	finite  int64
	n       int64
	isInfin bool
}

// Finite builds a finite order of n factors (n may be negative, zero,
// or positive).
func Finite(n int64) Order { return Order{n: n} }

// Infinite is the infinite-product order.
var Infinite = Order{isInfin: true}

// IsInfinite reports whether the order is the infinite product.
func (o Order) IsInfinite() bool { return o.isInfin }

// N returns the finite factor count; only meaningful when !IsInfinite().
func (o Order) N() int64 { return o.n }
