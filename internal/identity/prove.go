package identity

import (
	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/symbol"
)

// ProofResultKind discriminates the ProofResult variants.
type ProofResultKind int

const (
	Proved ProofResultKind = iota
	NotModular
	NegativeOrder
	CounterExample
)

// ProofResult is the outcome of attempting to prove an eta-quotient
// identity (spec §4.9).
type ProofResult struct {
	Kind ProofResultKind

	// Proved
	Level              int64
	CuspOrders         []CuspOrder
	SturmBound         int64
	VerificationTerms  int64

	// NotModular
	FailedConditions []string

	// NegativeOrder
	Cusp  Cusp
	Order numeric.Q

	// CounterExample
	CoefficientIndex int64
	Expected         numeric.Q
	Actual           numeric.Q
}

// CuspOrder pairs a cusp with its computed invariant order.
type CuspOrder struct {
	Cusp  Cusp
	Order numeric.Q
}

func (r ProofResult) IsProved() bool         { return r.Kind == Proved }
func (r ProofResult) IsCounterExample() bool { return r.Kind == CounterExample }

// EtaTerm is one coefficient*eta-quotient summand of an identity
// LHS - RHS = 0.
type EtaTerm struct {
	Coeff numeric.Q
	Eta   EtaExpression
}

// EtaIdentity represents sum_i c_i*f_i(q) = 0 for a Gamma_0(N) level.
type EtaIdentity struct {
	Terms []EtaTerm
	Level int64
}

// TwoSided builds the identity LHS = RHS as terms [(+1, lhs), (-1, rhs)].
func TwoSided(lhs, rhs EtaExpression, level int64) EtaIdentity {
	return EtaIdentity{
		Terms: []EtaTerm{
			{Coeff: numeric.OneQ(), Eta: lhs},
			{Coeff: numeric.OneQ().Neg(), Eta: rhs},
		},
		Level: level,
	}
}

// sturmBound computes the Sturm bound B = floor(weight * index / 12)
// for modular forms of the given weight on Gamma_0(level), with
// index = [SL_2(Z):Gamma_0(N)] = N * prod_{p|N} (1 + 1/p).
func sturmBound(weight, level int64) int64 {
	n, indexNumer, indexDenom := level, level, int64(1)
	p := int64(2)
	for p*p <= n {
		if n%p == 0 {
			indexNumer *= p + 1
			indexDenom *= p
			for n%p == 0 {
				n /= p
			}
		}
		p++
	}
	if n > 1 {
		indexNumer *= n + 1
		indexDenom *= n
	}
	return (weight * indexNumer) / (12 * indexDenom)
}

// qSymbol returns a symbol.ID for "q" via a fresh registry. Any
// EtaIdentity proof is self-contained: the symbol never escapes this
// function's call tree, so a dedicated registry avoids entangling the
// proving engine with a caller's arena.
func qSymbol() symbol.ID {
	return symbol.New().Intern("q")
}

// ProveEtaIdentity attempts to prove an eta-quotient identity via the
// valence formula: for a two-term identity with unit coefficients,
// build the combined ratio eta quotient, check Newman's conditions,
// enumerate cusps, and verify all orders are non-negative plus a
// q-expansion check to the Sturm bound. Falls back to direct
// q-expansion comparison for multi-term or non-unit-coefficient
// identities.
func ProveEtaIdentity(identity EtaIdentity) (ProofResult, error) {
	if len(identity.Terms) == 2 {
		c1, e1 := identity.Terms[0].Coeff, identity.Terms[0].Eta
		c2, e2 := identity.Terms[1].Coeff, identity.Terms[1].Eta

		var lhs, rhs EtaExpression
		unitCoeffs := true
		if c1.Equals(numeric.OneQ()) && c2.Equals(numeric.OneQ().Neg()) {
			lhs, rhs = e1, e2
		} else if c1.Equals(numeric.OneQ().Neg()) && c2.Equals(numeric.OneQ()) {
			lhs, rhs = e2, e1
		} else {
			unitCoeffs = false
		}

		if unitCoeffs {
			combinedFactors := make(map[int64]int64)
			for d, r := range lhs.Factors {
				combinedFactors[d] += r
			}
			for d, r := range rhs.Factors {
				combinedFactors[d] -= r
			}
			for d, r := range combinedFactors {
				if r == 0 {
					delete(combinedFactors, d)
				}
			}
			combined, err := NewEtaExpression(combinedFactors, identity.Level)
			if err != nil {
				return ProofResult{}, err
			}
			return proveSingleEtaQuotient(combined, identity)
		}
	}

	return proveByExpansion(identity)
}

// proveSingleEtaQuotient applies the valence-formula core: Newman check,
// cusp enumeration, non-negative order check, then q-expansion
// verification to the Sturm bound.
func proveSingleEtaQuotient(combined EtaExpression, identity EtaIdentity) (ProofResult, error) {
	level := identity.Level

	if len(combined.Factors) == 0 {
		cusps, err := Cuspmake(level)
		if err != nil {
			return ProofResult{}, err
		}
		orders := make([]CuspOrder, len(cusps))
		for i, c := range cusps {
			orders[i] = CuspOrder{Cusp: c, Order: numeric.ZeroQ()}
		}
		return ProofResult{Kind: Proved, Level: level, CuspOrders: orders}, nil
	}

	modularity := combined.CheckModularity()
	if !modularity.Modular {
		return ProofResult{Kind: NotModular, FailedConditions: modularity.FailedConditions}, nil
	}

	cusps, err := Cuspmake(level)
	if err != nil {
		return ProofResult{}, err
	}

	var cuspOrders []CuspOrder
	for _, c := range cusps {
		ord := EtaOrderAtCusp(combined, c)
		if ord.Cmp(numeric.ZeroQ()) < 0 {
			return ProofResult{Kind: NegativeOrder, Cusp: c, Order: ord}, nil
		}
		cuspOrders = append(cuspOrders, CuspOrder{Cusp: c, Order: ord})
	}

	weight := combined.Weight()
	var weightI64 int64
	if !weight.IsZero() {
		weightI64 = weight.AsZ().BigInt().Int64()
	}

	var bound int64 = 1
	if weightI64 != 0 {
		bound = sturmBound(weightI64, level)
	}

	verificationTerms := bound
	if verificationTerms < 5 {
		verificationTerms = 5
	}
	trunc := verificationTerms + 10

	qVar := qSymbol()
	total := fps.Zero(qVar, trunc)
	for _, term := range identity.Terms {
		expanded, err := term.Eta.ToSeries(qVar, trunc)
		if err != nil {
			return ProofResult{}, err
		}
		scaled := fps.ScalarMul(term.Coeff, expanded)
		total, err = fps.Add(total, scaled)
		if err != nil {
			return ProofResult{}, err
		}
	}

	for i := int64(0); i < verificationTerms; i++ {
		if i < total.TruncationOrder() {
			c := total.CoeffUnchecked(i)
			if !c.IsZero() {
				return ProofResult{Kind: CounterExample, CoefficientIndex: i, Expected: numeric.ZeroQ(), Actual: c}, nil
			}
		}
	}

	return ProofResult{
		Kind:              Proved,
		Level:             level,
		CuspOrders:        cuspOrders,
		SturmBound:        bound,
		VerificationTerms: verificationTerms,
	}, nil
}

// proveByExpansion expands all terms and checks the sum vanishes to a
// fixed depth, with no structural cusp analysis.
func proveByExpansion(identity EtaIdentity) (ProofResult, error) {
	const trunc = 100
	qVar := qSymbol()

	total := fps.Zero(qVar, trunc)
	for _, term := range identity.Terms {
		expanded, err := term.Eta.ToSeries(qVar, trunc)
		if err != nil {
			return ProofResult{}, err
		}
		scaled := fps.ScalarMul(term.Coeff, expanded)
		var err2 error
		total, err2 = fps.Add(total, scaled)
		if err2 != nil {
			return ProofResult{}, err2
		}
	}

	for i := int64(0); i < trunc; i++ {
		c := total.CoeffUnchecked(i)
		if !c.IsZero() {
			return ProofResult{Kind: CounterExample, CoefficientIndex: i, Expected: numeric.ZeroQ(), Actual: c}, nil
		}
	}

	return ProofResult{Kind: Proved, Level: identity.Level, SturmBound: trunc, VerificationTerms: trunc}, nil
}
