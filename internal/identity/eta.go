package identity

import (
	"fmt"
	"math/big"
	"sort"

	"qsym/internal/fps"
	"qsym/internal/numeric"
	"qsym/internal/qseries"
	"qsym/internal/qsymerr"
	"qsym/internal/symbol"
)

// ModularityResult is the outcome of checking Newman's conditions.
type ModularityResult struct {
	Modular          bool
	FailedConditions []string
}

// EtaExpression represents prod_{delta|N} eta(delta*tau)^{r_delta}: a
// finite map delta -> r_delta plus a level N that every delta divides.
type EtaExpression struct {
	Factors map[int64]int64
	Level   int64
}

// NewEtaExpression validates that every delta divides level.
func NewEtaExpression(factors map[int64]int64, level int64) (EtaExpression, error) {
	for delta := range factors {
		if level%delta != 0 {
			return EtaExpression{}, qsymerr.Newf(qsymerr.InvariantViolation, "identity.NewEtaExpression",
				"delta %d does not divide level %d", delta, level)
		}
	}
	cp := make(map[int64]int64, len(factors))
	for k, v := range factors {
		if v != 0 {
			cp[k] = v
		}
	}
	return EtaExpression{Factors: cp, Level: level}, nil
}

// EtaFromPairs builds an EtaExpression from (delta, r_delta) pairs,
// dropping zero entries.
func EtaFromPairs(pairs [][2]int64, level int64) (EtaExpression, error) {
	factors := make(map[int64]int64, len(pairs))
	for _, p := range pairs {
		if p[1] != 0 {
			factors[p[0]] = p[1]
		}
	}
	return NewEtaExpression(factors, level)
}

// sortedDeltas returns the keys of e.Factors in ascending order.
func (e EtaExpression) sortedDeltas() []int64 {
	ds := make([]int64, 0, len(e.Factors))
	for d := range e.Factors {
		ds = append(ds, d)
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i] < ds[j] })
	return ds
}

// Weight returns (sum r_delta) / 2.
func (e EtaExpression) Weight() numeric.Q {
	var sum int64
	for _, r := range e.Factors {
		sum += r
	}
	q, _ := numeric.NewQ(sum, 2)
	return q
}

// QShift returns (sum delta*r_delta) / 24.
func (e EtaExpression) QShift() numeric.Q {
	var sum int64
	for d, r := range e.Factors {
		sum += d * r
	}
	q, _ := numeric.NewQ(sum, 24)
	return q
}

// CheckModularity verifies five conditions for a weight-zero modular
// function on Gamma_0(N): every delta divides N; sum(delta*r_delta) is
// divisible by 24; sum((N/delta)*r_delta) is divisible by 24;
// prod(delta^|r_delta|) is a perfect square; sum(r_delta) == 0 (Newman's
// four conditions on the q-expansion plus the divisibility precondition
// on the factor set itself).
func (e EtaExpression) CheckModularity() ModularityResult {
	var failed []string

	for delta := range e.Factors {
		if e.Level%delta != 0 {
			failed = append(failed, fmt.Sprintf("delta %d does not divide level %d", delta, e.Level))
		}
	}

	var sum1 int64
	for d, r := range e.Factors {
		sum1 += d * r
	}
	if sum1%24 != 0 {
		failed = append(failed, fmt.Sprintf("sum(delta*r_delta) = %d is not divisible by 24", sum1))
	}

	var sum2 int64
	for d, r := range e.Factors {
		sum2 += (e.Level / d) * r
	}
	if sum2%24 != 0 {
		failed = append(failed, fmt.Sprintf("sum((N/delta)*r_delta) = %d is not divisible by 24", sum2))
	}

	product := big.NewInt(1)
	for _, d := range e.sortedDeltas() {
		r := e.Factors[d]
		rAbs := r
		if rAbs < 0 {
			rAbs = -rAbs
		}
		term := new(big.Int).Exp(big.NewInt(d), big.NewInt(rAbs), nil)
		product.Mul(product, term)
	}
	sqrt := new(big.Int).Sqrt(product)
	sqrtSq := new(big.Int).Mul(sqrt, sqrt)
	if sqrtSq.Cmp(product) != 0 {
		failed = append(failed, "prod(delta^|r_delta|) is not a perfect square")
	}

	var sumR int64
	for _, r := range e.Factors {
		sumR += r
	}
	if sumR != 0 {
		failed = append(failed, fmt.Sprintf("sum(r_delta) = %d (weight is not zero)", sumR))
	}

	if len(failed) == 0 {
		return ModularityResult{Modular: true}
	}
	return ModularityResult{Modular: false, FailedConditions: failed}
}

// ToSeries expands the eta quotient to a formal power series: the
// product over delta of etaq(delta, delta, ...)^{r_delta}, shifted by
// q^{q_shift}. Fails if the q-shift is not an integer.
func (e EtaExpression) ToSeries(variable symbol.ID, truncation int64) (fps.Series, error) {
	shift := e.QShift()
	if !shift.IsInteger() {
		return fps.Series{}, qsymerr.Newf(qsymerr.InvariantViolation, "identity.EtaExpression.ToSeries",
			"q-shift %s is not an integer; this eta quotient has no integer q-power expansion", shift.String())
	}
	shiftI := shift.AsZ().BigInt().Int64()

	result := fps.One(variable, truncation)
	for _, delta := range e.sortedDeltas() {
		r := e.Factors[delta]
		etaDelta, err := qseries.Etaq(delta, delta, variable, truncation)
		if err != nil {
			return fps.Series{}, err
		}
		powered, err := fps.PowInt(etaDelta, r)
		if err != nil {
			return fps.Series{}, err
		}
		result, err = fps.Mul(result, powered)
		if err != nil {
			return fps.Series{}, err
		}
	}

	if shiftI != 0 {
		monomial := fps.Monomial(variable, numeric.OneQ(), shiftI, truncation)
		var err error
		result, err = fps.Mul(monomial, result)
		if err != nil {
			return fps.Series{}, err
		}
	}
	return result, nil
}

// EtaFromProdmakeForm builds an EtaExpression from a prodmake.Form's
// integer-exponent map (delta -> exponent), computing the level as the
// LCM of all deltas actually used.
func EtaFromProdmakeForm(exponents map[int64]int64) EtaExpression {
	if len(exponents) == 0 {
		return EtaExpression{Factors: map[int64]int64{}, Level: 1}
	}
	return EtaExpression{Factors: exponents, Level: levelFromDeltas(exponents)}
}

// levelFromDeltas returns the LCM of a set of deltas, or 1 if empty.
func levelFromDeltas(factors map[int64]int64) int64 {
	level := int64(1)
	for d := range factors {
		level = lcm(level, d)
	}
	return level
}
