package simplify

import "qsym/internal/expr"

// defaultMaxIterations bounds the fixpoint loop so a buggy rule phase
// cannot hang the engine; 100 rounds vastly exceeds the depth of any
// expression tree produced by the constructors in expr.
const defaultMaxIterations = 100

// Engine drives the four rewrite phases (normalize, cancel, collect,
// simplify_arith) to a fixpoint, restarting the phase sequence from the
// top whenever any phase changes the expression.
type Engine struct {
	maxIterations int
}

// NewEngine returns an Engine with the default iteration bound.
func NewEngine() *Engine {
	return &Engine{maxIterations: defaultMaxIterations}
}

// WithMaxIterations overrides the fixpoint iteration bound.
func (eng *Engine) WithMaxIterations(n int) *Engine {
	eng.maxIterations = n
	return eng
}

// phases is the fixed phase order; each round applies them in sequence
// and restarts from the first as soon as one changes the Ref.
func (eng *Engine) phases() []RuleFunc {
	return []RuleFunc{normalize, cancel, collect, simplifyArith}
}

// Simplify rewrites e to a fixpoint under the phase sequence, bounded by
// maxIterations full passes. Returns the simplified Ref; a Ref is
// unchanged (by hash-consing, ==) exactly when no phase fired.
func (eng *Engine) Simplify(e expr.Ref, a *expr.Arena) expr.Ref {
	current := e
	for iter := 0; iter < eng.maxIterations; iter++ {
		changedThisRound := false
		for _, phase := range eng.phases() {
			next := bottomUpApply(current, a, phase)
			if next != current {
				changedThisRound = true
				current = next
				break
			}
		}
		if !changedThisRound {
			break
		}
	}
	return current
}

// Simplify is a convenience wrapper using the default engine.
func Simplify(e expr.Ref, a *expr.Arena) expr.Ref {
	return NewEngine().Simplify(e, a)
}
