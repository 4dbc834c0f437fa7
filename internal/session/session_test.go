package session

import (
	"testing"

	"qsym/internal/expr"
	"qsym/internal/numeric"
)

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession()
	if s.MaxSimplifyIterations != defaultMaxSimplifyIterations {
		t.Errorf("MaxSimplifyIterations = %d, want %d", s.MaxSimplifyIterations, defaultMaxSimplifyIterations)
	}
	if s.Arena == nil {
		t.Error("Arena should be non-nil")
	}
	if s.ID.String() == "" {
		t.Error("ID should be populated")
	}
}

func TestWithMaxSimplifyIterationsChains(t *testing.T) {
	s := NewSession().WithMaxSimplifyIterations(7)
	if s.MaxSimplifyIterations != 7 {
		t.Errorf("MaxSimplifyIterations = %d, want 7", s.MaxSimplifyIterations)
	}
}

func TestSimplifyUsesSessionArena(t *testing.T) {
	s := NewSession()
	x := s.Arena.InternSymbol("x")
	zero := s.Arena.InternInt(numeric.NewZ(0))
	sum := expr.MakeAdd(s.Arena, []expr.Ref{x, zero})

	simplified := s.Simplify(sum)
	if simplified != x {
		t.Errorf("Simplify(x+0) = %v, want %v", simplified, x)
	}
}

func TestOpenIdentityStoreRequiresPath(t *testing.T) {
	s := NewSession()
	if _, err := s.OpenIdentityStore(); err == nil {
		t.Error("expected an error when IdentityStorePath is unset")
	}
}

func TestLoggerDefaultsWhenUnset(t *testing.T) {
	s := NewSession()
	if s.Logger() == nil {
		t.Error("Logger() should never return nil")
	}
}
