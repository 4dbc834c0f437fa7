// Package session bundles the configuration a long-lived qsym host
// (a CLI, a notebook kernel, a test harness) shares across calls into
// the arena, simplifier, and identity packages: simplification depth,
// optional logging, and the identity store's backing file.
package session

import (
	"log"
	"os"

	"github.com/google/uuid"

	"qsym/internal/expr"
	"qsym/internal/identity"
	"qsym/internal/qsymerr"
	"qsym/internal/simplify"
)

// Session is a per-host configuration bundle plus a shared arena. The
// zero value is not usable; construct with NewSession.
type Session struct {
	ID uuid.UUID

	Arena *expr.Arena

	MaxSimplifyIterations int
	IdentityStorePath     string

	logger *log.Logger
}

const defaultMaxSimplifyIterations = 100

// NewSession builds a Session with a fresh arena and the simplifier's
// default iteration bound. Chain With* calls to customize, matching
// simplify.Engine's WithMaxIterations fluent-setter style.
func NewSession() *Session {
	return &Session{
		ID:                    uuid.New(),
		Arena:                 expr.New(),
		MaxSimplifyIterations: defaultMaxSimplifyIterations,
	}
}

// WithMaxSimplifyIterations overrides the simplifier's fixpoint bound.
func (s *Session) WithMaxSimplifyIterations(n int) *Session {
	s.MaxSimplifyIterations = n
	return s
}

// WithIdentityStorePath sets the sqlite path OpenIdentityStore uses.
func (s *Session) WithIdentityStorePath(path string) *Session {
	s.IdentityStorePath = path
	return s
}

// WithLogger attaches a logger; sessions are silent until one is set.
func (s *Session) WithLogger(l *log.Logger) *Session {
	s.logger = l
	return s
}

// Logger returns the session's logger, defaulting to one writing to
// stderr if none was set.
func (s *Session) Logger() *log.Logger {
	if s.logger == nil {
		s.logger = log.New(os.Stderr, "qsym: ", log.LstdFlags)
	}
	return s.logger
}

// Simplify runs the session's configured simplification engine over
// ref in the session's arena.
func (s *Session) Simplify(ref expr.Ref) expr.Ref {
	eng := simplify.NewEngine().WithMaxIterations(s.MaxSimplifyIterations)
	return eng.Simplify(ref, s.Arena)
}

// OpenIdentityStore opens the session's configured sqlite identity
// store. Fails if IdentityStorePath was never set.
func (s *Session) OpenIdentityStore() (*identity.SQLStore, error) {
	if s.IdentityStorePath == "" {
		return nil, qsymerr.New(qsymerr.InvariantViolation, "session.OpenIdentityStore", "no IdentityStorePath configured")
	}
	return identity.OpenSQLStore(s.IdentityStorePath)
}
