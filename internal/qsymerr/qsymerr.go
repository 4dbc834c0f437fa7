// Package qsymerr defines the error kinds the symbolic core distinguishes.
//
// Modeled on sentra's internal/errors package: a typed Kind enum plus a
// structured error value, but adapted to a library with no source
// locations of its own — callers attach component names instead of
// file/line.
package qsymerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies the class of error condition the core raises.
type Kind string

const (
	DivisionByZero    Kind = "DivisionByZero"
	UnknownCoefficient Kind = "UnknownCoefficient"
	VariableMismatch  Kind = "VariableMismatch"
	InvariantViolation Kind = "InvariantViolation"
	ProofFailure      Kind = "ProofFailure"
)

// Error is the structured error value returned by core operations.
type Error struct {
	Kind      Kind
	Component string
	Message   string
	cause     error
}

func (e *Error) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Component, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/As.
func (e *Error) Unwrap() error { return e.cause }

// New builds an Error of the given kind.
func New(kind Kind, component, message string) *Error {
	return &Error{Kind: kind, Component: component, Message: message}
}

// Newf builds an Error of the given kind with a formatted message.
func Newf(kind Kind, component, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Component: component, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a stack-carrying cause via pkg/errors, preserving Kind.
func (e *Error) Wrap(cause error) *Error {
	e.cause = errors.WithStack(cause)
	return e
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
