// Package errors defines the typed error kinds used across the evaluation
// pipeline: unknown variables, foreign nodes, and bad render configuration.
package errors

import "fmt"

// Kind classifies a SurfaceError.
type Kind string

const (
	// UnknownVariable is returned when a graph references a variable name
	// that has no bound value in the evaluation call.
	UnknownVariable Kind = "UnknownVariable"

	// BadNode is returned when a Node minted by one Context is passed to a
	// different Context.
	BadNode Kind = "BadNode"

	// BadConfig is returned when a render.Config violates the tile-size or
	// thread-count invariants.
	BadConfig Kind = "BadConfig"

	// InternalInvariant marks a violated allocator/evaluator invariant —
	// a programming error, not a condition a caller can recover from. It
	// is never returned as an error value; see Invariant in panic.go,
	// which panics with a *SurfaceError of this Kind so a recovering
	// caller can still observe which Kind it was.
	InternalInvariant Kind = "InternalInvariant"
)

// SurfaceError is the typed error returned by the builder, lowering, and
// renderer APIs. Allocator and evaluator invariant violations are
// programming errors and panic instead of returning a SurfaceError; see
// internal/errors/panic.go.
type SurfaceError struct {
	Kind    Kind
	Message string
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewUnknownVariable reports a reference to an unbound variable name.
func NewUnknownVariable(name string) *SurfaceError {
	return &SurfaceError{
		Kind:    UnknownVariable,
		Message: fmt.Sprintf("unknown variable %q", name),
	}
}

// NewBadNode reports a Node used with a Context that did not mint it.
func NewBadNode(index int) *SurfaceError {
	return &SurfaceError{
		Kind:    BadNode,
		Message: fmt.Sprintf("node %d does not belong to this context", index),
	}
}

// NewBadConfig reports an invalid render configuration, with msg describing
// which invariant was violated.
func NewBadConfig(msg string) *SurfaceError {
	return &SurfaceError{
		Kind:    BadConfig,
		Message: msg,
	}
}
