package errors

import "fmt"

// Invariant panics with a *SurfaceError of Kind InternalInvariant. The
// register allocator and the evaluators call this when an internal
// invariant is violated; per the allocator's design, such a violation is a
// compiler bug, not a condition a caller can recover from, so it is never
// returned as an error value — but a recovering caller (e.g. a test
// harness) can still type-assert the recovered value back to *SurfaceError
// to inspect its Kind.
func Invariant(format string, args ...any) {
	panic(&SurfaceError{
		Kind:    InternalInvariant,
		Message: fmt.Sprintf(format, args...),
	})
}
