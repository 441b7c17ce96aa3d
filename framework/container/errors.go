package container

import (
	"errors"
	"strings"
)

var (
	// ErrNoConstructor is wrapped by a ConstructionError when a type has no
	// registered constructor and cannot be built from its own fields.
	ErrNoConstructor = errors.New("no usable constructor")

	// ErrAmbiguousConstructor is wrapped by a ConstructionError when several
	// constructors are registered for one type and none (or more than one) is
	// marked Primary.
	ErrAmbiguousConstructor = errors.New("ambiguous constructor")

	// ErrConstructorPanic is wrapped by a ConstructionError when a constructor
	// panics. The panic value is part of the message.
	ErrConstructorPanic = errors.New("constructor panicked")
)

// ConstructionError reports that the type named by Key could not be built.
// Err wraps ErrNoConstructor, ErrAmbiguousConstructor or ErrConstructorPanic,
// or is the error returned by the constructor itself.
type ConstructionError struct {
	Key TypeKey
	Err error
}

func (e *ConstructionError) Error() string {
	return "container: cannot construct " + e.Key.String() + ": " + e.Err.Error()
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// CyclicDependencyError reports a dependency cycle found during resolution.
// Cycle starts and ends with the same key, e.g. [*A, *B, *A].
type CyclicDependencyError struct {
	Cycle []TypeKey
}

func (e *CyclicDependencyError) Error() string {
	chain := make([]string, len(e.Cycle))
	for i, k := range e.Cycle {
		chain[i] = k.String()
	}
	return "container: circular dependency: " + strings.Join(chain, " -> ")
}

// newCycleError builds the cycle from the resolution stack, starting at the
// first occurrence of key.
func newCycleError(stack []TypeKey, key TypeKey) *CyclicDependencyError {
	start := 0
	for i, k := range stack {
		if k == key {
			start = i
			break
		}
	}
	cycle := make([]TypeKey, 0, len(stack)-start+1)
	cycle = append(cycle, stack[start:]...)
	cycle = append(cycle, key)
	return &CyclicDependencyError{Cycle: cycle}
}
