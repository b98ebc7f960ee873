package ecs

import "fmt"

// ErrorKind categorizes the ways a core operation can fail. Core operations
// return one of these rather than panicking; the only panics are the
// construction-time parameter checks in components.NewPhysics.
type ErrorKind int

const (
	// CapacityExhausted means the entity pool or a component pool is full.
	CapacityExhausted ErrorKind = iota
	// InvalidEntityError means the id is stale (destroyed) or was never allocated.
	InvalidEntityError
	// MissingComponent means the operation needs a component the entity lacks.
	MissingComponent
	// DomainError means a parameter was out of range.
	DomainError
	// NumericInstability means an integration step produced non-finite state.
	NumericInstability
)

func (k ErrorKind) String() string {
	switch k {
	case CapacityExhausted:
		return "capacity_exhausted"
	case InvalidEntityError:
		return "invalid_entity"
	case MissingComponent:
		return "missing_component"
	case DomainError:
		return "domain_error"
	case NumericInstability:
		return "numeric_instability"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by fallible core operations. It
// carries a Kind so callers can branch on category without string matching.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is makes Error compatible with errors.Is when compared against a sentinel
// built with the same Kind, e.g. errors.Is(err, &ecs.Error{Kind: ecs.InvalidEntityError}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ErrCapacityExhausted builds a CapacityExhausted error.
func ErrCapacityExhausted(format string, args ...interface{}) *Error {
	return newError(CapacityExhausted, format, args...)
}

// ErrInvalidEntity builds an InvalidEntity error.
func ErrInvalidEntity(id EntityId) *Error {
	return newError(InvalidEntityError, "entity %s is stale or unallocated", id)
}

// ErrMissingComponent builds a MissingComponent error.
func ErrMissingComponent(id EntityId, kind ComponentKind) *Error {
	return newError(MissingComponent, "entity %s has no %s component", id, kind)
}

// ErrDomainError builds a DomainError error.
func ErrDomainError(format string, args ...interface{}) *Error {
	return newError(DomainError, format, args...)
}

// ErrNumericInstability builds a NumericInstability error.
func ErrNumericInstability(format string, args ...interface{}) *Error {
	return newError(NumericInstability, format, args...)
}
