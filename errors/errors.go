package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which component the error originated in
type Phase string

const (
	PhaseValue  Phase = "value"  // value construction/release
	PhaseArray  Phase = "array"  // array mutation/access
	PhaseRender Phase = "render" // template scanning/substitution
	PhaseInput  Phase = "input"  // console line reading
	PhaseFile   Phase = "file"   // file helpers
	PhaseClock  Phase = "clock"  // time reading
)

// Kind categorizes the error
type Kind string

const (
	KindAllocation           Kind = "allocation"
	KindInvalidArgument      Kind = "invalid_argument"
	KindOutOfBounds          Kind = "out_of_bounds"
	KindMalformedPlaceholder Kind = "malformed_placeholder"
	KindIOFailure            Kind = "io_failure"
)

// Errno-class codes reported through the last-error record.
// Code 0 always means "no error recorded".
const (
	CodeIO    = 5  // EIO
	CodeNoMem = 12 // ENOMEM
	CodeInval = 22 // EINVAL
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Code maps the error's kind to its errno-class code.
func (e *Error) Code() int {
	switch e.Kind {
	case KindAllocation:
		return CodeNoMem
	case KindIOFailure:
		return CodeIO
	default:
		return CodeInval
	}
}

// CodeOf returns the errno-class code for any error value.
// Errors that are not *Error report CodeIO; they can only have bubbled
// up from an underlying I/O collaborator.
func CodeOf(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(*Error); ok {
		return e.Code()
	}
	return CodeIO
}

// Convenience constructors for common failure patterns

// AllocationFailed creates a growth/creation out-of-memory error
func AllocationFailed(phase Phase, need int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d slots", need),
	}
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArgument,
		Detail: detail,
	}
}

// NilHandle creates an invalid argument error for a nil receiver
func NilHandle(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArgument,
		Detail: fmt.Sprintf("nil %s handle", what),
	}
}

// OutOfBounds creates an index out of bounds error
func OutOfBounds(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
	}
}

// MalformedPlaceholder creates an error for an unterminated indexed placeholder
func MalformedPlaceholder(offset int) *Error {
	return &Error{
		Phase:  PhaseRender,
		Kind:   KindMalformedPlaceholder,
		Detail: fmt.Sprintf("unterminated indexed placeholder at offset %d", offset),
	}
}

// IO wraps a failure bubbled up from an underlying I/O collaborator
func IO(phase Phase, op string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIOFailure,
		Detail: op,
		Cause:  cause,
	}
}
