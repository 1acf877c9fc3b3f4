package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which container operation the error occurred in
type Phase string

const (
	PhaseAlloc     Phase = "alloc"     // storage block allocation
	PhaseConstruct Phase = "construct" // element construction
	PhaseCopy      Phase = "copy"      // element duplication
	PhaseMove      Phase = "move"      // element relocation
	PhaseAssign    Phase = "assign"    // bulk assignment
	PhaseAccess    Phase = "access"    // element access
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds     Kind = "out_of_bounds"
	KindAllocation      Kind = "allocation"
	KindConstructFailed Kind = "construct_failed"
	KindCopyFailed      Kind = "copy_failed"
	KindMoveFailed      Kind = "move_failed"
	KindNotCopyable     Kind = "not_copyable"
	KindEmptyContainer  Kind = "empty_container"
	KindInvalidPosition Kind = "invalid_position"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Index  int // element index the error refers to, -1 when not positional
	Length int // container length at the time of the error, -1 when unknown
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Index >= 0 {
		fmt.Fprintf(&b, " at index %d", e.Index)
		if e.Length >= 0 {
			fmt.Fprintf(&b, " (length %d)", e.Length)
		}
	}

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

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Index:  -1,
			Length: -1,
		},
	}
}

// Index sets the element index the error refers to
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	return b
}

// Length sets the container length at the time of the error
func (b *Builder) Length(n int) *Builder {
	b.err.Length = n
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfBounds creates an out of bounds access error
func OutOfBounds(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Index:  index,
		Length: length,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(requested, limit int) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("requested capacity %d exceeds limit %d", requested, limit),
		Index:  -1,
		Length: -1,
	}
}

// ConstructFailed wraps a failed element construction
func ConstructFailed(index int, cause error) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindConstructFailed,
		Index:  index,
		Length: -1,
		Cause:  cause,
	}
}

// CopyFailed wraps a failed element duplication
func CopyFailed(index int, cause error) *Error {
	return &Error{
		Phase:  PhaseCopy,
		Kind:   KindCopyFailed,
		Index:  index,
		Length: -1,
		Cause:  cause,
	}
}

// MoveFailed wraps a failed element relocation
func MoveFailed(index int, cause error) *Error {
	return &Error{
		Phase:  PhaseMove,
		Kind:   KindMoveFailed,
		Index:  index,
		Length: -1,
		Cause:  cause,
	}
}

// NotCopyable reports an operation that requires duplication on a
// container whose lifecycle has no copy operation
func NotCopyable(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotCopyable,
		Detail: "element lifecycle has no copy operation",
		Index:  -1,
		Length: -1,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Index:  -1,
		Length: -1,
		Cause:  cause,
	}
}
