// Package errors provides structured error types for the rawvec library.
//
// Errors are categorized by Phase (which container operation failed)
// and Kind (error category). The Error type includes positional
// context - the element index involved and the container length - plus
// a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCopy, errors.KindCopyFailed).
//		Index(3).
//		Length(10).
//		Detail("relocating into grown block").
//		Cause(cause).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseAccess, 10, 5)
//	err := errors.ConstructFailed(7, cause)
//
// All errors implement the standard error interface and support
// errors.Is/As. Two *Error values match under errors.Is when their
// Phase and Kind agree, so callers can test for a failure class
// without caring about positional context:
//
//	if errors.Is(err, errors.New(errors.PhaseAlloc, errors.KindAllocation).Build()) {
//	    // capacity limit hit
//	}
package errors
