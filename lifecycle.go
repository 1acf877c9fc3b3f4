package rawvec

// Dropper is optionally implemented by element types that need cleanup
// beyond having their references released. The default lifecycle calls
// Drop() before zeroing a slot.
type Dropper interface {
	Drop()
}

// Lifecycle describes how a container constructs, duplicates, relocates
// and destroys elements of type T. All fields are optional; a nil field
// selects the trivial behavior for that operation. The zero Lifecycle
// is valid but not copyable - use Default for a fully trivial,
// copyable lifecycle.
//
// Relocation between storage blocks moves elements when that cannot
// fail (MoveSafe, or Move is nil) or when T is not copyable, and
// copies otherwise, so that a failure mid-relocation under copy
// semantics leaves the source block fully intact.
type Lifecycle[T any] struct {
	// New default-constructs an element. Nil means the zero value.
	New func() (T, error)

	// Copy duplicates an element. Nil means T is not copyable.
	Copy func(T) (T, error)

	// Move transfers an element out of a slot, leaving the slot
	// reusable. Nil means a plain value transfer, which cannot fail.
	Move func(*T) (T, error)

	// Drop destroys an element in place. Nil means: call Drop() when T
	// implements Dropper, then zero the slot so held references are
	// released.
	Drop func(*T)

	// MoveSafe declares that Move never returns an error. Implied when
	// Move is nil.
	MoveSafe bool
}

// Default returns the trivial lifecycle for T: zero-value construction,
// value copy, non-failing value transfer, and Dropper-aware
// destruction.
func Default[T any]() Lifecycle[T] {
	return Lifecycle[T]{
		Copy:     func(v T) (T, error) { return v, nil },
		MoveSafe: true,
	}
}

// Construct default-constructs a new element.
func (l Lifecycle[T]) Construct() (T, error) {
	if l.New != nil {
		return l.New()
	}
	var zero T
	return zero, nil
}

// Copyable reports whether elements can be duplicated.
func (l Lifecycle[T]) Copyable() bool {
	return l.Copy != nil
}

// Duplicate copy-constructs a new element from v.
// Callers must check Copyable first; Duplicate panics on a
// non-copyable lifecycle, since reaching it is a bug in the container,
// not a recoverable condition.
func (l Lifecycle[T]) Duplicate(v T) (T, error) {
	if l.Copy == nil {
		panic("rawvec: Duplicate on non-copyable lifecycle")
	}
	return l.Copy(v)
}

// Transfer moves the element out of src, leaving the slot reusable.
func (l Lifecycle[T]) Transfer(src *T) (T, error) {
	if l.Move != nil {
		return l.Move(src)
	}
	v := *src
	var zero T
	*src = zero
	return v, nil
}

// Destroy destroys the element in slot and leaves the slot raw.
func (l Lifecycle[T]) Destroy(slot *T) {
	if l.Drop != nil {
		l.Drop(slot)
		return
	}
	if d, ok := any(*slot).(Dropper); ok {
		d.Drop()
	}
	var zero T
	*slot = zero
}

// RelocateByMove reports whether relocation between storage blocks
// should move rather than copy: move when it cannot fail, or when
// there is no copy operation at all.
func (l Lifecycle[T]) RelocateByMove() bool {
	return l.Move == nil || l.MoveSafe || l.Copy == nil
}
