package vector

import (
	"fmt"
	"iter"
	"math"
	"unsafe"

	"github.com/wippyai/rawvec"
	"github.com/wippyai/rawvec/errors"
	"github.com/wippyai/rawvec/rawstore"
	"github.com/wippyai/rawvec/vector/internal/reloc"
)

// Vector is a growable, contiguous sequence of elements of type T.
//
// The vector owns a single raw storage block and a live length: slots
// [0, Len) hold constructed elements, slots [Len, Cap) are raw. Every
// operation maintains that invariant, including on the failure paths -
// a failing operation never leaves the length pointing past
// constructed elements.
//
// A Vector is not synchronized; confine it to one goroutine or guard
// it externally.
type Vector[T any] struct {
	data rawstore.Storage[T]
	size int
	life rawvec.Lifecycle[T]
}

// New returns an empty vector with capacity 0 and the default element
// lifecycle for T.
func New[T any]() *Vector[T] {
	return NewWith(rawvec.Default[T]())
}

// NewWith returns an empty vector using the given element lifecycle.
func NewWith[T any](life rawvec.Lifecycle[T]) *Vector[T] {
	return &Vector[T]{life: life}
}

// NewSize returns a vector of n default-constructed elements with
// capacity exactly n.
func NewSize[T any](n int) (*Vector[T], error) {
	return NewSizeWith(n, rawvec.Default[T]())
}

// NewSizeWith is NewSize with a custom element lifecycle.
func NewSizeWith[T any](n int, life rawvec.Lifecycle[T]) (*Vector[T], error) {
	v := NewWith(life)
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// Of returns a vector holding the given elements, with capacity
// exactly len(elems) and the default lifecycle.
func Of[T any](elems ...T) *Vector[T] {
	v := New[T]()
	if len(elems) == 0 {
		return v
	}
	v.data = rawstore.New[T](len(elems))
	copy(v.data.Block(), elems)
	v.size = len(elems)
	return v
}

// Clone deep-copies the live elements into a new vector with capacity
// exactly Len. It fails when the lifecycle has no copy operation, or
// when duplicating an element fails; either way the receiver is
// untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if !v.life.Copyable() {
		return nil, errors.NotCopyable(errors.PhaseCopy)
	}
	out := NewWith(v.life)
	if v.size == 0 {
		return out, nil
	}
	ops := v.relocOps()
	ops.ByMove = false
	out.data = rawstore.New[T](v.size)
	if err := reloc.Block(ops, v.live(), out.data.Block()); err != nil {
		out.data.Release()
		return nil, err
	}
	out.size = v.size
	return out, nil
}

// Take moves the storage into a new vector, leaving the receiver
// empty with capacity 0.
func (v *Vector[T]) Take() *Vector[T] {
	out := &Vector[T]{
		data: v.data.Take(),
		size: v.size,
		life: v.life,
	}
	v.size = 0
	return out
}

// Swap exchanges contents, capacity and lifecycle with other in
// constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.life, other.life = other.life, v.life
}

// Destroy destroys all live elements and releases the storage block.
// The vector is reusable afterwards as an empty vector.
func (v *Vector[T]) Destroy() {
	v.Clear()
	v.data.Release()
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots in the storage block.
func (v *Vector[T]) Cap() int {
	return v.data.Capacity()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// MaxLen returns the maximum element count a vector of T can be asked
// to hold.
func (v *Vector[T]) MaxLen() int {
	var t T
	size := int(unsafe.Sizeof(t))
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}

// At returns the element at index i. It panics when i is outside
// [0, Len); out-of-range access is a caller bug, not a recoverable
// condition.
func (v *Vector[T]) At(i int) T {
	v.boundsCheck(i)
	return *v.data.Slot(i)
}

// Ptr returns a pointer to the element at index i. The pointer is
// invalidated by any operation that reallocates storage, and by
// insert/erase at or before i.
func (v *Vector[T]) Ptr(i int) *T {
	v.boundsCheck(i)
	return v.data.Slot(i)
}

// Set overwrites the element at index i by plain assignment.
func (v *Vector[T]) Set(i int, value T) {
	v.boundsCheck(i)
	*v.data.Slot(i) = value
}

// Front returns the first element. It panics on an empty vector.
func (v *Vector[T]) Front() T {
	if v.size == 0 {
		panic("vector: Front on empty vector")
	}
	return *v.data.Slot(0)
}

// Back returns the last element. It panics on an empty vector.
func (v *Vector[T]) Back() T {
	if v.size == 0 {
		panic("vector: Back on empty vector")
	}
	return *v.data.Slot(v.size - 1)
}

// Slice returns the live elements as a slice window over the storage
// block. The window is invalidated by any reallocating operation.
func (v *Vector[T]) Slice() []T {
	return v.live()
}

// All iterates over index/element pairs of the live range.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.Slot(i)) {
				return
			}
		}
	}
}

// Values iterates over the live elements in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.Slot(i)) {
				return
			}
		}
	}
}

func (v *Vector[T]) boundsCheck(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: index %d out of range (length %d)", i, v.size))
	}
}

func (v *Vector[T]) live() []T {
	return v.data.Range(0, v.size)
}

func (v *Vector[T]) destroyLive() {
	live := v.live()
	for i := range live {
		v.life.Destroy(&live[i])
	}
}

func (v *Vector[T]) relocOps() reloc.Ops[T] {
	ops := reloc.Ops[T]{
		Move:   v.life.Transfer,
		Drop:   v.life.Destroy,
		ByMove: v.life.RelocateByMove(),
	}
	if v.life.Copyable() {
		ops.Copy = v.life.Copy
	}
	return ops
}
