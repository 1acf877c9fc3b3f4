package rawstore

import "fmt"

// Storage is the exclusive owner of a fixed-capacity block of raw
// slots for elements of type T. The block never holds a liveness
// guarantee for any slot: it is the owning container's job to track
// which slots contain constructed elements and to destroy them before
// the block is released or overwritten.
//
// Storage never constructs or destroys elements itself, and it never
// reallocates - growing a container means allocating a second block,
// relocating, and swapping.
//
// Duplication is structurally unsupported: there is no copy operation,
// only Take and Swap, so two Storage values never observe the same
// block. Copying the struct by assignment is a misuse that breaks the
// exclusive-ownership contract.
type Storage[T any] struct {
	block []T
}

// New allocates a block with room for capacity slots. The allocation
// is eager and happens exactly once; capacity 0 or below yields the
// null block.
func New[T any](capacity int) Storage[T] {
	if capacity <= 0 {
		return Storage[T]{}
	}
	return Storage[T]{block: make([]T, capacity)}
}

// Capacity returns the number of slots in the block.
func (s *Storage[T]) Capacity() int {
	return len(s.block)
}

// IsNull reports whether the storage holds no block.
func (s *Storage[T]) IsNull() bool {
	return s.block == nil
}

// Slot returns a pointer to the raw slot at index i. The slot is valid
// to construct into, and valid to read only after the owner has
// constructed an element there.
func (s *Storage[T]) Slot(i int) *T {
	if i < 0 || i >= len(s.block) {
		panic(fmt.Sprintf("rawstore: slot %d out of range (capacity %d)", i, len(s.block)))
	}
	return &s.block[i]
}

// Block returns the whole block as a slot window. The window aliases
// the block; it becomes invalid after Swap, Take or Release.
func (s *Storage[T]) Block() []T {
	return s.block
}

// Range returns the slot window [i, j). Both bounds must lie within
// [0, capacity].
func (s *Storage[T]) Range(i, j int) []T {
	if i < 0 || j < i || j > len(s.block) {
		panic(fmt.Sprintf("rawstore: range [%d, %d) out of range (capacity %d)", i, j, len(s.block)))
	}
	return s.block[i:j:j]
}

// Swap exchanges ownership of the two blocks in constant time without
// touching slot contents.
func (s *Storage[T]) Swap(other *Storage[T]) {
	s.block, other.block = other.block, s.block
}

// Take moves the block out of s, leaving s null.
func (s *Storage[T]) Take() Storage[T] {
	out := Storage[T]{block: s.block}
	s.block = nil
	return out
}

// Release drops the block without inspecting its contents. The owner
// must have destroyed every live element first; slots are raw memory
// as far as Storage is concerned. Release on the null block is a
// no-op.
func (s *Storage[T]) Release() {
	s.block = nil
}
