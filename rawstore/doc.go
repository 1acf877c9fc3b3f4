// Package rawstore provides exclusive ownership of fixed-capacity raw
// storage blocks.
//
// A Storage[T] owns a contiguous block sized for a fixed number of T
// slots. The block is "raw" by contract: Storage makes no guarantee
// that any slot holds a constructed element, never constructs or
// destroys elements, and never reads slot contents. The owning
// container tracks liveness and reads a slot only after constructing
// into it.
//
// Ownership is exclusive and transfer-only. There is no copy
// operation; blocks change hands via Take (move, leaving the source
// null) or Swap (constant-time exchange). Release drops the block
// without inspecting it - destroying live elements first is the
// caller's documented precondition.
//
// The block is represented as a full-length slice rather than untyped
// bytes so that element types containing pointers stay visible to the
// garbage collector. Slots outside the owner's live range hold zero
// values, which is observationally identical to uninitialized memory
// under the "never read a raw slot" contract.
package rawstore
