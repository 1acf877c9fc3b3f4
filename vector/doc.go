// Package vector implements a growable, contiguous, random-access
// sequence container over explicitly managed raw storage.
//
// # Storage model
//
// A Vector owns one rawstore block plus a live length. Slots below the
// length hold constructed elements; slots between length and capacity
// are raw. Growing never reallocates in place: a new block is
// allocated, live elements are relocated into it, the originals are
// destroyed, and the blocks are swapped, so no caller ever observes a
// partially migrated container.
//
// Capacity doubles when an append or insert runs out of room, which
// amortizes relocation to constant cost per append. Reserve and
// ShrinkToFit size the block exactly.
//
// # Relocation strategy
//
// Relocation moves elements whenever moving cannot fail, or when the
// element type cannot be copied; otherwise it copies, so a failure
// mid-relocation leaves the original block fully intact. The choice
// comes from the element Lifecycle (see the rawvec root package); the
// default lifecycle moves, and costs nothing beyond the value copy.
//
// # Failure guarantees
//
// Operations that can fail either complete fully or leave the vector
// observably unchanged, with one documented exception: the shift phase
// of a no-growth middle Insert/Emplace offers no strong guarantee when
// the lifecycle's move itself can fail. Length never advances past
// constructed elements on any path.
//
// # Reference invalidation
//
// Any operation that reallocates storage (growth, ShrinkToFit)
// invalidates all previously obtained element pointers and windows.
// Insert and erase without growth invalidate pointers at or after the
// mutation point only.
package vector
