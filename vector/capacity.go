package vector

import (
	"fmt"

	"github.com/wippyai/rawvec/errors"
	"github.com/wippyai/rawvec/rawstore"
	"github.com/wippyai/rawvec/vector/internal/reloc"
)

// Reserve grows the storage block to hold exactly newCap slots. It is
// a no-op when newCap does not exceed the current capacity; Reserve
// never shrinks.
//
// Growth allocates the new block first, relocates the live elements in
// index order - moving when that cannot fail, copying otherwise - then
// destroys the originals and swaps blocks. A failure during a
// copy-based relocation releases the new block and leaves the vector
// untouched.
func (v *Vector[T]) Reserve(newCap int) error {
	cur := v.data.Capacity()
	if newCap <= cur {
		return nil
	}
	if newCap > v.MaxLen() {
		return errors.AllocationFailed(newCap, v.MaxLen())
	}

	ops := v.relocOps()
	newData := rawstore.New[T](newCap)
	if err := reloc.Block(ops, v.live(), newData.Block()); err != nil {
		newData.Release()
		return err
	}
	if !ops.ByMove {
		v.destroyLive()
	}
	v.data.Swap(&newData)
	newData.Release()

	debugf("grow: capacity %d -> %d (len %d)", cur, newCap, v.size)
	return nil
}

// ShrinkToFit reduces capacity to exactly Len. With no spare capacity
// it is a no-op; on an empty vector it releases the block entirely.
// Shrinking always relocates by move; a lifecycle whose move can fail
// gets no stronger promise here.
func (v *Vector[T]) ShrinkToFit() error {
	cur := v.data.Capacity()
	if v.size == cur {
		return nil
	}
	if v.size == 0 {
		v.data.Release()
		debugf("shrink: capacity %d -> 0", cur)
		return nil
	}

	ops := v.relocOps()
	ops.ByMove = true
	newData := rawstore.New[T](v.size)
	if err := reloc.Block(ops, v.live(), newData.Block()); err != nil {
		newData.Release()
		return err
	}
	v.data.Swap(&newData)
	newData.Release()

	debugf("shrink: capacity %d -> %d", cur, v.size)
	return nil
}

// Resize sets the element count to n. Shrinking destroys the elements
// in [n, Len); growing default-constructs elements in [Len, n),
// reserving doubled capacity first when n exceeds the current block.
// The length is updated only after construction or destruction has
// fully completed.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		panic(fmt.Sprintf("vector: Resize to negative length %d", n))
	case n < v.size:
		for i := n; i < v.size; i++ {
			v.life.Destroy(v.data.Slot(i))
		}
		v.size = n
	case n > v.size:
		if n > v.data.Capacity() {
			if err := v.Reserve(v.growthCapacity(n)); err != nil {
				return err
			}
		}
		for i := v.size; i < n; i++ {
			val, err := v.life.Construct()
			if err != nil {
				for j := v.size; j < i; j++ {
					v.life.Destroy(v.data.Slot(j))
				}
				return errors.ConstructFailed(i, err)
			}
			*v.data.Slot(i) = val
		}
		v.size = n
	}
	return nil
}

// Clear destroys all live elements but keeps the storage block.
func (v *Vector[T]) Clear() {
	v.destroyLive()
	v.size = 0
}

// growthCapacity returns the capacity to allocate when the block must
// grow implicitly: doubled, or requested when that is larger. The
// first allocation is at least one slot.
func (v *Vector[T]) growthCapacity(requested int) int {
	cur := v.data.Capacity()
	if cur == 0 {
		return max(requested, 1)
	}
	doubled := cur * 2
	if doubled/2 != cur || doubled > v.MaxLen() {
		doubled = v.MaxLen()
	}
	return max(doubled, requested)
}

// newBlockFor allocates a grown block able to hold requested elements,
// or fails without touching the vector when the request exceeds the
// element-count limit.
func (v *Vector[T]) newBlockFor(requested int) (rawstore.Storage[T], error) {
	if requested > v.MaxLen() {
		return rawstore.Storage[T]{}, errors.AllocationFailed(requested, v.MaxLen())
	}
	return rawstore.New[T](v.growthCapacity(requested)), nil
}
