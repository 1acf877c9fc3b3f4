package reloc

import "github.com/wippyai/rawvec/errors"

// Ops carries the element operations a relocation needs, resolved from
// the container's lifecycle. Move and Drop are always set; Copy is nil
// for non-copyable element types. ByMove selects the strategy: move
// when moving cannot fail or when there is no copy operation, copy
// otherwise so that a mid-relocation failure leaves the source block
// intact.
type Ops[T any] struct {
	Move   func(*T) (T, error)
	Copy   func(T) (T, error)
	Drop   func(*T)
	ByMove bool
}

// Block relocates src into dst element-wise in index order, writing
// src[i] to dst[i]. dst slots must be raw and len(dst) >= len(src).
//
// In copy mode a failure destroys the already-constructed dst prefix
// and returns with src untouched. In move mode a failure also destroys
// the dst prefix, but those element values are already gone from src;
// move mode is only selected when moving cannot fail or when the type
// cannot be copied, so this path carries no stronger promise.
func Block[T any](ops Ops[T], src, dst []T) error {
	if ops.ByMove {
		return moveInto(ops, src, dst, 0)
	}
	return copyInto(ops, src, dst, 0)
}

// Split relocates src into dst leaving one raw slot open at pivot:
// src[:pivot] lands at dst[:pivot] and src[pivot:] lands one slot
// later. dst must have room for len(src)+1 slots. The caller owns
// whatever it constructed into dst[pivot]; on a copy-mode failure the
// relocated slots are destroyed but dst[pivot] is left for the caller
// to clean up.
func Split[T any](ops Ops[T], src, dst []T, pivot int) error {
	if ops.ByMove {
		if err := moveInto(ops, src[:pivot], dst, 0); err != nil {
			return err
		}
		if err := moveInto(ops, src[pivot:], dst[pivot+1:], pivot); err != nil {
			dropAll(ops, dst[:pivot])
			return err
		}
		return nil
	}
	if err := copyInto(ops, src[:pivot], dst, 0); err != nil {
		return err
	}
	if err := copyInto(ops, src[pivot:], dst[pivot+1:], pivot); err != nil {
		// Roll back the front half too; copyInto already dropped the
		// back half's partial prefix.
		dropAll(ops, dst[:pivot])
		return err
	}
	return nil
}

// ShiftLeft compacts the window one slot leftward by move-assignment:
// window[i] replaces window[i-1] for every i in [1, len). The caller
// destroys window[0]'s element beforehand; the vacated last slot is
// left raw by the final move.
func ShiftLeft[T any](ops Ops[T], window []T) error {
	for i := 1; i < len(window); i++ {
		v, err := ops.Move(&window[i])
		if err != nil {
			return errors.MoveFailed(i, err)
		}
		window[i-1] = v
	}
	return nil
}

// ShiftRightOne opens a slot at the front of the window by backward
// move-assignment: window[i-1] replaces window[i] for every i counting
// down from len-1 to 1. The slot past the window must already hold the
// former last element; window[0] is left moved-from for the caller to
// assign into.
func ShiftRightOne[T any](ops Ops[T], window []T) error {
	for i := len(window) - 1; i >= 1; i-- {
		v, err := ops.Move(&window[i-1])
		if err != nil {
			return errors.MoveFailed(i-1, err)
		}
		window[i] = v
	}
	return nil
}

func moveInto[T any](ops Ops[T], src, dst []T, base int) error {
	for i := range src {
		v, err := ops.Move(&src[i])
		if err != nil {
			dropAll(ops, dst[:i])
			return errors.MoveFailed(base+i, err)
		}
		dst[i] = v
	}
	return nil
}

func copyInto[T any](ops Ops[T], src, dst []T, base int) error {
	for i := range src {
		v, err := ops.Copy(src[i])
		if err != nil {
			dropAll(ops, dst[:i])
			return errors.CopyFailed(base+i, err)
		}
		dst[i] = v
	}
	return nil
}

func dropAll[T any](ops Ops[T], slots []T) {
	for i := range slots {
		ops.Drop(&slots[i])
	}
}
