package vector

import (
	"fmt"

	"github.com/wippyai/rawvec/errors"
	"github.com/wippyai/rawvec/vector/internal/reloc"
)

// PushBack appends value, which the vector takes ownership of. When
// the block is full, a grown block is allocated and the existing
// elements are relocated; a failure on that path leaves the vector
// untouched.
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.emplaceBack(func() (T, error) { return value, nil })
	return err
}

// EmplaceBack appends an element produced by construct and returns a
// pointer to it.
//
// The operation carries the strong guarantee: on the growth path the
// new element is constructed before any existing slot is touched, and
// on the in-place path construction targets a raw slot past the live
// range, so a failing construct leaves length, elements and capacity
// unchanged.
func (v *Vector[T]) EmplaceBack(construct func() (T, error)) (*T, error) {
	return v.emplaceBack(construct)
}

func (v *Vector[T]) emplaceBack(construct func() (T, error)) (*T, error) {
	if v.size == v.data.Capacity() {
		newData, err := v.newBlockFor(v.size + 1)
		if err != nil {
			return nil, err
		}

		val, cerr := construct()
		if cerr != nil {
			newData.Release()
			return nil, errors.ConstructFailed(v.size, cerr)
		}
		*newData.Slot(v.size) = val

		ops := v.relocOps()
		if rerr := reloc.Block(ops, v.live(), newData.Block()); rerr != nil {
			v.life.Destroy(newData.Slot(v.size))
			newData.Release()
			return nil, rerr
		}
		if !ops.ByMove {
			v.destroyLive()
		}
		v.data.Swap(&newData)
		newData.Release()
	} else {
		val, cerr := construct()
		if cerr != nil {
			return nil, errors.ConstructFailed(v.size, cerr)
		}
		*v.data.Slot(v.size) = val
	}

	v.size++
	return v.data.Slot(v.size - 1), nil
}

// PopBack destroys the last element. It panics on an empty vector;
// popping nothing is a caller bug.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.life.Destroy(v.data.Slot(v.size - 1))
	v.size--
}

// Insert places value at index i, shifting later elements one slot
// rightward. i may be anywhere in [0, Len]; inserting at Len is
// equivalent to PushBack. See Emplace for the failure contract.
func (v *Vector[T]) Insert(i int, value T) error {
	_, err := v.Emplace(i, func() (T, error) { return value, nil })
	return err
}

// Emplace constructs an element at index i and returns that index.
// i may be anywhere in [0, Len]; positions outside it panic.
//
// The growth path and the append path carry the strong guarantee: a
// failing construct leaves the vector unchanged. The in-place middle
// path constructs the incoming value first - failure there is also
// strong - but then shifts the tail by move-assignment; a lifecycle
// whose move can fail may leave the shifted suffix moved-from if a
// move fails mid-shift. Length is never advanced on any failure.
func (v *Vector[T]) Emplace(i int, construct func() (T, error)) (int, error) {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range (length %d)", i, v.size))
	}

	switch {
	case v.size == v.data.Capacity():
		if err := v.emplaceGrow(i, construct); err != nil {
			return 0, err
		}
	case i == v.size:
		val, cerr := construct()
		if cerr != nil {
			return 0, errors.ConstructFailed(i, cerr)
		}
		*v.data.Slot(v.size) = val
	default:
		if err := v.emplaceShift(i, construct); err != nil {
			return 0, err
		}
	}

	v.size++
	return i, nil
}

// emplaceGrow relocates into a grown block split around i, with the
// new element constructed directly into its final slot first.
func (v *Vector[T]) emplaceGrow(i int, construct func() (T, error)) error {
	newData, err := v.newBlockFor(v.size + 1)
	if err != nil {
		return err
	}

	val, cerr := construct()
	if cerr != nil {
		newData.Release()
		return errors.ConstructFailed(i, cerr)
	}
	*newData.Slot(i) = val

	ops := v.relocOps()
	if rerr := reloc.Split(ops, v.live(), newData.Block(), i); rerr != nil {
		v.life.Destroy(newData.Slot(i))
		newData.Release()
		return rerr
	}
	if !ops.ByMove {
		v.destroyLive()
	}
	v.data.Swap(&newData)
	newData.Release()
	return nil
}

// emplaceShift is the no-growth middle insert: construct into a
// temporary, move the last element into the trailing raw slot, shift
// [i, size-1) rightward, then move the temporary into slot i. The
// ordering keeps every slot in [0, size) valid at each intermediate
// step.
func (v *Vector[T]) emplaceShift(i int, construct func() (T, error)) error {
	tmp, cerr := construct()
	if cerr != nil {
		return errors.ConstructFailed(i, cerr)
	}

	last, merr := v.life.Transfer(v.data.Slot(v.size - 1))
	if merr != nil {
		v.life.Destroy(&tmp)
		return errors.MoveFailed(v.size-1, merr)
	}
	*v.data.Slot(v.size) = last

	window := v.data.Range(i, v.size)
	if serr := reloc.ShiftRightOne(v.relocOps(), window); serr != nil {
		// Mid-shift move failure: keep [Len, Cap) raw by destroying
		// the element staged past the live range, and leave length
		// unchanged. The shifted suffix stays moved-from but valid.
		v.life.Destroy(v.data.Slot(v.size))
		v.life.Destroy(&tmp)
		return serr
	}

	in, merr := v.life.Transfer(&tmp)
	if merr != nil {
		v.life.Destroy(v.data.Slot(v.size))
		v.life.Destroy(&tmp)
		return errors.MoveFailed(i, merr)
	}
	*v.data.Slot(i) = in
	return nil
}

// Erase removes the element at index i, shifting later elements one
// slot leftward, and returns i - now the index of the erased
// element's successor. It panics when i is outside [0, Len).
//
// The error return is nil for any lifecycle whose move cannot fail;
// a failing move mid-shift leaves the length unchanged with the
// compacted prefix and moved-from suffix both still valid.
func (v *Vector[T]) Erase(i int) (int, error) {
	v.boundsCheck(i)

	v.life.Destroy(v.data.Slot(i))
	window := v.data.Range(i, v.size)
	if err := reloc.ShiftLeft(v.relocOps(), window); err != nil {
		return 0, err
	}
	v.size--
	return i, nil
}
