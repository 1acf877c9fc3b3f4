package vector

import (
	"iter"

	"github.com/wippyai/rawvec/errors"
	"github.com/wippyai/rawvec/rawstore"
	"github.com/wippyai/rawvec/vector/internal/reloc"
)

// Assign replaces the entire contents with copies of src. Existing
// elements are destroyed first; when src exceeds the current capacity
// a block of exactly len(src) slots is allocated and the copies are
// constructed directly into it, otherwise they are constructed into
// the existing block. The source slice is never mutated.
//
// Assign requires a copyable lifecycle. It is a replace-everything
// operation: a failure while copying leaves the vector cleared, not
// restored.
func (v *Vector[T]) Assign(src []T) error {
	if !v.life.Copyable() {
		return errors.NotCopyable(errors.PhaseAssign)
	}
	n := len(src)
	if n > v.MaxLen() {
		return errors.AllocationFailed(n, v.MaxLen())
	}

	v.Clear()

	ops := v.relocOps()
	ops.ByMove = false

	if n > v.data.Capacity() {
		newData := rawstore.New[T](n)
		if err := reloc.Block(ops, src, newData.Block()); err != nil {
			newData.Release()
			return err
		}
		v.data.Swap(&newData)
		newData.Release()
	} else if err := reloc.Block(ops, src, v.data.Block()); err != nil {
		return err
	}

	v.size = n
	return nil
}

// AssignSeq replaces the contents with copies of the sequence's
// values. The sequence is drained before any storage decision is
// made, so its size is known up front and Assign's contract applies.
func (v *Vector[T]) AssignSeq(seq iter.Seq[T]) error {
	var buf []T
	for e := range seq {
		buf = append(buf, e)
	}
	return v.Assign(buf)
}
