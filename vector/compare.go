package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same elements in the same
// order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[A, B any](a *Vector[A], b *Vector[B], eq func(A, B) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare three-way-compares a and b lexicographically over their
// live elements: the first unequal element pair decides, and a shorter
// vector that is a prefix of the longer compares less.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[A, B any](a *Vector[A], b *Vector[B], compare func(A, B) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), compare)
}

// Less reports whether a orders before b under Compare.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}
