package core

import "iter"

// SliceIterator yields the elements of a slice in index order.
// It keeps a reference to the caller's slice rather than a copy, so
// mutations through the slice are observed by subsequent Next calls.
// Implements Restartable.
type SliceIterator[T any] struct {
	elems []T
	pos   int
}

// FromSlice returns a restartable iterator over elems.
// Complexity: O(1); no copy is made.
func FromSlice[T any](elems []T) *SliceIterator[T] {
	return &SliceIterator[T]{elems: elems}
}

// Next returns the element under the position cursor and advances it.
// Exhausted (idempotently) once every element has been yielded.
func (it *SliceIterator[T]) Next() (T, bool) {
	if it.pos >= len(it.elems) {
		var zero T

		return zero, false
	}
	v := it.elems[it.pos]
	it.pos++

	return v, true
}

// Reset rewinds the iterator to the first element.
func (it *SliceIterator[T]) Reset() { it.pos = 0 }

// Len returns the total number of elements the iterator covers,
// independent of the current position.
func (it *SliceIterator[T]) Len() int { return len(it.elems) }

// Collect drains it and returns the remaining elements in order.
// Complexity: O(n) time and memory.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}

	return out
}

// Seq bridges a pull iterator onto the standard range-over-func surface.
// The returned sequence is single-use: it consumes it as it is ranged over.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
