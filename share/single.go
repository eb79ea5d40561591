package share

import "iter"

// SingleLineIterator walks one row of the pairing grid: one index is fixed
// for the iterator's whole lifetime while the moving index sweeps the full
// slice, hopping over the fixed position. Each step yields the addresses
// of the fixed element and the current moving element.
//
// Construct one directly with NewSingleLineIterator, or carve one out of a
// DoubleIterator mid-traversal with its SingleLine method.
type SingleLineIterator[T any] struct {
	slice  []T
	fixed  int
	moving int
}

// NewSingleLineIterator constructs a row iterator over slice whose fixed
// index is fixed. The moving index starts at 0, or at 1 when fixed == 0,
// so the first yielded pair never self-pairs.
// Returns ErrIndexOutOfRange if fixed falls outside [0, n).
func NewSingleLineIterator[T any](slice []T, fixed int) (*SingleLineIterator[T], error) {
	if fixed < 0 || fixed >= len(slice) {
		return nil, ErrIndexOutOfRange
	}

	return &SingleLineIterator[T]{
		slice:  slice,
		fixed:  fixed,
		moving: initialMoving(fixed),
	}, nil
}

// initialMoving is the starting value of the moving index for a given
// fixed index: the smallest index that is not the fixed one.
func initialMoving(fixed int) int {
	if fixed == 0 {
		return 1
	}

	return 0
}

// Next yields (addressOf(fixed), addressOf(moving)) and advances the
// moving index, hopping over the fixed position. The second result is
// false once the row is exhausted, idempotently.
// A row carved from an already-exhausted grid is born exhausted.
func (s *SingleLineIterator[T]) Next() (Pair[T], bool) {
	if s.moving >= len(s.slice) || s.fixed >= len(s.slice) {
		return Pair[T]{}, false
	}
	p := Pair[T]{
		First:  elemPtr(s.slice, s.fixed),
		Second: elemPtr(s.slice, s.moving),
	}
	s.moving++
	if s.moving == s.fixed {
		s.moving++
	}

	return p, true
}

// Reset returns the moving index to its initial value (0, or 1 when the
// fixed index is 0). The fixed index never changes.
func (s *SingleLineIterator[T]) Reset() { s.moving = initialMoving(s.fixed) }

// FixedIndex returns the row's fixed index.
func (s *SingleLineIterator[T]) FixedIndex() int { return s.fixed }

// Len returns the length of the backing slice.
func (s *SingleLineIterator[T]) Len() int { return len(s.slice) }

// SafeForEach consumes the iterator, invoking fn once per remaining pair
// with pointers scoped to that single invocation — the same contract as
// DoubleIterator.SafeForEach.
func (s *SingleLineIterator[T]) SafeForEach(fn func(fixed, moving *T)) {
	for p, ok := s.Next(); ok; p, ok = s.Next() {
		fn(p.First, p.Second)
	}
}

// All returns the remaining pairs as a single-use range-over-func
// sequence, with the same one-step scoping contract as Next.
func (s *SingleLineIterator[T]) All() iter.Seq2[*T, *T] {
	return func(yield func(*T, *T) bool) {
		for p, ok := s.Next(); ok; p, ok = s.Next() {
			if !yield(p.First, p.Second) {
				return
			}
		}
	}
}
