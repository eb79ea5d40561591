package share

import "iter"

// DoubleIterator sweeps every ordered pair of distinct elements of a
// mutable slice: the full n×n index grid minus the diagonal, row-major.
//
// The iterator owns the slice for its entire lifetime — nothing else may
// read or write it while iteration is in flight. Each step yields the raw
// addresses of two distinct elements; see the package doc for the rules
// raw pairs must obey, or use SafeForEach and let the iterator scope the
// access for you.
//
//	data := []int{1, 2, 3, 4, 5}
//	it, err := share.NewDoubleIterator(data)
//	if err != nil { ... }
//	it.SafeForEach(func(a, b *int) {
//		// *a and *b are two distinct elements, both writable
//	})
type DoubleIterator[T any] struct {
	slice []T
	cur   cursor
}

// NewDoubleIterator constructs a full-grid paired iterator over slice,
// positioned on the first pair (0, 1).
// Returns ErrSliceTooShort if slice has fewer than two elements.
// Complexity: O(1); the slice is borrowed, not copied.
func NewDoubleIterator[T any](slice []T) (*DoubleIterator[T], error) {
	if len(slice) < 2 {
		return nil, ErrSliceTooShort
	}

	return &DoubleIterator[T]{
		slice: slice,
		cur:   newCursor(len(slice)),
	}, nil
}

// Next yields the pair of element addresses under the cursor and advances
// to the next off-diagonal cell. The second result is false once the grid
// is exhausted, and stays false on every later call.
// The returned Pair is valid only until the next call that advances or
// repositions the iterator.
func (d *DoubleIterator[T]) Next() (Pair[T], bool) {
	if d.cur.exhausted() {
		return Pair[T]{}, false
	}
	p := Pair[T]{
		First:  elemPtr(d.slice, d.cur.first),
		Second: elemPtr(d.slice, d.cur.second),
	}
	// The advance may exhaust the cursor; the pair already built stays valid.
	d.cur.advance()

	return p, true
}

// Reset returns the iterator to the first pair (0, 1). The borrowed slice
// is untouched; a fresh sweep replays the identical pair sequence.
func (d *DoubleIterator[T]) Reset() { d.cur.reset() }

// SetPosition moves the cursor to the arbitrary pair (i, j).
// Returns ErrSelfPairing if i == j, ErrIndexOutOfRange if either index
// falls outside [0, n); on error the current position is left untouched.
// SetPosition does not track what has already been yielded — repositioning
// can replay or skip pairs, and that is the caller's responsibility.
func (d *DoubleIterator[T]) SetPosition(i, j int) error {
	if i == j {
		return ErrSelfPairing
	}
	if i < 0 || i >= len(d.slice) || j < 0 || j >= len(d.slice) {
		return ErrIndexOutOfRange
	}
	d.cur.seek(i, j)

	return nil
}

// Position returns the (first, second) index pair the next yield will use.
// After exhaustion first equals Len.
func (d *DoubleIterator[T]) Position() (first, second int) {
	return d.cur.first, d.cur.second
}

// Len returns the length of the backing slice.
func (d *DoubleIterator[T]) Len() int { return len(d.slice) }

// SafeForEach consumes the iterator, invoking fn once per remaining pair.
// The two pointers are scoped to a single invocation: they always address
// two distinct elements, and fn must not retain them after returning —
// the iterator advances only once fn has given them back.
// This is the sanctioned way to use the iterator without touching raw
// pairs at the call site.
func (d *DoubleIterator[T]) SafeForEach(fn func(first, second *T)) {
	for p, ok := d.Next(); ok; p, ok = d.Next() {
		fn(p.First, p.Second)
	}
}

// All returns the remaining pairs as a range-over-func sequence:
//
//	for a, b := range it.All() { ... }
//
// The yielded pointers obey the same one-step scoping contract as Next.
// The sequence is single-use and shares the iterator's cursor.
func (d *DoubleIterator[T]) All() iter.Seq2[*T, *T] {
	return func(yield func(*T, *T) bool) {
		for p, ok := d.Next(); ok; p, ok = d.Next() {
			if !yield(p.First, p.Second) {
				return
			}
		}
	}
}

// SingleLine consumes the grid iterator into a SingleLineIterator that
// keeps walking the current row: the fixed index is the grid's current
// first, the moving index resumes at the grid's current second.
// The slice borrow transfers to the new iterator; the grid iterator is
// left exhausted and must not be used again.
func (d *DoubleIterator[T]) SingleLine() *SingleLineIterator[T] {
	s := &SingleLineIterator[T]{
		slice:  d.slice,
		fixed:  d.cur.first,
		moving: d.cur.second,
	}
	// Neuter the source so a stale Next cannot hand out addresses into a
	// slice that now belongs to the row iterator.
	d.slice = nil
	d.cur.first = d.cur.n

	return s
}
