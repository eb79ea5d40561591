package filter

import "github.com/katalvlaran/iterkit/core"

// Exclude drops denylisted values from a wrapped iterator.
//
//	it := filter.WithDenylist(core.FromSlice([]int{1, 2, 3, 4, 5}), []int{3, 5})
//	core.Collect[int](it) // [1, 2, 4]
//
// The denylist is an unordered, append-only collection compared by
// equality; it may legitimately hold duplicates (see ForceExclude).
type Exclude[T comparable] struct {
	inner    core.Iterator[T]
	denylist []T
}

// New wraps it with an empty denylist.
func New[T comparable](it core.Iterator[T]) *Exclude[T] {
	return &Exclude[T]{inner: it}
}

// WithDenylist wraps it with a starting denylist. The slice is borrowed,
// not copied, and will be appended to as the denylist grows.
func WithDenylist[T comparable](it core.Iterator[T], denylist []T) *Exclude[T] {
	return &Exclude[T]{inner: it, denylist: denylist}
}

// Next pulls from the wrapped iterator until it finds a value that is not
// on the denylist, or the wrapped iterator runs out.
func (e *Exclude[T]) Next() (T, bool) {
	for {
		v, ok := e.inner.Next()
		if !ok {
			var zero T

			return zero, false
		}
		if !e.Denied(v) {
			return v, true
		}
	}
}

// Denied reports whether v is on the denylist. Linear scan: values need
// only support equality.
func (e *Exclude[T]) Denied(v T) bool {
	for _, d := range e.denylist {
		if d == v {
			return true
		}
	}

	return false
}

// Exclude adds v to the denylist unless it is already there.
func (e *Exclude[T]) Exclude(v T) {
	if !e.Denied(v) {
		e.ForceExclude(v)
	}
}

// ForceExclude appends v to the denylist without the membership check.
// A duplicate entry changes nothing about which values get dropped — it
// only makes the scan longer — so use Exclude unless the caller already
// knows v is absent.
func (e *Exclude[T]) ForceExclude(v T) {
	e.denylist = append(e.denylist, v)
}

// DenylistLen returns the number of denylist entries, duplicates included.
func (e *Exclude[T]) DenylistLen() int { return len(e.denylist) }

// Inner returns the wrapped iterator without giving it up.
func (e *Exclude[T]) Inner() core.Iterator[T] { return e.inner }

// Release detaches and returns the wrapped iterator. The adapter must not
// be used afterwards.
func (e *Exclude[T]) Release() core.Iterator[T] {
	it := e.inner
	e.inner = nil

	return it
}

// Reset forwards the restart capability to the wrapped iterator.
// Returns core.ErrNotRestartable when the wrapped iterator cannot rewind;
// the denylist is kept either way.
func (e *Exclude[T]) Reset() error {
	if !core.TryReset(e.inner) {
		return core.ErrNotRestartable
	}

	return nil
}
