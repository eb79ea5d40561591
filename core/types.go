// Package core defines core contracts and sentinel errors shared by the
// iterkit subpackages.
package core

import "errors"

// ErrNotRestartable indicates a restart was requested from an iterator
// that does not support rewinding.
var ErrNotRestartable = errors.New("core: iterator does not support restart")

// Iterator is the minimal pull-style iteration contract.
// Next returns the next element and true, or the zero value and false once
// the sequence is exhausted. Exhaustion is idempotent: every call after the
// first false keeps returning false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Restartable is the optional capability of rewinding an iterator to its
// initial position. Sources that cannot replay their input must not
// implement it; composite adapters forward it with TryReset.
type Restartable interface {
	Reset()
}

// Wrapper is implemented by composite adapters that wrap another iterator
// and are willing to expose it.
type Wrapper[T any] interface {
	Inner() Iterator[T]
}

// TryReset rewinds it when it implements Restartable and reports whether
// the capability was present. A false return leaves it untouched.
func TryReset(it any) bool {
	r, ok := it.(Restartable)
	if ok {
		r.Reset()
	}

	return ok
}
