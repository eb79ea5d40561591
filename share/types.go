// Package share defines core types and sentinel errors for the paired
// iteration engine of github.com/katalvlaran/iterkit.
package share

import "errors"

// Sentinel errors for paired iteration.
var (
	// ErrSliceTooShort indicates the backing slice cannot support pairing.
	ErrSliceTooShort = errors.New("share: slice must contain at least two elements")
	// ErrIndexOutOfRange indicates a positioning index outside [0, n).
	ErrIndexOutOfRange = errors.New("share: index out of slice range")
	// ErrSelfPairing indicates an attempt to pair an index with itself.
	ErrSelfPairing = errors.New("share: first and second index must differ")
)

// Pair is one step's worth of paired access: the addresses of two distinct
// elements of the backing slice. It is a non-owning view — valid only until
// the producing iterator advances or repositions, and never once the
// iterator is gone. First and Second are guaranteed to point at different
// elements.
type Pair[T any] struct {
	First  *T
	Second *T
}
