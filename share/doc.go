// Package share implements paired mutable iteration: two simultaneous
// views into the same backing slice that are guaranteed never to land on
// the same element.
//
// What:
//
//   - DoubleIterator sweeps every ordered pair of distinct indices of an
//     n-element slice — the full n×n grid minus the diagonal — in
//     row-major order.
//   - SingleLineIterator fixes one index and sweeps the other across the
//     whole slice, skipping the fixed position: one "line" of that grid.
//   - SafeForEach is the sanctioned way to touch the pairs: both element
//     pointers are handed to a callback and must be treated as dead the
//     moment it returns.
//
// The grid, for n = 5 (numbers are yield order, blanks are the skipped
// diagonal):
//
//	+---+---+---+---+---+---+
//	|   |j=0|j=1|j=2|j=3|j=4|
//	+---+---+---+---+---+---+
//	|i=0|   | 1 | 2 | 3 | 4 |
//	+---+---+---+---+---+---+
//	|i=1| 5 |   | 6 | 7 | 8 |
//	+---+---+---+---+---+---+
//	|i=2| 9 |10 |   |11 |12 |
//	+---+---+---+---+---+---+
//	|i=3|13 |14 |15 |   |16 |
//	+---+---+---+---+---+---+
//	|i=4|17 |18 |19 |20 |   |
//	+---+---+---+---+---+---+
//
// Why:
//
//   - Pairwise relaxation passes (bubble-style sweeps, force simulations,
//     deduplication with in-place repair) all want "element i and element
//     j, both writable, i ≠ j" — which a plain nested range over one slice
//     cannot express without copying.
//   - The diagonal hole is the safety argument: since first ≠ second for
//     every yielded pair, the two pointers can never alias, so handing
//     both out mutably inside one callback invocation is sound.
//
// Rules for raw pairs (Next / All):
//
//   - A yielded Pair is valid only until the next Next, Reset, SetPosition
//     or SingleLine call, and never after the iterator is gone.
//   - The iterator owns the slice for its whole lifetime: no other writer
//     may touch the slice while iteration is in flight.
//   - Both positions of a pair must be driven from one goroutine.
//     Advancing on one goroutine while another holds a pair is a data
//     race. Prefer SafeForEach, which enforces the scoping for you.
//
// Complexity:
//
//   - Next / Reset / SetPosition: O(1) (Next amortized over the whole
//     sweep; each advance step does constant work per visited cell).
//   - Full grid: exactly n·(n-1) pairs. Single line: exactly n-1 pairs.
//
// Errors:
//
//   - ErrSliceTooShort: pairing needs at least two elements.
//   - ErrIndexOutOfRange: a positioning argument outside [0, n).
//   - ErrSelfPairing: an explicit request to pair an index with itself.
package share
