// Package core defines the iteration contracts every iterkit adapter is
// built on, plus a restartable slice source and small consumption helpers.
//
// What:
//
//   - Iterator[T]: the minimal pull contract — Next() (T, bool).
//   - Restartable: the optional "rewind to the start" capability.
//   - Wrapper[T]: implemented by composite adapters that expose the
//     iterator they wrap.
//   - SliceIterator[T]: an in-order, restartable source over a slice.
//   - Collect / Seq: drain an Iterator into a slice, or bridge it onto the
//     standard range-over-func surface.
//
// Why:
//
//   - Restart is a capability, not a universal method: a network or
//     channel-backed source cannot rewind, so adapters must not promise it.
//     Composite adapters forward restart to their wrapped iterator via
//     TryReset and surface ErrNotRestartable when the capability is absent.
//   - Wrapper keeps adapter chains inspectable without widening every
//     adapter's own API.
//
// Complexity:
//
//   - SliceIterator.Next / Reset: O(1).
//   - Collect: O(n) time and memory for n remaining elements.
//
// Errors:
//
//   - ErrNotRestartable: a restart was requested from an iterator (or a
//     chain ending in a source) that cannot rewind.
package core
