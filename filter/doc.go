// Package filter provides iterator adapters that select which elements of
// a wrapped sequence get yielded.
//
// What:
//
//   - Exclude wraps any core.Iterator and a denylist of values; Next pulls
//     from the wrapped iterator and drops everything on the denylist.
//   - The denylist grows during iteration: Exclude adds a value once,
//     ForceExclude appends unconditionally.
//   - Exclude is a transparent composite: Inner and Release expose the
//     wrapped iterator, and Reset forwards the restart capability when the
//     wrapped iterator has one.
//
// Why:
//
//   - "Skip what I've already handled" loops — deduplication sweeps,
//     retry queues, merge passes — want the bookkeeping inside the
//     iterator instead of scattered through the loop body.
//
// Complexity:
//
//   - Next: O(k·d) for k values pulled and a denylist of d entries
//     (membership is a linear scan; values need only equality).
//   - Exclude / ForceExclude: O(d) / O(1).
//
// Errors:
//
//   - core.ErrNotRestartable: Reset was called but the wrapped iterator
//     cannot rewind.
package filter
