// Package iterkit is a small collection of iterator adapters for slices
// and pull-style sequences — built around one hard trick: handing out two
// simultaneous mutable views into the same backing slice without ever
// aliasing the same element.
//
// 🚀 What is iterkit?
//
//	A modern, generics-first library that brings together:
//		• Paired iteration: every ordered pair of distinct elements of a
//		  mutable slice, as a full n×n grid sweep or a single fixed row
//		• A safe consumption boundary: callback-scoped mutable access that
//		  keeps all pointer arithmetic behind one reviewable wall
//		• Denylist filtering: drop previously-seen values from any sequence
//		• Capability contracts: restartable sources and transparent
//		  adapter composition
//
// ✨ Why choose iterkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – the (first, second) cursor invariant makes
//     self-pairing impossible, so the two views never overlap
//   - Pure Go – no cgo, no hidden deps
//   - Honest about sharp edges – raw pairs are available for those who
//     want them, with the contract spelled out in the docs
//
// Everything is organized under three subpackages:
//
//	core/   — Iterator, Restartable and Wrapper contracts, slice sources
//	share/  — DoubleIterator & SingleLineIterator, the paired engine
//	filter/ — Exclude, the denylist adapter
//
// Quick taste:
//
//	data := []int{1, 2, 3, 4, 5}
//	it, _ := share.NewDoubleIterator(data)
//	it.SafeForEach(func(a, b *int) {
//		// a and b always point at two distinct elements
//	})
//
// Dive into the package docs for traversal diagrams, the exact cursor
// arithmetic, and the rules raw pairs must obey.
//
//	go get github.com/katalvlaran/iterkit
package iterkit
