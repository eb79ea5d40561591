package share

import "unsafe"

// elemPtr returns the address of s[i], computed as a raw offset from the
// slice's base pointer.
//
// This is the single place the package reinterprets an index as memory.
// Soundness rests on two facts the iterators maintain:
//
//   - i has been validated against len(s) before the call, so the offset
//     stays inside the slice's backing array;
//   - every Pair built from these addresses has first != second (the
//     cursor invariant), so no two live views of one step overlap.
//
// unsafe.Add keeps the result inside the same allocation, which is the
// pointer-arithmetic pattern the unsafe package documents as valid.
func elemPtr[T any](s []T, i int) *T {
	base := unsafe.Pointer(unsafe.SliceData(s))

	return (*T)(unsafe.Add(base, uintptr(i)*unsafe.Sizeof(*new(T))))
}
