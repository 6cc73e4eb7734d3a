package minheap

import "cmp"

// Drain empties h by repeated DeleteMin and returns the removed elements in
// non-decreasing order.
func Drain[T any](h *MinHeap[T]) []T {
	out := make([]T, 0, h.Len())
	for !h.IsEmpty() {
		v, _ := h.DeleteMin() // cannot fail: h is non-empty
		out = append(out, v)
	}

	return out
}

// Sort returns a sorted copy of values using heap sort. values is not modified.
//
// Complexity: O(n log n) time, O(n) extra space.
func Sort[T cmp.Ordered](values []T) []T {
	return Drain(From(values))
}

// SortFunc is Sort with a caller-supplied ordering.
func SortFunc[T any](values []T, less func(a, b T) bool) []T {
	return Drain(FromFunc(values, less))
}
