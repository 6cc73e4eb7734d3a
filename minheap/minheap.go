package minheap

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// MinHeap is a binary min-heap over values of type T ordered by less.
// Storage is a contiguous 0-indexed slice: position i has children 2i+1 and
// 2i+2 and parent (i-1)/2. After every exported mutating call returns, no
// element orders before its parent.
//
// Complexity:
//
//   - Insert:     O(log n)  (sift-up)
//   - DeleteMin:  O(log n)  (sift-down)
//   - BuildHeap:  O(n)      (bottom-up sift-down)
//   - Min, Len:   O(1)
//
// A MinHeap is not safe for concurrent use; wrap it in Locked or guard it
// externally when several goroutines mutate it.
type MinHeap[T any] struct {
	data []T               // heap storage in level order
	less func(a, b T) bool // strict ordering; a sorts before b
}

// New returns an empty heap ordered by the natural < of T.
func New[T cmp.Ordered](opts ...Option) *MinHeap[T] {
	return newHeap[T](cmp.Less[T], applyOptions(opts))
}

// NewFunc returns an empty heap ordered by less.
// less must be a strict weak ordering; a nil less panics with ErrNilLess.
func NewFunc[T any](less func(a, b T) bool, opts ...Option) *MinHeap[T] {
	if less == nil {
		panic(ErrNilLess.Error())
	}

	return newHeap[T](less, applyOptions(opts))
}

// From copies values into a new heap and establishes the heap property in O(n).
// The caller's slice is not retained.
func From[T cmp.Ordered](values []T, opts ...Option) *MinHeap[T] {
	return FromFunc(values, cmp.Less[T], opts...)
}

// FromFunc is From with a caller-supplied ordering.
func FromFunc[T any](values []T, less func(a, b T) bool, opts ...Option) *MinHeap[T] {
	if less == nil {
		panic(ErrNilLess.Error())
	}
	cfg := applyOptions(opts)
	if cfg.Capacity < len(values) {
		cfg.Capacity = len(values)
	}
	h := newHeap[T](less, cfg)
	h.data = append(h.data, values...)
	h.BuildHeap()

	return h
}

func newHeap[T any](less func(a, b T) bool, cfg Options) *MinHeap[T] {
	return &MinHeap[T]{
		data: make([]T, 0, cfg.Capacity),
		less: less,
	}
}

// Len reports the number of stored elements.
func (h *MinHeap[T]) Len() int { return len(h.data) }

// IsEmpty reports whether the heap holds no elements.
func (h *MinHeap[T]) IsEmpty() bool { return len(h.data) == 0 }

// Insert appends v and sifts it up until its parent is not greater.
func (h *MinHeap[T]) Insert(v T) {
	h.data = append(h.data, v)
	h.siftUp(len(h.data) - 1)
}

// BuildHeap restores the heap property over the current storage by sifting
// down every internal node, from the last one back to the root.
// An empty or single-element heap is left unchanged.
func (h *MinHeap[T]) BuildHeap() {
	last, ok := lastInternal(len(h.data))
	if !ok {
		return
	}
	for i := last; i >= 0; i-- {
		h.heapify(i)
	}
}

// DeleteMin removes and returns the smallest element.
// On an empty heap it returns the zero value of T and ErrEmptyHeap.
func (h *MinHeap[T]) DeleteMin() (T, error) {
	var zero T
	n := len(h.data)
	if n == 0 {
		return zero, ErrEmptyHeap
	}

	// 1. Save the root, move the last element into its slot
	minValue := h.data[0]
	h.data[0] = h.data[n-1]

	// 2. Shrink, clearing the vacated slot so it does not pin memory
	h.data[n-1] = zero
	h.data = h.data[:n-1]

	// 3. Restore the invariant from the top
	h.heapify(0)

	return minValue, nil
}

// Min returns the smallest element without removing it.
func (h *MinHeap[T]) Min() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.data[0], nil
}

// Values returns a copy of the storage in level order (not sorted order).
func (h *MinHeap[T]) Values() []T {
	out := make([]T, len(h.data))
	copy(out, h.data)

	return out
}

// Clear removes all elements, keeping the allocated capacity.
func (h *MinHeap[T]) Clear() {
	clear(h.data)
	h.data = h.data[:0]
}

// Valid reports whether every element is ordered no earlier than its parent.
func (h *MinHeap[T]) Valid() bool {
	n := len(h.data)
	for i := 1; i < n; i++ {
		if p, ok := parent(i, n); ok && h.less(h.data[i], h.data[p]) {
			return false
		}
	}

	return true
}

// PrintHeap writes the storage in level order, space separated, followed by
// a newline. It is a diagnostic view; the order is not sorted.
func (h *MinHeap[T]) PrintHeap(w io.Writer) error {
	_, err := io.WriteString(w, h.String()+"\n")

	return err
}

// String renders the storage in level order, space separated.
func (h *MinHeap[T]) String() string {
	var sb strings.Builder
	for i, v := range h.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}

	return sb.String()
}

// siftUp moves the element at i towards the root while it orders before its parent.
func (h *MinHeap[T]) siftUp(i int) {
	n := len(h.data)
	for {
		p, ok := parent(i, n)
		if !ok || !h.less(h.data[i], h.data[p]) {
			return
		}
		h.data[i], h.data[p] = h.data[p], h.data[i]
		i = p
	}
}

// heapify sifts the element at i down, swapping with its smaller child while
// that child orders before it.
func (h *MinHeap[T]) heapify(i int) {
	n := len(h.data)
	for {
		smallest := i
		if l, ok := leftChild(i, n); ok && h.less(h.data[l], h.data[smallest]) {
			smallest = l
		}
		if r, ok := rightChild(i, n); ok && h.less(h.data[r], h.data[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
