package minheap

import "sync"

// Locked guards a MinHeap with a mutex so it can be shared between goroutines.
// The zero value is not usable; build one with NewLocked.
type Locked[T any] struct {
	mu   sync.Mutex
	heap *MinHeap[T]
}

// NewLocked takes ownership of h. The caller must not use h directly afterwards.
// A nil h panics with ErrNilHeap.
func NewLocked[T any](h *MinHeap[T]) *Locked[T] {
	if h == nil {
		panic(ErrNilHeap.Error())
	}

	return &Locked[T]{heap: h}
}

// Insert adds v to the heap.
func (l *Locked[T]) Insert(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.heap.Insert(v)
}

// DeleteMin removes and returns the smallest element, or ErrEmptyHeap.
func (l *Locked[T]) DeleteMin() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.heap.DeleteMin()
}

// Min returns the smallest element without removing it, or ErrEmptyHeap.
func (l *Locked[T]) Min() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.heap.Min()
}

// Len reports the number of stored elements.
func (l *Locked[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.heap.Len()
}

// Values returns a level-order snapshot of the storage.
func (l *Locked[T]) Values() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.heap.Values()
}
