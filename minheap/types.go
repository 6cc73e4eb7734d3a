// Package minheap defines the sentinel errors and configuration options
// shared by the MinHeap implementation.
//
// Options:
//
//	– Capacity: initial capacity hint for the backing slice (must be >= 0).
//
// Errors (sentinel):
//
//	– ErrEmptyHeap    if DeleteMin or Min is called on a heap with no elements.
//	– ErrNilLess      if a nil comparator is passed to NewFunc, FromFunc or SortFunc.
//	– ErrBadCapacity  if WithCapacity receives a negative value.
//	– ErrNilHeap      if NewLocked is given a nil heap.
package minheap

import "errors"

// Sentinel errors returned (or panicked with) by the minheap package.
var (
	// ErrEmptyHeap indicates an extract or peek on a heap holding no elements.
	ErrEmptyHeap = errors.New("minheap: heap is empty")

	// ErrNilLess indicates that a nil ordering function was supplied.
	ErrNilLess = errors.New("minheap: less function is nil")

	// ErrBadCapacity indicates that WithCapacity was given a negative value.
	ErrBadCapacity = errors.New("minheap: capacity must be non-negative")

	// ErrNilHeap indicates that NewLocked was asked to wrap a nil heap.
	ErrNilHeap = errors.New("minheap: heap is nil")
)

// Options configures the construction of a MinHeap.
//
// Capacity – number of elements to preallocate in the backing slice.
// Default is 0 (grow on demand).
type Options struct {
	Capacity int
}

// Option represents a functional option for configuring a MinHeap.
type Option func(*Options)

// WithCapacity preallocates room for n elements.
// A negative n is a programming error and panics with ErrBadCapacity.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// DefaultOptions returns the zero-capacity defaults.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}

func applyOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
