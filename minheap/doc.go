// Package minheap provides a generic, array-backed binary min-heap.
//
// Overview:
//
//   - The smallest element (by the heap's ordering) always sits at position 0.
//   - Storage is a plain slice laid out level by level; parent/child positions
//     are derived through bounds-checked helpers, never raw arithmetic.
//   - Extracting from an empty heap is an ordinary error value (ErrEmptyHeap),
//     not a crash.
//
// Key features:
//
//   - New / NewFunc:       empty heap ordered by < or by a custom less.
//   - From / FromFunc:     copy an arbitrary slice and heapify it in O(n).
//   - Insert:              sift-up insertion, O(log n).
//   - DeleteMin:           extract-min with sift-down, O(log n).
//   - BuildHeap:           bottom-up re-heapify of the current storage, O(n).
//   - PrintHeap / String:  level-order diagnostic view.
//   - Drain / Sort:        heap sort helpers.
//   - Locked:              mutex-guarded wrapper for shared use.
//
// Errors:
//
//   - ErrEmptyHeap    returned by DeleteMin and Min on an empty heap.
//   - ErrNilLess      panicked by NewFunc, FromFunc and SortFunc on a nil comparator.
//   - ErrBadCapacity  panicked by WithCapacity on a negative capacity.
//   - ErrNilHeap      panicked by NewLocked on a nil heap.
//
// Example:
//
//	h := minheap.New[int]()
//	for _, v := range []int{10, 5, 30, 2, 1} {
//	    h.Insert(v)
//	}
//	fmt.Println(minheap.Drain(h)) // [1 2 5 10 30]
//
// Concurrency:
//
//	Operations on *MinHeap are not internally synchronized; concurrent
//	mutation from multiple goroutines requires external locking or Locked.
package minheap
