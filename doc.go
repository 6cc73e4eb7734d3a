// Package lvheap is a small home for a generic binary min-heap and the
// tooling around it.
//
// What is inside:
//
//	minheap/       - MinHeap[T]: Insert, BuildHeap, DeleteMin, PrintHeap,
//	                 heap sort helpers and a mutex-guarded wrapper
//	cmd/heapdemo/  - CLI that walks a heap through insert, build and
//	                 delete-min, configured by flags or a TOML file
//	examples/      - runnable scenarios (k-way merge, event timeline)
//
// Why a heap of its own?
//
//   - Generic over any ordered type, or any type with a less function
//   - Bounds-checked parent/child helpers instead of raw index math
//   - Empty extraction is an error value (minheap.ErrEmptyHeap), not a crash
//
// Quick ASCII example, storage [1 2 30 10 5]:
//
//	        1
//	      /   \
//	     2     30
//	    / \
//	  10   5
//
//	go get github.com/katalvlaran/lvheap
package lvheap
