package minheap

// Index helpers for the implicit binary tree laid over a 0-indexed slice of
// length n. Every helper reports ok=false instead of returning an index that
// falls outside [0, n), so callers never dereference an unchecked position.

// parent returns the parent position of i. The root has no parent.
func parent(i, n int) (int, bool) {
	if i <= 0 || i >= n {
		return 0, false
	}

	return (i - 1) / 2, true
}

// leftChild returns the left child position of i, if it exists.
func leftChild(i, n int) (int, bool) {
	if i < 0 || i >= n {
		return 0, false
	}
	l := 2*i + 1
	if l >= n {
		return 0, false
	}

	return l, true
}

// rightChild returns the right child position of i, if it exists.
func rightChild(i, n int) (int, bool) {
	if i < 0 || i >= n {
		return 0, false
	}
	r := 2*i + 2
	if r >= n {
		return 0, false
	}

	return r, true
}

// lastInternal returns the last position that has at least one child.
// ok is false when n < 2 (no internal nodes).
func lastInternal(n int) (int, bool) {
	return parent(n-1, n)
}
