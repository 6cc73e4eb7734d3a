package minheap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexHelpers(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(i, n int) (int, bool)
		i, n   int
		want   int
		wantOK bool
	}{
		{"parent_root", parent, 0, 5, 0, false},
		{"parent_1", parent, 1, 5, 0, true},
		{"parent_2", parent, 2, 5, 0, true},
		{"parent_4", parent, 4, 5, 1, true},
		{"parent_out_of_range", parent, 5, 5, 0, false},
		{"parent_negative", parent, -1, 5, 0, false},
		{"left_0", leftChild, 0, 5, 1, true},
		{"left_1", leftChild, 1, 5, 3, true},
		{"left_leaf", leftChild, 2, 5, 0, false},
		{"left_empty", leftChild, 0, 0, 0, false},
		{"right_0", rightChild, 0, 5, 2, true},
		{"right_1", rightChild, 1, 5, 4, true},
		{"right_missing", rightChild, 1, 4, 0, false},
		{"right_negative", rightChild, -3, 4, 0, false},
	}

	for _, tc := range tests {
		got, ok := tc.fn(tc.i, tc.n)
		assert.Equal(t, tc.wantOK, ok, tc.name)
		if tc.wantOK {
			assert.Equal(t, tc.want, got, tc.name)
		}
	}
}

func TestLastInternal(t *testing.T) {
	for n, want := range map[int]int{2: 0, 3: 0, 4: 1, 5: 1, 6: 2, 9: 3} {
		got, ok := lastInternal(n)
		assert.True(t, ok, "n=%d", n)
		assert.Equal(t, want, got, "n=%d", n)
	}
	for _, n := range []int{0, 1} {
		_, ok := lastInternal(n)
		assert.False(t, ok, "n=%d", n)
	}
}
