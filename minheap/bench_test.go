package minheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvheap/minheap"
)

// BenchmarkInsertDeleteMin measures a full fill-then-drain cycle of N random ints.
func BenchmarkInsertDeleteMin(b *testing.B) {
	const N = 10000
	r := rand.New(rand.NewSource(42))
	values := make([]int, N)
	for i := range values {
		values[i] = r.Int()
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h := minheap.New[int](minheap.WithCapacity(N))
		for _, v := range values {
			h.Insert(v)
		}
		for !h.IsEmpty() {
			_, _ = h.DeleteMin()
		}
	}
}

// BenchmarkFrom measures bottom-up construction, which should scale linearly.
func BenchmarkFrom(b *testing.B) {
	const N = 10000
	r := rand.New(rand.NewSource(42))
	values := make([]int, N)
	for i := range values {
		values[i] = r.Int()
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = minheap.From(values)
	}
}
