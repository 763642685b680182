package sparse_test

import (
	"testing"

	"github.com/jrife/bedrock/storage/backing"
	"github.com/jrife/bedrock/storage/sparse"
)

// Hole punching is O(1) regardless of position; shifting removal pays for
// every element after the removed one.

func BenchmarkRemoveAndShiftFix(b *testing.B) {
	list := sparse.NewSlice[int](b.N)

	for i := 0; i < b.N; i++ {
		list.Push(i)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		list.RemoveAndShiftFix(i)
	}
}

func BenchmarkShiftingRemove(b *testing.B) {
	list := backing.NewSlice[int](b.N)

	for i := 0; i < b.N; i++ {
		list.Push(i)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		list.Remove(0)
	}
}

func BenchmarkDefragment(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()

		list := sparse.NewSlice[int](1024)

		for j := 0; j < 1024; j++ {
			list.Push(j)
		}

		for j := 0; j < 1024; j += 2 {
			list.RemoveAndShiftFix(j)
		}

		b.StartTimer()
		list.Defragment()
	}
}
