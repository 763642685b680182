package backing_test

import (
	"testing"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/stretchr/testify/require"

	"github.com/jrife/bedrock/storage"
	"github.com/jrife/bedrock/storage/backing"
	"github.com/jrife/bedrock/storage/storagetest"
)

func TestSliceConformance(t *testing.T) {
	storagetest.RunListTests(t, func(capacity int) storage.List[int] {
		return backing.NewSlice[int](capacity)
	})
}

func TestArrayConformance(t *testing.T) {
	storagetest.RunListTests(t, func(capacity int) storage.List[int] {
		// The suite never holds more than 16 elements at once.
		if capacity < 16 {
			capacity = 16
		}

		return backing.NewArray[int](capacity)
	})
}

func TestGodsArrayListConformance(t *testing.T) {
	storagetest.RunListTests(t, func(capacity int) storage.List[int] {
		return backing.NewArrayList[int]()
	})
}

func TestGodsLinkedListConformance(t *testing.T) {
	storagetest.RunListTests(t, func(capacity int) storage.List[int] {
		return backing.NewLinkedList[int]()
	})
}

func TestArrayFixedCapacity(t *testing.T) {
	array := backing.NewArray[int](4)

	capacity, fixed := storage.FixedCapacityOf(array)
	require.True(t, fixed)
	require.Equal(t, 4, capacity)

	for i := 0; i < 4; i++ {
		array.Push(i)
	}

	require.Equal(t, 4, array.Len())
	require.Panics(t, func() { array.Push(4) })
	require.Panics(t, func() { array.Insert(0, 4) })
	require.Panics(t, func() { array.Reserve(1) })
}

func TestArrayReserveWithinCapacity(t *testing.T) {
	array := backing.NewArray[int](4)

	array.Push(1)
	require.NotPanics(t, func() { array.Reserve(3) })
	require.Equal(t, 4, array.Capacity())
}

func TestSliceGrowsWithoutBound(t *testing.T) {
	slice := backing.NewSlice[int](0)

	_, fixed := storage.FixedCapacityOf(slice)
	require.False(t, fixed)

	for i := 0; i < 1000; i++ {
		slice.Push(i)
	}

	require.Equal(t, 1000, slice.Len())
}

func TestSliceShrinkToFit(t *testing.T) {
	slice := backing.NewSlice[int](100)

	slice.Push(1)
	slice.Push(2)
	require.GreaterOrEqual(t, slice.Capacity(), 100)

	slice.ShrinkToFit()
	require.Equal(t, 2, slice.Capacity())
	require.Equal(t, 2, slice.Len())
}

func TestSliceReserve(t *testing.T) {
	slice := backing.NewSlice[int](0)

	slice.Push(1)
	slice.Reserve(9)
	require.GreaterOrEqual(t, slice.Capacity(), 10)
}

func TestGodsListPointerWritesStick(t *testing.T) {
	// Elements live in per-element boxes so pointers survive the
	// wrapped list rearranging its internal storage.
	list := backing.NewLinkedList[int]()

	list.Push(1)
	list.Push(2)

	first := list.Get(0)
	list.Push(3)

	*first = 100
	require.Equal(t, 100, *list.Get(0))
}

func TestFromGodsList(t *testing.T) {
	inner := arraylist.New()
	list := backing.FromGodsList[int](inner)

	list.Push(7)
	require.Equal(t, 1, inner.Size())
	require.Equal(t, 7, *list.Get(0))
}

func TestGodsListBounds(t *testing.T) {
	// The wrapped lists silently ignore out-of-range mutations, so the
	// adapter has to supply the panics itself.
	list := backing.NewArrayList[int]()

	list.Push(1)

	require.Panics(t, func() { list.Remove(1) })
	require.Panics(t, func() { list.Insert(2, 0) })
	require.Equal(t, 1, list.Len())
}
