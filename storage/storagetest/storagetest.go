// Package storagetest provides a reusable conformance suite for the
// storage.List contract. Every List implementation in the module, the
// backing adapters as well as the sparse and chain compositions, runs the
// same suite, the way a kv driver would run a shared driver test suite.
package storagetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jrife/bedrock/storage"
)

// Builder constructs an empty list able to hold at least capacity elements.
type Builder func(capacity int) storage.List[int]

// Elements collects the live elements of a list in position order.
func Elements(list storage.List[int]) []int {
	elements := []int{}

	list.Range(func(_ int, element *int) bool {
		elements = append(elements, *element)

		return true
	})

	return elements
}

// holeCounter is implemented by hole-preserving lists whose Len counts
// punched positions as occupied.
type holeCounter interface {
	NumHoles() int
}

// LiveLen returns the number of live elements in a list: Len minus the
// punched positions for hole-preserving implementations, plain Len for
// everything else.
func LiveLen(list storage.List[int]) int {
	if counter, ok := list.(holeCounter); ok {
		return list.Len() - counter.NumHoles()
	}

	return list.Len()
}

// ExpectPanic fails the test unless fn panics.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()

	fn()
}

// RunListTests runs the storage.List conformance suite against lists
// produced by builder.
func RunListTests(t *testing.T, builder Builder) {
	t.Run("Empty", func(t *testing.T) { testEmpty(builder, t) })
	t.Run("PushPop", func(t *testing.T) { testPushPop(builder, t) })
	t.Run("InsertRemove", func(t *testing.T) { testInsertRemove(builder, t) })
	t.Run("Get", func(t *testing.T) { testGet(builder, t) })
	t.Run("Add", func(t *testing.T) { testAdd(builder, t) })
	t.Run("Truncate", func(t *testing.T) { testTruncate(builder, t) })
	t.Run("OutOfBounds", func(t *testing.T) { testOutOfBounds(builder, t) })
	t.Run("Reserve", func(t *testing.T) { testReserve(builder, t) })
	t.Run("ByIndex", func(t *testing.T) { testByIndex(builder, t) })
}

func testEmpty(builder Builder, t *testing.T) {
	list := builder(0)

	if list.Len() != 0 {
		t.Fatalf("expected a fresh list to be empty, got len %d", list.Len())
	}

	if !list.IsEmpty() {
		t.Fatalf("expected a fresh list to report empty")
	}

	if _, ok := list.Pop(); ok {
		t.Fatalf("expected Pop on an empty list to report false")
	}

	if element := list.Get(0); element != nil {
		t.Fatalf("expected Get on an empty list to return nil, got %#v", element)
	}
}

func testPushPop(builder Builder, t *testing.T) {
	list := builder(8)

	for i := 0; i < 8; i++ {
		list.Push(i * 10)
	}

	if list.IsEmpty() {
		t.Fatalf("expected a populated list not to report empty")
	}

	if diff := cmp.Diff([]int{0, 10, 20, 30, 40, 50, 60, 70}, Elements(list)); diff != "" {
		t.Fatalf("elements differ after pushes (-want +got):\n%s", diff)
	}

	for i := 7; i >= 0; i-- {
		element, ok := list.Pop()

		if !ok {
			t.Fatalf("expected Pop to succeed at %d", i)
		}

		if element != i*10 {
			t.Fatalf("expected Pop to return %d, got %d", i*10, element)
		}
	}

	if list.Len() != 0 {
		t.Fatalf("expected an empty list after popping everything, got len %d", list.Len())
	}
}

func testInsertRemove(builder Builder, t *testing.T) {
	list := builder(8)

	list.Insert(0, 2)
	list.Insert(0, 0)
	list.Insert(1, 1)
	list.Insert(3, 3)

	if diff := cmp.Diff([]int{0, 1, 2, 3}, Elements(list)); diff != "" {
		t.Fatalf("elements differ after inserts (-want +got):\n%s", diff)
	}

	if element := list.Remove(1); element != 1 {
		t.Fatalf("expected Remove(1) to return 1, got %d", element)
	}

	if diff := cmp.Diff([]int{0, 2, 3}, Elements(list)); diff != "" {
		t.Fatalf("elements differ after removal (-want +got):\n%s", diff)
	}
}

func testGet(builder Builder, t *testing.T) {
	list := builder(4)

	list.Push(7)
	list.Push(8)

	element := list.Get(1)

	if element == nil || *element != 8 {
		t.Fatalf("expected Get(1) to return 8, got %#v", element)
	}

	// Writes through the pointer must be visible to subsequent reads.
	*element = 88

	if got := list.Get(1); got == nil || *got != 88 {
		t.Fatalf("expected the write through Get's pointer to stick, got %#v", got)
	}

	if got := list.Get(2); got != nil {
		t.Fatalf("expected Get out of range to return nil, got %#v", got)
	}

	if got := list.Get(-1); got != nil {
		t.Fatalf("expected Get with a negative index to return nil, got %#v", got)
	}
}

func testAdd(builder Builder, t *testing.T) {
	list := builder(4)

	for i := 0; i < 4; i++ {
		key := list.Add(i)

		if got := list.Get(key); got == nil || *got != i {
			t.Fatalf("expected the key returned by Add to fetch %d, got %#v", i, got)
		}
	}
}

func testTruncate(builder Builder, t *testing.T) {
	list := builder(8)

	for i := 0; i < 6; i++ {
		list.Push(i)
	}

	// Truncating past the end has no effect.
	list.Truncate(10)

	if list.Len() != 6 {
		t.Fatalf("expected Truncate past the end to be a no-op, got len %d", list.Len())
	}

	list.Truncate(2)

	if diff := cmp.Diff([]int{0, 1}, Elements(list)); diff != "" {
		t.Fatalf("elements differ after truncation (-want +got):\n%s", diff)
	}

	// A negative length is a bounds violation like any other.
	ExpectPanic(t, func() { list.Truncate(-1) })

	if diff := cmp.Diff([]int{0, 1}, Elements(list)); diff != "" {
		t.Fatalf("elements differ after failed truncation (-want +got):\n%s", diff)
	}
}

func testOutOfBounds(builder Builder, t *testing.T) {
	list := builder(4)

	list.Push(1)

	ExpectPanic(t, func() { list.Remove(1) })
	ExpectPanic(t, func() { list.Remove(-1) })
	ExpectPanic(t, func() { list.Insert(2, 0) })
	ExpectPanic(t, func() { list.Insert(-1, 0) })
	ExpectPanic(t, func() { list.RemoveAndShiftFix(1) })
	ExpectPanic(t, func() { list.InsertAndShiftFix(2, 0) })

	// A failed mutation must leave the list untouched.
	if diff := cmp.Diff([]int{1}, Elements(list)); diff != "" {
		t.Fatalf("elements differ after failed mutations (-want +got):\n%s", diff)
	}
}

func testReserve(builder Builder, t *testing.T) {
	list := builder(8)

	list.Push(1)
	list.Push(2)
	list.Reserve(4)

	// Reserving must not disturb the contents.
	if diff := cmp.Diff([]int{1, 2}, Elements(list)); diff != "" {
		t.Fatalf("elements differ after Reserve (-want +got):\n%s", diff)
	}
}

func testByIndex(builder Builder, t *testing.T) {
	list := builder(4)
	store := storage.ByIndex[int](list)

	key := store.Add(42)

	if !store.ContainsKey(key) {
		t.Fatalf("expected the store to contain key %d", key)
	}

	if element := store.Get(key); element == nil || *element != 42 {
		t.Fatalf("expected Get to return 42, got %#v", element)
	}

	if element := store.Remove(key); element != 42 {
		t.Fatalf("expected Remove to return 42, got %d", element)
	}

	// Hole-preserving implementations keep the punched position occupied,
	// so liveness is the cross-implementation measure, not Len.
	if live := LiveLen(list); live != 0 {
		t.Fatalf("expected no live elements after removal, got %d", live)
	}

	ExpectPanic(t, func() { store.Remove(key) })
}
