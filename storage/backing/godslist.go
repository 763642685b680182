package backing

import (
	"github.com/emirpasic/gods/lists"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/lists/doublylinkedlist"

	"github.com/jrife/bedrock/storage"
)

var _ storage.List[int] = (*GodsList[int])(nil)

// GodsList adapts any list from github.com/emirpasic/gods to the
// storage.List contract. The gods API is interface{}-based, so elements are
// stored boxed: every element costs one allocation, but pointers returned by
// Get stay valid across mutations of the list. Useful when elements are
// large and moving them around would dominate, or when a linked layout is
// wanted behind the same contract.
type GodsList[E any] struct {
	list lists.List
}

// NewArrayList creates a GodsList backed by a gods array list.
func NewArrayList[E any]() *GodsList[E] {
	return &GodsList[E]{list: arraylist.New()}
}

// NewLinkedList creates a GodsList backed by a gods doubly linked list.
func NewLinkedList[E any]() *GodsList[E] {
	return &GodsList[E]{list: doublylinkedlist.New()}
}

// FromGodsList wraps an existing gods list. The list must be empty and must
// not be used directly afterwards.
func FromGodsList[E any](list lists.List) *GodsList[E] {
	if list.Size() != 0 {
		panic("wrapped gods list must be empty")
	}

	return &GodsList[E]{list: list}
}

// Len implements storage.List.Len
func (list *GodsList[E]) Len() int {
	return list.list.Size()
}

// IsEmpty implements storage.List.IsEmpty
func (list *GodsList[E]) IsEmpty() bool {
	return list.list.Empty()
}

// Capacity implements storage.List.Capacity. The gods lists manage their
// allocations internally and do not expose capacity, so this reports the
// length.
func (list *GodsList[E]) Capacity() int {
	return list.list.Size()
}

// Get implements storage.List.Get
func (list *GodsList[E]) Get(index int) *E {
	boxed, ok := list.list.Get(index)
	if !ok {
		return nil
	}

	return boxed.(*E)
}

// Insert implements storage.List.Insert
func (list *GodsList[E]) Insert(index int, element E) {
	// The gods lists silently ignore out-of-range indices; the List
	// contract requires a panic.
	if index < 0 || index > list.list.Size() {
		panic("index out of bounds")
	}

	if index == list.list.Size() {
		list.list.Add(&element)

		return
	}

	list.list.Insert(index, &element)
}

// Remove implements storage.List.Remove
func (list *GodsList[E]) Remove(index int) E {
	boxed, ok := list.list.Get(index)
	if !ok {
		panic("index out of bounds")
	}

	list.list.Remove(index)

	return *boxed.(*E)
}

// Push implements storage.List.Push
func (list *GodsList[E]) Push(element E) {
	list.list.Add(&element)
}

// Pop implements storage.List.Pop
func (list *GodsList[E]) Pop() (E, bool) {
	if list.list.Size() == 0 {
		var zero E

		return zero, false
	}

	return list.Remove(list.list.Size() - 1), true
}

// Add implements storage.List.Add
func (list *GodsList[E]) Add(element E) int {
	list.list.Add(&element)

	return list.list.Size() - 1
}

// Truncate implements storage.List.Truncate
func (list *GodsList[E]) Truncate(n int) {
	if n < 0 {
		panic("length must not be negative")
	}

	for list.list.Size() > n {
		list.list.Remove(list.list.Size() - 1)
	}
}

// Reserve implements storage.List.Reserve. The gods lists grow on demand,
// so this is a no-op.
func (list *GodsList[E]) Reserve(additional int) {}

// ShrinkToFit implements storage.List.ShrinkToFit. The gods lists shrink
// their allocations internally, so this is a no-op.
func (list *GodsList[E]) ShrinkToFit() {}

// InsertAndShiftFix implements storage.List.InsertAndShiftFix
func (list *GodsList[E]) InsertAndShiftFix(index int, element E) {
	list.Insert(index, element)
	storage.FixRightShift[E](list, index, 1)
}

// RemoveAndShiftFix implements storage.List.RemoveAndShiftFix
func (list *GodsList[E]) RemoveAndShiftFix(index int) E {
	element := list.Remove(index)
	storage.FixLeftShift[E](list, index, 1)

	return element
}

// Range implements storage.List.Range
func (list *GodsList[E]) Range(fn func(index int, element *E) bool) {
	for i := 0; i < list.list.Size(); i++ {
		boxed, _ := list.list.Get(i)
		if !fn(i, boxed.(*E)) {
			return
		}
	}
}
