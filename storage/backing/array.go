package backing

import (
	"github.com/jrife/bedrock/storage"
)

var _ storage.List[int] = (*Array[int])(nil)
var _ storage.Fixed = (*Array[int])(nil)

// Array implements storage.List over a buffer whose capacity is fixed at
// construction. Operations that would grow past that capacity panic; this
// is a contract violation by the caller, not an environmental failure.
type Array[E any] struct {
	elements []E
}

// NewArray creates an empty fixed-capacity list holding up to capacity
// elements.
func NewArray[E any](capacity int) *Array[E] {
	if capacity < 0 {
		panic("capacity must not be negative")
	}

	return &Array[E]{elements: make([]E, 0, capacity)}
}

// FixedCapacity implements storage.Fixed.FixedCapacity
func (list *Array[E]) FixedCapacity() (int, bool) {
	return cap(list.elements), true
}

// Len implements storage.List.Len
func (list *Array[E]) Len() int {
	return len(list.elements)
}

// IsEmpty implements storage.List.IsEmpty
func (list *Array[E]) IsEmpty() bool {
	return len(list.elements) == 0
}

// Capacity implements storage.List.Capacity
func (list *Array[E]) Capacity() int {
	return cap(list.elements)
}

// Get implements storage.List.Get
func (list *Array[E]) Get(index int) *E {
	if index < 0 || index >= len(list.elements) {
		return nil
	}

	return &list.elements[index]
}

// Insert implements storage.List.Insert
func (list *Array[E]) Insert(index int, element E) {
	if index < 0 || index > len(list.elements) {
		panic("index out of bounds")
	}

	list.mustFit(1)

	var zero E

	list.elements = append(list.elements, zero)
	copy(list.elements[index+1:], list.elements[index:])
	list.elements[index] = element
}

// Remove implements storage.List.Remove
func (list *Array[E]) Remove(index int) E {
	if index < 0 || index >= len(list.elements) {
		panic("index out of bounds")
	}

	element := list.elements[index]
	copy(list.elements[index:], list.elements[index+1:])

	var zero E

	last := len(list.elements) - 1
	list.elements[last] = zero
	list.elements = list.elements[:last]

	return element
}

// Push implements storage.List.Push
func (list *Array[E]) Push(element E) {
	list.mustFit(1)
	list.elements = append(list.elements, element)
}

// Pop implements storage.List.Pop
func (list *Array[E]) Pop() (E, bool) {
	if len(list.elements) == 0 {
		var zero E

		return zero, false
	}

	return list.Remove(len(list.elements) - 1), true
}

// Add implements storage.List.Add
func (list *Array[E]) Add(element E) int {
	list.Push(element)

	return len(list.elements) - 1
}

// Truncate implements storage.List.Truncate
func (list *Array[E]) Truncate(n int) {
	if n < 0 {
		panic("length must not be negative")
	}

	if n >= len(list.elements) {
		return
	}

	var zero E

	for i := n; i < len(list.elements); i++ {
		list.elements[i] = zero
	}

	list.elements = list.elements[:n]
}

// Reserve implements storage.List.Reserve. The capacity is fixed, so
// Reserve panics unless the request is already satisfied.
func (list *Array[E]) Reserve(additional int) {
	list.mustFit(additional)
}

// ShrinkToFit implements storage.List.ShrinkToFit. The capacity is fixed,
// so it does nothing.
func (list *Array[E]) ShrinkToFit() {}

// InsertAndShiftFix implements storage.List.InsertAndShiftFix
func (list *Array[E]) InsertAndShiftFix(index int, element E) {
	list.Insert(index, element)
	storage.FixRightShift[E](list, index, 1)
}

// RemoveAndShiftFix implements storage.List.RemoveAndShiftFix
func (list *Array[E]) RemoveAndShiftFix(index int) E {
	element := list.Remove(index)
	storage.FixLeftShift[E](list, index, 1)

	return element
}

// Range implements storage.List.Range
func (list *Array[E]) Range(fn func(index int, element *E) bool) {
	for i := range list.elements {
		if !fn(i, &list.elements[i]) {
			return
		}
	}
}

func (list *Array[E]) mustFit(additional int) {
	if len(list.elements)+additional > cap(list.elements) {
		panic("fixed-capacity storage cannot grow")
	}
}
