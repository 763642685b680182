package backing

import (
	"github.com/jrife/bedrock/storage"
)

var _ storage.List[int] = (*Slice[int])(nil)

// Slice implements storage.List over a growable Go slice. It is the default
// backing buffer for the sparse and chain storages.
type Slice[E any] struct {
	elements []E
}

// NewSlice creates an empty slice-backed list with the given capacity.
// A capacity of zero does not allocate.
func NewSlice[E any](capacity int) *Slice[E] {
	if capacity == 0 {
		return &Slice[E]{}
	}

	return &Slice[E]{elements: make([]E, 0, capacity)}
}

// Len implements storage.List.Len
func (list *Slice[E]) Len() int {
	return len(list.elements)
}

// IsEmpty implements storage.List.IsEmpty
func (list *Slice[E]) IsEmpty() bool {
	return len(list.elements) == 0
}

// Capacity implements storage.List.Capacity
func (list *Slice[E]) Capacity() int {
	return cap(list.elements)
}

// Get implements storage.List.Get
func (list *Slice[E]) Get(index int) *E {
	if index < 0 || index >= len(list.elements) {
		return nil
	}

	return &list.elements[index]
}

// Insert implements storage.List.Insert
func (list *Slice[E]) Insert(index int, element E) {
	if index < 0 || index > len(list.elements) {
		panic("index out of bounds")
	}

	var zero E

	list.elements = append(list.elements, zero)
	copy(list.elements[index+1:], list.elements[index:])
	list.elements[index] = element
}

// Remove implements storage.List.Remove
func (list *Slice[E]) Remove(index int) E {
	if index < 0 || index >= len(list.elements) {
		panic("index out of bounds")
	}

	element := list.elements[index]
	copy(list.elements[index:], list.elements[index+1:])

	// Zero the vacated tail slot so the slice doesn't pin the old value.
	var zero E

	last := len(list.elements) - 1
	list.elements[last] = zero
	list.elements = list.elements[:last]

	return element
}

// Push implements storage.List.Push
func (list *Slice[E]) Push(element E) {
	list.elements = append(list.elements, element)
}

// Pop implements storage.List.Pop
func (list *Slice[E]) Pop() (E, bool) {
	if len(list.elements) == 0 {
		var zero E

		return zero, false
	}

	return list.Remove(len(list.elements) - 1), true
}

// Add implements storage.List.Add
func (list *Slice[E]) Add(element E) int {
	list.elements = append(list.elements, element)

	return len(list.elements) - 1
}

// Truncate implements storage.List.Truncate
func (list *Slice[E]) Truncate(n int) {
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

// Reserve implements storage.List.Reserve
func (list *Slice[E]) Reserve(additional int) {
	if len(list.elements)+additional <= cap(list.elements) {
		return
	}

	grown := make([]E, len(list.elements), len(list.elements)+additional)
	copy(grown, list.elements)
	list.elements = grown
}

// ShrinkToFit implements storage.List.ShrinkToFit
func (list *Slice[E]) ShrinkToFit() {
	if len(list.elements) == cap(list.elements) {
		return
	}

	shrunk := make([]E, len(list.elements))
	copy(shrunk, list.elements)
	list.elements = shrunk
}

// InsertAndShiftFix implements storage.List.InsertAndShiftFix
func (list *Slice[E]) InsertAndShiftFix(index int, element E) {
	list.Insert(index, element)
	storage.FixRightShift[E](list, index, 1)
}

// RemoveAndShiftFix implements storage.List.RemoveAndShiftFix
func (list *Slice[E]) RemoveAndShiftFix(index int) E {
	element := list.Remove(index)
	storage.FixLeftShift[E](list, index, 1)

	return element
}

// Range implements storage.List.Range
func (list *Slice[E]) Range(fn func(index int, element *E) bool) {
	for i := range list.elements {
		if !fn(i, &list.elements[i]) {
			return
		}
	}
}
