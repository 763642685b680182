package storage

// List is the contract for list-like containers that can be the backing
// storage of index-addressed data structures. Positions double as keys: see
// ByIndex.
//
// On top of the Store invariants, implementations must uphold:
//
//   - Insert and Remove panic on out-of-range indices before mutating
//     anything observable;
//   - InsertAndShiftFix and RemoveAndShiftFix perform the raw mutation and
//     then invoke the stability hooks (or avoid moving elements entirely, in
//     which case no notification is owed);
//   - Get returns a pointer to the stored element, invalidated by any
//     mutation of the list.
type List[E any] interface {
	// Len returns the number of elements in the list.
	Len() int
	// IsEmpty reports whether the list holds no elements.
	IsEmpty() bool
	// Capacity returns the number of elements the list can hold without
	// allocating.
	Capacity() int
	// Get returns a pointer to the element at index, or nil if index is
	// out of range.
	Get(index int) *E
	// Insert inserts element at index, shifting all elements after it to
	// the right. Panics if index < 0 or index > Len().
	Insert(index int, element E)
	// Remove removes and returns the element at index, shifting all
	// elements after it to the left. Panics if index is out of range.
	Remove(index int) E
	// Push appends element to the back of the list.
	Push(element E)
	// Pop removes and returns the last element. The second return value is
	// false if the list is empty.
	Pop() (E, bool)
	// Add stores element at an arbitrary position without shifting any
	// other element and returns that position. The base behavior is a
	// Push; sparse storage overrides it to reuse vacated positions.
	Add(element E) int
	// Truncate keeps the first n elements and drops the rest. It has no
	// effect if n >= Len() and panics if n is negative. It does not change
	// capacity.
	Truncate(n int)
	// Reserve ensures capacity for at least additional more elements.
	// Fixed-capacity lists panic unless the request is already satisfied.
	Reserve(additional int)
	// ShrinkToFit drops excess capacity as far as the implementation
	// allows.
	ShrinkToFit()
	// InsertAndShiftFix inserts element at index and notifies live
	// elements of the resulting right shift through the stability
	// protocol. Panics like Insert.
	InsertAndShiftFix(index int, element E)
	// RemoveAndShiftFix removes and returns the element at index, keeping
	// the positions of all other live elements valid: either by notifying
	// them of the resulting left shift, or by not moving them at all.
	// Panics like Remove.
	RemoveAndShiftFix(index int) E
	// Range calls fn for every live element in position order until fn
	// returns false. The pointer passed to fn follows the same rules as
	// the one returned by Get.
	Range(fn func(index int, element *E) bool)
}

// Fixed is implemented by storages whose capacity is fixed at construction.
// FixedCapacity returns that capacity with ok == true; composite storages
// whose fixedness depends on their components return ok == false when any
// component is growable.
type Fixed interface {
	FixedCapacity() (capacity int, ok bool)
}

// FixedCapacityOf reports the fixed capacity of v, if it has one.
func FixedCapacityOf(v interface{}) (int, bool) {
	if fixed, ok := v.(Fixed); ok {
		return fixed.FixedCapacity()
	}

	return 0, false
}
