package storage

// Store is the contract for containers that can be the backing storage of
// key-addressed data structures.
//
// Implementations must uphold a few invariants that data structures are
// allowed to rely on:
//
//   - a freshly constructed store is empty: Len() == 0;
//   - Add assigns a key that no currently live element holds;
//   - an element added at a key is retrievable in the exact state it was
//     added in until it is removed or explicitly modified;
//   - a failing Remove is a guaranteed no-op: it panics before mutating
//     anything observable.
type Store[K comparable, E any] interface {
	// Add stores element under an unspecified key and returns that key.
	// Amortized O(1). Fixed-capacity stores panic when full.
	Add(element E) K
	// Remove removes and returns the element identified by key. It panics
	// if the key is not present, without mutating the store.
	Remove(key K) E
	// Get returns a pointer to the element identified by key, or nil if
	// the key is not present. The pointer refers to the stored element:
	// writes through it are visible to subsequent reads, and it is
	// invalidated by any mutation of the store.
	Get(key K) *E
	// ContainsKey reports whether key identifies a live element. It is
	// total and never panics.
	ContainsKey(key K) bool
	// Len returns the number of elements in the store.
	Len() int
	// IsEmpty reports whether the store holds no elements.
	IsEmpty() bool
	// Capacity returns the number of elements the store can hold without
	// allocating. Fixed-capacity stores report their fixed capacity.
	Capacity() int
	// Reserve ensures capacity for at least additional more elements.
	// Fixed-capacity stores panic unless the request is already satisfied.
	Reserve(additional int)
	// ShrinkToFit drops excess capacity as far as the implementation
	// allows.
	ShrinkToFit()
}

var _ Store[int, int] = byIndex[int]{}

// ByIndex promotes an index-addressed list to the key-addressed Store
// contract by treating positions as keys. Removal routes through
// RemoveAndShiftFix so that, together with elements cooperating with the
// stability protocol, keys handed out by Add stay valid across removals.
//
// Over a hole-preserving list, a removed key's position stays occupied: the
// store reports it as contained, and Get panics on it instead of returning
// nil, following the wrapped list's hole semantics.
func ByIndex[E any](list List[E]) Store[int, E] {
	return byIndex[E]{list: list}
}

type byIndex[E any] struct {
	list List[E]
}

func (store byIndex[E]) Add(element E) int {
	return store.list.Add(element)
}

func (store byIndex[E]) Remove(key int) E {
	return store.list.RemoveAndShiftFix(key)
}

func (store byIndex[E]) Get(key int) *E {
	return store.list.Get(key)
}

func (store byIndex[E]) ContainsKey(key int) bool {
	return key >= 0 && key < store.list.Len()
}

func (store byIndex[E]) Len() int {
	return store.list.Len()
}

func (store byIndex[E]) IsEmpty() bool {
	return store.list.IsEmpty()
}

func (store byIndex[E]) Capacity() int {
	return store.list.Capacity()
}

func (store byIndex[E]) Reserve(additional int) {
	store.list.Reserve(additional)
}

func (store byIndex[E]) ShrinkToFit() {
	store.list.ShrinkToFit()
}
