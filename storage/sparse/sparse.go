package sparse

import (
	"go.uber.org/zap"

	"github.com/jrife/bedrock/storage"
	"github.com/jrife/bedrock/storage/backing"
)

const notDenseMsg = "cannot shift elements of a sparse storage with holes: " +
	"defragment first or use the shift-fix variants"

var _ storage.List[int] = (*List[int])(nil)

// Config contains configuration for a sparse list
type Config[E any] struct {
	// Backing is the list that physically stores the slots. nil defaults
	// to a growable slice.
	Backing storage.List[Slot[E]]
	// Logger is used for debug-level logging of expensive maintenance
	// operations. nil defaults to the global zap logger.
	Logger *zap.Logger
}

// List implements storage.List with hole-punched removal. See the package
// documentation for the model.
//
// Invariants maintained across every operation: holes counts exactly the
// hole slots in the backing list; when holes is zero there is no free list
// (head and tail are both invalid); following next links from head visits
// holes only, ending at tail, which is the most recently punched hole.
type List[E any] struct {
	backing storage.List[Slot[E]]
	logger  *zap.Logger
	holes   int
	head    int
	tail    int
}

// New creates an empty sparse list from config
func New[E any](config Config[E]) *List[E] {
	list := &List[E]{
		backing: config.Backing,
		logger:  config.Logger,
		head:    noNext,
		tail:    noNext,
	}

	if list.backing == nil {
		list.backing = backing.NewSlice[Slot[E]](0)
	}

	if list.logger == nil {
		list.logger = zap.L()
	}

	return list
}

// NewSlice creates an empty sparse list over a slice backing with the given
// capacity.
func NewSlice[E any](capacity int) *List[E] {
	return New(Config[E]{Backing: backing.NewSlice[Slot[E]](capacity)})
}

// NumHoles returns the number of holes in the storage. The count is
// maintained incrementally: this never rescans the backing list.
func (list *List[E]) NumHoles() int {
	return list.holes
}

// IsDense reports whether the storage contains no holes.
func (list *List[E]) IsDense() bool {
	return list.holes == 0
}

// Len implements storage.List.Len. Holes count as occupied positions, so
// the length does not decrease on RemoveAndShiftFix.
func (list *List[E]) Len() int {
	return list.backing.Len()
}

// IsEmpty implements storage.List.IsEmpty. Holes occupy positions, so a
// storage holding nothing but holes is not empty; compare NumHoles to Len
// to detect that state.
func (list *List[E]) IsEmpty() bool {
	return list.backing.IsEmpty()
}

// Capacity implements storage.List.Capacity
func (list *List[E]) Capacity() int {
	return list.backing.Capacity()
}

// Get implements storage.List.Get. The backing list reports hole positions
// as occupied, but holes have no element: Get panics on a hole and returns
// nil only out of range.
func (list *List[E]) Get(index int) *E {
	slot := list.backing.Get(index)
	if slot == nil {
		return nil
	}

	return slot.elementRef()
}

// Insert implements storage.List.Insert. Raw inserts treat holes as
// ordinary slots and shift them along with everything else; positions
// recorded in the free list are not adjusted, so inserting below an
// existing hole is a contract violation. Insert into a dense storage is
// always sound.
func (list *List[E]) Insert(index int, element E) {
	list.backing.Insert(index, elementSlot(element))
}

// Remove implements storage.List.Remove. Defined only while the storage is
// dense; panics otherwise.
func (list *List[E]) Remove(index int) E {
	list.mustBeDense()

	return list.backing.Remove(index).element
}

// Push implements storage.List.Push
func (list *List[E]) Push(element E) {
	list.backing.Push(elementSlot(element))
}

// Pop implements storage.List.Pop. Defined only while the storage is dense;
// panics otherwise.
func (list *List[E]) Pop() (E, bool) {
	list.mustBeDense()

	slot, ok := list.backing.Pop()
	if !ok {
		var zero E

		return zero, false
	}

	return slot.element, true
}

// Add implements storage.List.Add. If the free list is non-empty its head
// hole is reused and the element takes over that position; otherwise the
// element is appended. Either way no other element moves.
func (list *List[E]) Add(element E) int {
	if list.holes == 0 {
		return list.backing.Add(elementSlot(element))
	}

	index := list.head
	slot := list.backing.Get(index)
	next := slot.next
	*slot = elementSlot(element)

	list.holes--

	if list.holes == 0 {
		list.head = noNext
		list.tail = noNext
	} else {
		if next == noNext {
			panic("free list ended before the hole count reached zero")
		}

		list.head = next
	}

	return index
}

// Truncate implements storage.List.Truncate
func (list *List[E]) Truncate(n int) {
	list.backing.Truncate(n)
}

// Reserve implements storage.List.Reserve
func (list *List[E]) Reserve(additional int) {
	list.backing.Reserve(additional)
}

// ShrinkToFit implements storage.List.ShrinkToFit
func (list *List[E]) ShrinkToFit() {
	list.backing.ShrinkToFit()
}

// InsertAndShiftFix implements storage.List.InsertAndShiftFix. Holes are
// not reused here: the free list is singly linked, and an insertion at a
// hole's position would leave its predecessor pointing at an element.
func (list *List[E]) InsertAndShiftFix(index int, element E) {
	list.Insert(index, element)
	storage.FixRightShift[E](list, index, 1)
}

// RemoveAndShiftFix implements storage.List.RemoveAndShiftFix. This is the
// operation sparse storage exists for: the element at index becomes a hole
// appended to the free list, no other element moves, and every other live
// key stays valid unchanged. O(1).
func (list *List[E]) RemoveAndShiftFix(index int) E {
	slot := list.backing.Get(index)
	if slot == nil {
		panic("index out of bounds")
	}

	element := slot.punch()

	if list.holes == 0 {
		list.head = index
	} else {
		list.backing.Get(list.tail).next = index
	}

	list.tail = index
	list.holes++

	return element
}

// Range implements storage.List.Range. Only live elements are visited;
// holes are skipped.
func (list *List[E]) Range(fn func(index int, element *E) bool) {
	list.backing.Range(func(index int, slot *Slot[E]) bool {
		if slot.hole {
			return true
		}

		return fn(index, &slot.element)
	})
}

// Defragment removes all holes from the storage without correcting
// elements' self-tracked positions. This is an O(n) operation: callers
// should check IsDense first to avoid needless scans.
func (list *List[E]) Defragment() {
	list.defragment(nil)
}

// DefragmentAndFix removes all holes from the storage, notifying live
// elements of every relocation through the stability protocol so
// self-tracked positions survive the compaction. Strictly more expensive
// than Defragment.
func (list *List[E]) DefragmentAndFix() {
	list.defragment(func(from, to int) {
		storage.FixMoved[E](list, from, to)
	})
}

// defragment compacts by walking holes from the front and elements from the
// back, swapping each hole with the nearest trailing element. When the scans
// meet, every hole sits past the last live element and the tail is
// truncated off the backing list.
func (list *List[E]) defragment(moved func(from, to int)) {
	if list.holes == 0 {
		return
	}

	relocations := 0
	i, j := 0, list.backing.Len()-1

	for i < j {
		front := list.backing.Get(i)
		if !front.hole {
			i++

			continue
		}

		back := list.backing.Get(j)
		if back.hole {
			j--

			continue
		}

		*front, *back = *back, *front
		relocations++

		if moved != nil {
			moved(j, i)
		}

		i++
		j--
	}

	list.backing.Truncate(list.backing.Len() - list.holes)

	list.logger.Debug("defragmented sparse storage",
		zap.Int("holes", list.holes),
		zap.Int("relocations", relocations),
		zap.Int("len", list.backing.Len()))

	list.holes = 0
	list.head = noNext
	list.tail = noNext
}

func (list *List[E]) mustBeDense() {
	if list.holes != 0 {
		panic(notDenseMsg)
	}
}
