package chain

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/jrife/bedrock/storage"
	"github.com/jrife/bedrock/storage/backing"
)

// defaultBufferBytes is the byte footprint a buffer targets when no limit is
// configured.
const defaultBufferBytes = 2048

var _ storage.List[int] = (*List[int])(nil)
var _ storage.Fixed = (*List[int])(nil)

// Factory creates an empty buffer with at least the given capacity.
// Factories producing fixed-capacity buffers should ignore the capacity
// hint and always allocate their fixed size.
type Factory[E any] func(capacity int) storage.List[E]

// Config contains configuration for a chain
type Config[E any] struct {
	// NewBuffer creates the chain's buffers. nil defaults to growable
	// slices.
	NewBuffer Factory[E]
	// Index is the list that holds the buffers themselves. nil defaults
	// to a growable slice.
	Index storage.List[storage.List[E]]
	// Limit is the number of elements a buffer is filled to before a new
	// buffer is allocated. It is forced even and at least 2. Zero
	// defaults to DefaultLimit for the element type.
	Limit int
	// Logger is used for debug-level logging of buffer allocation and
	// shrinking. nil defaults to the global zap logger.
	Logger *zap.Logger
}

// List implements storage.List over an ordered set of buffers, each used
// only up to the configured limit. The invariant maintained by every
// operation: the cached length equals the sum of the buffer lengths, and
// every buffer except possibly the last holds at most limit elements.
type List[E any] struct {
	buffers   storage.List[storage.List[E]]
	newBuffer Factory[E]
	logger    *zap.Logger
	length    int
	limit     limitWord
}

// DefaultLimit returns the default per-buffer limit for elements of type E:
// the number of elements that fit a fixed byte budget, floored at 2 and
// forced even.
func DefaultLimit[E any]() int {
	var zero E

	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		size = 1
	}

	limit := (defaultBufferBytes / size) &^ 1
	if limit < 2 {
		limit = 2
	}

	return limit
}

// New creates an empty chain from config. No buffer is allocated until the
// first element is pushed.
func New[E any](config Config[E]) *List[E] {
	list := &List[E]{
		buffers:   config.Index,
		newBuffer: config.NewBuffer,
		logger:    config.Logger,
	}

	if list.buffers == nil {
		list.buffers = backing.NewSlice[storage.List[E]](0)
	}

	if list.newBuffer == nil {
		list.newBuffer = func(capacity int) storage.List[E] {
			return backing.NewSlice[E](capacity)
		}
	}

	if list.logger == nil {
		list.logger = zap.L()
	}

	limit := config.Limit
	if limit == 0 {
		limit = DefaultLimit[E]()
	}

	list.limit = newLimitWord(limit, true)

	return list
}

// NewSlice creates an empty chain over slice buffers, with an initial
// buffer of the given capacity.
func NewSlice[E any](capacity int) *List[E] {
	list := New(Config[E]{})
	list.buffers.Push(list.newBuffer(capacity))

	return list
}

// Limit returns the number of elements a buffer is filled to before a new
// buffer is allocated.
func (list *List[E]) Limit() int {
	return list.limit.limit()
}

// SetLimit changes the buffer limit. The limit is forced even and at least
// 2. Buffers already past a lowered limit keep their elements; the new
// limit only steers future growth.
func (list *List[E]) SetLimit(limit int) {
	list.limit.setLimit(limit)
}

// AllocatesToLimit reports whether fresh buffers are pre-sized to the limit.
func (list *List[E]) AllocatesToLimit() bool {
	return list.limit.flag()
}

// SetAllocateToLimit controls whether fresh buffers are pre-sized to the
// limit right away (the default) or start empty and grow on demand.
func (list *List[E]) SetAllocateToLimit(allocate bool) {
	list.limit.setFlag(allocate)
}

// NumBuffers returns the number of separate buffers in use.
func (list *List[E]) NumBuffers() int {
	return list.buffers.Len()
}

// Len implements storage.List.Len
func (list *List[E]) Len() int {
	return list.length
}

// IsEmpty implements storage.List.IsEmpty
func (list *List[E]) IsEmpty() bool {
	return list.length == 0
}

// Capacity implements storage.List.Capacity. The sum of the buffer
// capacities; O(number of buffers).
func (list *List[E]) Capacity() int {
	capacity := 0

	list.buffers.Range(func(_ int, buffer *storage.List[E]) bool {
		capacity += (*buffer).Capacity()

		return true
	})

	return capacity
}

// FixedCapacity implements storage.Fixed.FixedCapacity. The chain has a
// fixed capacity only when both the index list and the buffers report fixed
// capacities; it is then their product.
func (list *List[E]) FixedCapacity() (int, bool) {
	indexCapacity, ok := storage.FixedCapacityOf(list.buffers)
	if !ok {
		return 0, false
	}

	bufferCapacity, ok := storage.FixedCapacityOf(list.newBuffer(0))
	if !ok {
		return 0, false
	}

	return indexCapacity * bufferCapacity, true
}

// Get implements storage.List.Get
func (list *List[E]) Get(index int) *E {
	buffer, local, ok := list.locate(index)
	if !ok {
		return nil
	}

	return buffer.Get(local)
}

// Insert implements storage.List.Insert. Inserting at the very end takes
// the Push path, so it allocates a buffer instead of overfilling the last
// one.
func (list *List[E]) Insert(index int, element E) {
	if index == list.length {
		list.Push(element)

		return
	}

	buffer, local, ok := list.locate(index)
	if !ok {
		panic("index out of bounds")
	}

	buffer.Insert(local, element)
	list.length++
}

// Remove implements storage.List.Remove
func (list *List[E]) Remove(index int) E {
	buffer, local, ok := list.locate(index)
	if !ok {
		panic("index out of bounds")
	}

	list.length--

	return buffer.Remove(local)
}

// Push implements storage.List.Push. Appends to the last buffer while it is
// below the limit, otherwise appends a fresh buffer first. The worst-case
// copy is bounded by the limit no matter how large the chain has grown.
func (list *List[E]) Push(element E) {
	buffer := list.lastBuffer()
	if buffer == nil || buffer.Len() >= list.Limit() {
		buffer = list.pushBuffer()
	}

	buffer.Push(element)
	list.length++
}

// Pop implements storage.List.Pop. Pops from the last non-empty buffer;
// empty trailing buffers are skipped, not removed.
func (list *List[E]) Pop() (E, bool) {
	for i := list.buffers.Len() - 1; i >= 0; i-- {
		buffer := *list.buffers.Get(i)

		element, ok := buffer.Pop()
		if !ok {
			continue
		}

		list.length--

		return element, true
	}

	var zero E

	return zero, false
}

// Add implements storage.List.Add
func (list *List[E]) Add(element E) int {
	list.Push(element)

	return list.length - 1
}

// Truncate implements storage.List.Truncate
func (list *List[E]) Truncate(n int) {
	if n < 0 {
		panic("length must not be negative")
	}

	if n >= list.length {
		return
	}

	remaining := n

	list.buffers.Range(func(_ int, buffer *storage.List[E]) bool {
		length := (*buffer).Len()
		if remaining < length {
			(*buffer).Truncate(remaining)
			remaining = 0

			return true
		}

		remaining -= length

		return true
	})

	list.length = n
}

// Reserve implements storage.List.Reserve. Capacity is reserved in
// limit-sized buffers so that the bounded-copy property holds for the
// reserved space too.
func (list *List[E]) Reserve(additional int) {
	if additional <= 0 {
		return
	}

	limit := list.Limit()

	for ; additional >= limit; additional -= limit {
		list.buffers.Push(list.newBuffer(limit))
	}

	if additional > 0 {
		list.buffers.Push(list.newBuffer(additional))
	}
}

// ShrinkToFit implements storage.List.ShrinkToFit. Empty buffers are
// removed from the chain entirely; the rest shrink their own allocations.
// O(number of buffers).
func (list *List[E]) ShrinkToFit() {
	removed := 0

	for i := 0; i < list.buffers.Len(); {
		buffer := *list.buffers.Get(i)

		if buffer.Len() == 0 {
			list.buffers.Remove(i)
			removed++

			continue
		}

		buffer.ShrinkToFit()
		i++
	}

	list.buffers.ShrinkToFit()

	list.logger.Debug("shrank chain",
		zap.Int("removed_buffers", removed),
		zap.Int("buffers", list.buffers.Len()))
}

// InsertAndShiftFix implements storage.List.InsertAndShiftFix. The shift
// notification is raised by the owning buffer and scoped to its local index
// space; it does not propagate across buffer boundaries.
func (list *List[E]) InsertAndShiftFix(index int, element E) {
	if index == list.length {
		// Appending moves nothing, so there is nothing to fix.
		list.Push(element)

		return
	}

	buffer, local, ok := list.locate(index)
	if !ok {
		panic("index out of bounds")
	}

	buffer.InsertAndShiftFix(local, element)
	list.length++
}

// RemoveAndShiftFix implements storage.List.RemoveAndShiftFix. Scoped like
// InsertAndShiftFix.
func (list *List[E]) RemoveAndShiftFix(index int) E {
	buffer, local, ok := list.locate(index)
	if !ok {
		panic("index out of bounds")
	}

	list.length--

	return buffer.RemoveAndShiftFix(local)
}

// Range implements storage.List.Range. Indices passed to fn are global.
func (list *List[E]) Range(fn func(index int, element *E) bool) {
	offset := 0
	stopped := false

	list.buffers.Range(func(_ int, buffer *storage.List[E]) bool {
		(*buffer).Range(func(local int, element *E) bool {
			if !fn(offset+local, element) {
				stopped = true

				return false
			}

			return true
		})

		offset += (*buffer).Len()

		return !stopped
	})
}

// locate translates a global index into the owning buffer and the index
// local to it. O(number of buffers).
func (list *List[E]) locate(index int) (storage.List[E], int, bool) {
	if index < 0 {
		return nil, 0, false
	}

	var owner storage.List[E]

	local := index
	found := false

	list.buffers.Range(func(_ int, buffer *storage.List[E]) bool {
		if local < (*buffer).Len() {
			owner = *buffer
			found = true

			return false
		}

		local -= (*buffer).Len()

		return true
	})

	return owner, local, found
}

func (list *List[E]) lastBuffer() storage.List[E] {
	if list.buffers.Len() == 0 {
		return nil
	}

	return *list.buffers.Get(list.buffers.Len() - 1)
}

func (list *List[E]) pushBuffer() storage.List[E] {
	capacity := 0
	if list.AllocatesToLimit() {
		capacity = list.Limit()
	}

	buffer := list.newBuffer(capacity)
	list.buffers.Push(buffer)

	list.logger.Debug("allocated chain buffer",
		zap.Int("capacity", capacity),
		zap.Int("buffers", list.buffers.Len()))

	return buffer
}
