package sparse

const holeMsg = "the slot at the specified index is a hole"

// noNext marks the end of the free list.
const noNext = -1

// Slot is a single position in a sparse storage's backing list: either a
// live element or a hole left behind by a removal. It is exported only so
// the type of the backing list can be named; its state is observable
// exclusively through the sparse storage that owns it.
type Slot[E any] struct {
	element E
	// next is the position of the next hole in the free list. Meaningful
	// only while hole is set.
	next int
	hole bool
}

func elementSlot[E any](element E) Slot[E] {
	return Slot[E]{element: element, next: noNext}
}

// elementRef returns a pointer to the slot's element. Holes have no
// element: asking for one is a contract violation.
func (slot *Slot[E]) elementRef() *E {
	if slot.hole {
		panic(holeMsg)
	}

	return &slot.element
}

// punch turns an element slot into a hole with no successor, returning the
// displaced element. Punching a hole twice is a contract violation.
func (slot *Slot[E]) punch() E {
	if slot.hole {
		panic(holeMsg)
	}

	element := slot.element

	var zero E

	slot.element = zero
	slot.next = noNext
	slot.hole = true

	return element
}
