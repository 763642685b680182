package storage

// MoveFix is the stability protocol: it is implemented by pointers to
// element types that store positions of sibling elements in the same list
// (tree parent links, graph adjacency, intrusive list neighbors). Storage
// implementations invoke the hooks after mutations that shift or relocate
// elements so those stored positions can be corrected in place.
//
// Element types that do not track sibling positions simply do not implement
// the interface and are skipped; NopMoveFix can be embedded to state that
// explicitly.
type MoveFix interface {
	// FixShift is invoked once per contiguous shift of the list's tail.
	// shiftedFrom is the first affected position; shiftedBy is the signed
	// shift distance and is never zero: negative after a removal (left
	// shift), positive after an insertion (right shift). The receiver must
	// add shiftedBy to every position it tracks that is >= shiftedFrom.
	FixShift(shiftedFrom, shiftedBy int)
	// FixMove is invoked once per single-element relocation that is not
	// part of a contiguous shift, such as a compaction swap. The receiver
	// must replace every tracked position equal to previousIndex with
	// currentIndex. previousIndex is not guaranteed to still be a valid
	// position; currentIndex is.
	FixMove(previousIndex, currentIndex int)
}

// NopMoveFix implements MoveFix by doing nothing. Embed it in element types
// that want to be explicit about not tracking sibling positions.
type NopMoveFix struct{}

// FixShift does nothing.
func (NopMoveFix) FixShift(shiftedFrom, shiftedBy int) {}

// FixMove does nothing.
func (NopMoveFix) FixMove(previousIndex, currentIndex int) {}

// tracksMoves reports whether *E implements MoveFix. The check only needs
// the method set, so a typed nil probe is enough.
func tracksMoves[E any]() bool {
	var probe *E
	_, ok := interface{}(probe).(MoveFix)

	return ok
}

// FixRightShift notifies every live element of list that the elements at
// positions >= shiftedFrom moved shiftedBy positions to the right, following
// an insertion. It must be invoked by storage implementations only, after
// the raw mutation. shiftedBy must be positive: a zero or negative magnitude
// is a contract violation and panics.
func FixRightShift[E any](list List[E], shiftedFrom, shiftedBy int) {
	if shiftedBy <= 0 {
		panic("shift magnitude must be positive")
	}

	fixShift(list, shiftedFrom, shiftedBy)
}

// FixLeftShift notifies every live element of list that the elements at
// positions >= shiftedFrom moved shiftedBy positions to the left, following
// a removal. The same contract as FixRightShift applies.
func FixLeftShift[E any](list List[E], shiftedFrom, shiftedBy int) {
	if shiftedBy <= 0 {
		panic("shift magnitude must be positive")
	}

	fixShift(list, shiftedFrom, -shiftedBy)
}

// FixMoved notifies every live element of list that the element at
// previousIndex now lives at currentIndex. It must be invoked by storage
// implementations only, after the relocation.
func FixMoved[E any](list List[E], previousIndex, currentIndex int) {
	if !tracksMoves[E]() {
		return
	}

	list.Range(func(_ int, element *E) bool {
		interface{}(element).(MoveFix).FixMove(previousIndex, currentIndex)

		return true
	})
}

func fixShift[E any](list List[E], shiftedFrom, shiftedBy int) {
	if !tracksMoves[E]() {
		return
	}

	list.Range(func(_ int, element *E) bool {
		interface{}(element).(MoveFix).FixShift(shiftedFrom, shiftedBy)

		return true
	})
}
