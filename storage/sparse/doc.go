// Package sparse wraps any index-addressed list in a layer that makes
// removal O(1) instead of O(n).
//
// A plain list removes an element by shifting everything after it one
// position to the left, which costs time proportional to the tail and
// invalidates the positions of every shifted element. Sparse storage never
// shifts: RemoveAndShiftFix replaces the removed element with a hole and
// threads that hole into a free list. Holes still occupy positions, so Len
// does not change on removal, but every other live element keeps exactly
// the key it had.
//
// Add drains the free list before growing the backing buffer, so vacated
// positions are reused in O(1) as well. When locality matters more than key
// stability, Defragment compacts all holes away in a single pass;
// DefragmentAndFix does the same while notifying elements of each
// relocation through the stability protocol so self-tracked positions
// survive the compaction.
//
// The raw shifting operations (Remove, Pop) are defined only while the
// storage is dense. With holes present they would have to either skip holes,
// breaking position semantics, or compact first; both are surprising, so
// they panic instead and the caller chooses between the shift-fix variants
// and an explicit defragmentation.
package sparse
