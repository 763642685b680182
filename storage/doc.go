// Package storage defines the capability contracts that let data structures
// store their elements in bulk-allocated backing buffers and refer to them
// by lightweight keys instead of pointers.
//
// Pointer-based nodes are hostile to structures with cycles: parent and child
// links keep each other alive, every node is a separate allocation, and
// traversals chase pointers all over the heap. Arena-backed structures avoid
// all of that by holding a single backing buffer and storing keys. A key
// identifies an element within one storage instance. Keys are unique only
// among the elements alive in that instance at the same time: a key may be
// reused after its element is removed, and keys from different instances are
// never comparable.
//
// Two contracts are defined:
//
//   - Store is the key-addressed contract: add an element, get a key back,
//     use the key for lookups and removal.
//   - List is the index-addressed refinement for elements with a natural
//     order. Positions double as keys through ByIndex, provided the elements
//     cooperate with the stability protocol below.
//
// Index-based removal shifts every trailing element one position to the
// left, which silently invalidates any position another element has squirreled
// away. The stability protocol closes that hole: mutating operations that
// shift or relocate elements notify every live element through the MoveFix
// hooks so self-tracked positions can be corrected in place. The hooks are
// invoked by the storage implementations themselves, never by consumers;
// InsertAndShiftFix and RemoveAndShiftFix are the only sound mutating entry
// points for index-addressed storage whose elements rely on position
// stability.
//
// All contract violations (removing a missing key, indexing out of range,
// overflowing a fixed-capacity storage) are programmer errors and panic.
// No error values cross this API: a failing operation either panics before
// mutating anything observable or does not fail at all.
//
// Concrete backing buffers live in the backing package. The sparse package
// layers O(1) hole-punched removal on top of any List, and the chain package
// bounds the worst-case cost of a single reallocation by segmenting storage
// into limited-size buffers.
//
// Nothing in this package is safe for concurrent mutation. A storage value
// is plain data owned by its consumer; synchronization, if any, is the
// consumer's job.
package storage
