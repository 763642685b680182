// Package chain provides a segmented list that bounds the cost of any
// single reallocation.
//
// A single growable buffer has a weakness at scale: when capacity runs out,
// the entire contents relocate. Copying a few hundred bytes is free, copying
// a gigabyte in the middle of a latency-sensitive path is not. A chain caps
// that cost by limiting how far any one buffer is used: once the last buffer
// reaches the configured limit, a fresh buffer is appended and older buffers
// are never touched again by growth. The worst-case copy performed by any
// single operation is therefore bounded by the limit, independent of how
// large the aggregate collection grows.
//
// Indexing is global: Get(i) walks the buffers in order, subtracting each
// buffer's length until it finds the owner, so random access costs O(number
// of buffers) rather than O(elements). Iteration should prefer Buffers,
// which walks buffer by buffer without repeating the translation.
//
// Shift notifications raised by InsertAndShiftFix and RemoveAndShiftFix are
// scoped to the owning buffer and do not propagate across buffer
// boundaries. This is a deliberate constraint, not a defect: elements are
// assumed to track positions only within a single buffer's addressing, or
// not to rely on cross-buffer position stability at all.
package chain
