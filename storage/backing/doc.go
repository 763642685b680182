// Package backing provides concrete implementations of the storage.List
// contract that the rest of the module composes:
//
//   - Slice wraps a growable Go slice and is the default backing buffer
//     everywhere.
//   - Array is a fixed-capacity variant that panics instead of growing and
//     reports its capacity through storage.Fixed.
//   - GodsList adapts the list implementations from
//     github.com/emirpasic/gods, storing elements boxed to satisfy the
//     pointer-returning accessor contract over an interface{}-based API.
//
// These adapters contain no algorithmic content of their own: they exist so
// the sparse and chain storages have buffers to wrap, and so consumers can
// pick the memory layout that suits their workload.
package backing
