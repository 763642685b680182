package chain

import (
	"github.com/jrife/bedrock/storage"
)

// BufferProxy is a view of one buffer of a chain that grants element-level
// iteration and nothing else. Handing out the buffers themselves would let
// a consumer change a buffer's length behind the chain's back and
// desynchronize it from the chain's cached total length; the proxy closes
// that door.
type BufferProxy[E any] struct {
	buffer storage.List[E]
}

// Len returns the number of elements in the buffer.
func (proxy BufferProxy[E]) Len() int {
	return proxy.buffer.Len()
}

// Range calls fn for every element of the buffer in order, with indices
// local to the buffer, until fn returns false. Elements may be mutated
// through the pointer; the buffer's length may not change.
func (proxy BufferProxy[E]) Range(fn func(index int, element *E) bool) {
	proxy.buffer.Range(fn)
}

// Buffers calls fn for every buffer of the chain in order until fn returns
// false. Iterating buffer by buffer avoids repeating the global index
// translation per element and is the efficient way to walk a chain.
func (list *List[E]) Buffers(fn func(buffer BufferProxy[E]) bool) {
	list.buffers.Range(func(_ int, buffer *storage.List[E]) bool {
		return fn(BufferProxy[E]{buffer: *buffer})
	})
}
