// Package arena specifies the slot-allocator contract the tree engine
// consumes to allocate, fetch, mutate, and release node buffers by integer
// id. It is a pure interface; the module's one shipped implementation is
// package slab.
package arena

import (
	"github.com/flier/gbtree/node"
	"github.com/flier/gbtree/pkg/opt"
)

// Arena is the slot allocator the tree engine is built on. Implementations
// must guarantee that two distinct ids never alias the same storage, since
// the engine relies on that to hand out non-aliasing item references during
// iteration.
type Arena[T any] interface {
	// Allocate takes ownership of buf and returns a stable id for it, valid
	// until the id is released.
	Allocate(buf *node.Buffer[T]) int

	// NewLeaf builds a single-item leaf buffer and allocates it, reusing a
	// recycled buffer's backing storage when one is available. Returns the
	// new node's id.
	NewLeaf(parent opt.Option[int], item T) int

	// NewInternal builds a single-item internal buffer with two children and
	// allocates it, reusing a recycled buffer's backing storage when one is
	// available. Returns the new node's id.
	NewInternal(parent opt.Option[int], leftChild int, item T, rightChild int) int

	// Empty returns a scratch buffer for a caller (node.Buffer.Split) that
	// immediately resets it to the kind and parent it needs, reusing a
	// recycled buffer's backing storage when one is available.
	Empty() *node.Buffer[T]

	// Release removes and returns the buffer previously allocated under id.
	// Panics if no such id is live.
	Release(id int) *node.Buffer[T]

	// Get returns the buffer allocated under id, or None if id was never
	// allocated or has been released.
	Get(id int) opt.Option[*node.Buffer[T]]

	// Root returns the id of the tree's root node, if any.
	Root() opt.Option[int]

	// SetRoot sets the id of the tree's root node.
	SetRoot(id opt.Option[int])

	// Len returns the tree's total item count.
	Len() int

	// SetLen sets the tree's total item count.
	SetLen(n int)

	// Recycle offers a released buffer's backing storage back to the arena
	// for reuse by a future allocation, once the caller has extracted
	// whatever it still needed from it (e.g. its children's ids, for
	// re-parenting). Implementations that do not pool storage may treat this
	// as a no-op.
	Recycle(buf *node.Buffer[T])
}
