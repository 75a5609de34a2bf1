// Package slab implements the module's default Arena[T]: a growable slot
// table of node buffers plus a free-id list, so that released ids are
// reused before the table grows. The knuth order defaults to 8, matching
// the order the original engine's own slab-backed storage used.
package slab

import (
	"github.com/flier/gbtree/internal/xsync"
	"github.com/flier/gbtree/node"
	"github.com/flier/gbtree/pkg/opt"
)

// DefaultOrder is the knuth order used when a tree is constructed without
// an explicit order.
const DefaultOrder = 8

// Slab is a slot allocator over a growable slice of optional node buffers.
// Released slots are pushed onto a free list and handed back out by
// Allocate before the backing slice grows, and released buffers are
// recycled through a pool to avoid reallocating their backing item/child
// slices on insert/remove-heavy workloads.
type Slab[T any] struct {
	slots []*node.Buffer[T] // nil entry means the slot is free
	free  []int

	root opt.Option[int]
	len  int

	pool xsync.Pool[node.Buffer[T]]
}

// New returns an empty Slab.
func New[T any]() *Slab[T] {
	s := &Slab[T]{}
	s.pool.New = func() *node.Buffer[T] { return &node.Buffer[T]{} }
	return s
}

// AllocateLeaf builds a single-item leaf buffer, reusing a recycled buffer
// from the pool when one is available, and allocates it. Returns the new
// node's id.
func (s *Slab[T]) AllocateLeaf(parent opt.Option[int], item T) int {
	buf := s.pool.Get()
	buf.ResetAsLeaf(parent, item)
	return s.Allocate(buf)
}

// AllocateInternal builds a single-item internal buffer with two children,
// reusing a recycled buffer from the pool when one is available, and
// allocates it. Returns the new node's id.
func (s *Slab[T]) AllocateInternal(parent opt.Option[int], leftChild int, item T, rightChild int) int {
	buf := s.pool.Get()
	buf.ResetAsInternal(parent, leftChild, item, rightChild)
	return s.Allocate(buf)
}

// NewLeaf is Arena.NewLeaf, implemented on top of AllocateLeaf.
func (s *Slab[T]) NewLeaf(parent opt.Option[int], item T) int {
	return s.AllocateLeaf(parent, item)
}

// NewInternal is Arena.NewInternal, implemented on top of AllocateInternal.
func (s *Slab[T]) NewInternal(parent opt.Option[int], leftChild int, item T, rightChild int) int {
	return s.AllocateInternal(parent, leftChild, item, rightChild)
}

// Empty returns a pool-sourced scratch buffer with unspecified contents,
// for Buffer.Split to reset to the kind and parent it needs for its new
// right-hand sibling instead of allocating one.
func (s *Slab[T]) Empty() *node.Buffer[T] {
	return s.pool.Get()
}

// Allocate takes ownership of buf and returns a stable id for it.
func (s *Slab[T]) Allocate(buf *node.Buffer[T]) int {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[id] = buf
		return id
	}

	id := len(s.slots)
	s.slots = append(s.slots, buf)
	return id
}

// Release removes and returns the buffer allocated under id.
func (s *Slab[T]) Release(id int) *node.Buffer[T] {
	buf := s.slots[id]
	if buf == nil {
		panic("slab: release of an unallocated or already-released id")
	}
	s.slots[id] = nil
	s.free = append(s.free, id)
	return buf
}

// Get returns the buffer allocated under id, or None.
func (s *Slab[T]) Get(id int) opt.Option[*node.Buffer[T]] {
	if id < 0 || id >= len(s.slots) || s.slots[id] == nil {
		return opt.None[*node.Buffer[T]]()
	}
	return opt.Some(s.slots[id])
}

// Root returns the id of the tree's root node, if any.
func (s *Slab[T]) Root() opt.Option[int] { return s.root }

// SetRoot sets the id of the tree's root node.
func (s *Slab[T]) SetRoot(id opt.Option[int]) { s.root = id }

// Len returns the tree's total item count.
func (s *Slab[T]) Len() int { return s.len }

// SetLen sets the tree's total item count.
func (s *Slab[T]) SetLen(n int) { s.len = n }

// Recycle returns a released buffer's backing storage to the pool instead
// of letting it be garbage collected, for reuse by a future NewLeaf/
// NewInternal-adjacent allocation. Callers that release a node buffer and
// have no further use for its contents (clear, merge, forget_all) should
// call this after extracting whatever they still need from it.
func (s *Slab[T]) Recycle(buf *node.Buffer[T]) {
	s.pool.Put(buf)
}
