// Package node implements the owned node buffer and the polymorphic view
// over it (leaf or internal), including the split/rotate/merge-adjacent
// mutation primitives the tree engine composes into rebalancing.
package node

import (
	"github.com/flier/gbtree/internal/debug"
	"github.com/flier/gbtree/offset"
	"github.com/flier/gbtree/pkg/either"
	"github.com/flier/gbtree/pkg/opt"
)

// Kind distinguishes a leaf buffer (items only) from an internal buffer
// (items interleaved with child node ids).
type Kind int

const (
	Leaf Kind = iota
	Internal
)

// noParent marks the absence of a parent id.
const noParent = -1

// Buffer is the owned content of one node: its items, its parent id, and,
// for internal nodes, the ids of its children.
//
// children always has len(items)+1 entries for an internal buffer and is
// nil for a leaf buffer.
type Buffer[T any] struct {
	kind     Kind
	parent   int
	items    []T
	children []int
}

// NewLeaf builds a single-item leaf buffer.
func NewLeaf[T any](parent opt.Option[int], item T) *Buffer[T] {
	b := &Buffer[T]{kind: Leaf, parent: noParent, items: []T{item}}
	b.SetParent(parent)
	return b
}

// NewInternal builds a single-item internal buffer with two children.
func NewInternal[T any](parent opt.Option[int], leftChild int, item T, rightChild int) *Buffer[T] {
	b := &Buffer[T]{
		kind:     Internal,
		parent:   noParent,
		items:    []T{item},
		children: []int{leftChild, rightChild},
	}
	b.SetParent(parent)
	return b
}

// newEmptyLeaf and newEmptyInternal back split()/append(): a right-hand
// buffer built up incrementally via PushRight.
func newEmptyLeaf[T any](parent opt.Option[int]) *Buffer[T] {
	b := &Buffer[T]{kind: Leaf, parent: noParent}
	b.SetParent(parent)
	return b
}

func newEmptyInternal[T any](parent opt.Option[int]) *Buffer[T] {
	b := &Buffer[T]{kind: Internal, parent: noParent}
	b.SetParent(parent)
	return b
}

// resetEmpty reinitializes b in place as an empty buffer of kind, keeping
// its backing item/child slices (truncated to length 0) instead of
// allocating new ones. It backs Split's pooled-buffer path: a buffer an
// arena hands back from Recycle is scratch, and this is what makes reusing
// it actually cheaper than allocating a fresh one.
func (b *Buffer[T]) resetEmpty(kind Kind, parent opt.Option[int]) {
	b.kind = kind
	b.items = b.items[:0]
	if kind == Internal {
		b.children = b.children[:0]
	} else {
		b.children = nil
	}
	b.parent = noParent
	b.SetParent(parent)
}

// Kind reports whether this is a leaf or internal buffer.
func (b *Buffer[T]) Kind() Kind { return b.kind }

// Parent returns the parent node id, if any.
func (b *Buffer[T]) Parent() opt.Option[int] {
	if b.parent == noParent {
		return opt.None[int]()
	}
	return opt.Some(b.parent)
}

// SetParent sets the parent node id.
func (b *Buffer[T]) SetParent(parent opt.Option[int]) {
	if parent.IsSome() {
		b.parent = parent.Unwrap()
	} else {
		b.parent = noParent
	}
}

// SetFirstChild sets the id of child 0. Only valid on internal buffers.
func (b *Buffer[T]) SetFirstChild(id int) {
	debug.Assert(b.kind == Internal, "SetFirstChild on a leaf buffer")
	if len(b.children) == 0 {
		b.children = []int{id}
	} else {
		b.children[0] = id
	}
}

// ItemCount returns the number of items in the buffer.
func (b *Buffer[T]) ItemCount() int { return len(b.items) }

// IsEmpty reports whether the buffer holds no items.
func (b *Buffer[T]) IsEmpty() bool { return len(b.items) == 0 }

// Item returns the item at the given offset, if any.
func (b *Buffer[T]) Item(off offset.Offset) opt.Option[T] {
	if off.IsBefore() || off.Unwrap() >= len(b.items) {
		return opt.None[T]()
	}
	return opt.Some(b.items[off.Unwrap()])
}

// ItemPtr returns a pointer to the item at the given offset, or nil.
func (b *Buffer[T]) ItemPtr(off offset.Offset) *T {
	if off.IsBefore() || off.Unwrap() >= len(b.items) {
		return nil
	}
	return &b.items[off.Unwrap()]
}

// ChildCount returns the number of children: 0 for a leaf, item_count+1 for
// an internal buffer.
func (b *Buffer[T]) ChildCount() int {
	if b.kind == Leaf {
		return 0
	}
	return len(b.items) + 1
}

// ChildID returns the id of the child at the given index, if any.
func (b *Buffer[T]) ChildID(index int) opt.Option[int] {
	if index < 0 || index >= len(b.children) {
		return opt.None[int]()
	}
	return opt.Some(b.children[index])
}

// ChildIndex returns the index of the child with the given id, if any. This
// is a linear search, matching the source's own implementation: internal
// nodes have at most M+1 children, so a linear scan is cheap relative to
// the bookkeeping it would take to keep an index.
func (b *Buffer[T]) ChildIndex(id int) opt.Option[int] {
	for i, c := range b.children {
		if c == id {
			return opt.Some(i)
		}
	}
	return opt.None[int]()
}

// ResetAsLeaf reinitializes b in place as a single-item leaf buffer, reusing
// its backing slices where capacity allows. Used by pooling arenas to
// recycle a released buffer's storage instead of allocating fresh slices.
func (b *Buffer[T]) ResetAsLeaf(parent opt.Option[int], item T) {
	b.kind = Leaf
	b.items = append(b.items[:0], item)
	b.children = b.children[:0]
	b.SetParent(parent)
}

// ResetAsInternal reinitializes b in place as a single-item internal buffer
// with two children, reusing its backing slices where capacity allows.
func (b *Buffer[T]) ResetAsInternal(parent opt.Option[int], leftChild int, item T, rightChild int) {
	b.kind = Internal
	b.items = append(b.items[:0], item)
	b.children = append(b.children[:0], leftChild, rightChild)
	b.SetParent(parent)
}

// Children iterates the ids of all children (empty for a leaf).
func (b *Buffer[T]) Children() []int {
	out := make([]int, len(b.children))
	copy(out, b.children)
	return out
}

// Separators returns the items bounding child i from the left and right, for
// validation: child i's items must all sort strictly between them. A leaf
// buffer has no children and always returns (None, None).
func (b *Buffer[T]) Separators(i int) (opt.Option[T], opt.Option[T]) {
	if b.kind == Leaf {
		return opt.None[T](), opt.None[T]()
	}

	var left, right opt.Option[T]
	if i > 0 {
		left = opt.Some(b.items[i-1])
	}
	if i < len(b.items) {
		right = opt.Some(b.items[i])
	}
	return left, right
}

// MaxCapacity returns the overflow threshold for the given knuth order.
func (b *Buffer[T]) MaxCapacity(order int) int {
	if b.kind == Leaf {
		return order + 1
	}
	return order
}

// MinCapacity returns the underflow threshold for the given knuth order.
func (b *Buffer[T]) MinCapacity(order int) int {
	if b.kind == Leaf {
		return (order-1)/2 - 1
	}
	return order/2 - 1
}

// IsOverflowing reports whether the buffer holds at least MaxCapacity items.
func (b *Buffer[T]) IsOverflowing(order int) bool { return len(b.items) >= b.MaxCapacity(order) }

// IsUnderflowing reports whether the buffer holds fewer than MinCapacity items.
func (b *Buffer[T]) IsUnderflowing(order int) bool { return len(b.items) < b.MinCapacity(order) }

// Balance classifies the buffer's fill level.
type Balance struct {
	Overflow   bool
	Underflow  bool
	EmptyUnder bool // underflowing and item_count == 0
}

// Balanced reports a node needing no structural change.
func Balanced() Balance { return Balance{} }

// BalanceOf computes the balance of the buffer for the given knuth order.
func BalanceOf[T any](b *Buffer[T], order int) Balance {
	switch {
	case b.IsOverflowing(order):
		return Balance{Overflow: true}
	case b.IsUnderflowing(order):
		return Balance{Underflow: true, EmptyUnder: b.IsEmpty()}
	default:
		return Balance{}
	}
}

// Insert places item at offset, and for internal buffers also inserts
// rightChildID immediately to the right of it. Panics if this is an
// internal buffer and no right child id is given.
func (b *Buffer[T]) Insert(off offset.Offset, item T, rightChildID opt.Option[int]) {
	i := off.Unwrap()
	b.items = append(b.items, item)
	copy(b.items[i+1:], b.items[i:])
	b.items[i] = item

	if b.kind == Internal {
		debug.Assert(rightChildID.IsSome(), "Insert on internal buffer without a right child id")
		id := rightChildID.Unwrap()
		ci := i + 1
		b.children = append(b.children, 0)
		copy(b.children[ci+1:], b.children[ci:])
		b.children[ci] = id
	}
}

// Remove removes and returns the item at offset, and, for an internal
// buffer, the id of the child that was immediately to its right.
func (b *Buffer[T]) Remove(off offset.Offset) (T, opt.Option[int]) {
	i := off.Unwrap()
	item := b.items[i]
	b.items = append(b.items[:i], b.items[i+1:]...)

	if b.kind == Leaf {
		return item, opt.None[int]()
	}

	ci := i + 1
	childID := b.children[ci]
	b.children = append(b.children[:ci], b.children[ci+1:]...)
	return item, opt.Some(childID)
}

// Replace swaps item into offset and returns the item that was there.
func (b *Buffer[T]) Replace(off offset.Offset, item T) T {
	i := off.Unwrap()
	old := b.items[i]
	b.items[i] = item
	return old
}

// PushLeft inserts item (and, for internal buffers, childID as the new
// leftmost child) at the very front of the buffer.
func (b *Buffer[T]) PushLeft(item T, childID opt.Option[int]) {
	b.items = append(b.items, item)
	copy(b.items[1:], b.items)
	b.items[0] = item

	if b.kind == Internal {
		debug.Assert(childID.IsSome(), "PushLeft on internal buffer without a child id")
		b.children = append(b.children, 0)
		copy(b.children[1:], b.children)
		b.children[0] = childID.Unwrap()
	}
}

// WouldUnderflow is returned by PopLeft/PopRight when removing an item
// would drop the buffer below its minimum capacity.
type WouldUnderflow struct{}

// PopLeft removes the first item unless that would underflow the buffer.
func (b *Buffer[T]) PopLeft(order int) either.Either[WouldUnderflow, PopResult[T]] {
	if len(b.items) <= b.MinCapacity(order) {
		return either.Left[WouldUnderflow, PopResult[T]](WouldUnderflow{})
	}
	item := b.items[0]
	b.items = append(b.items[:0], b.items[1:]...)

	childID := opt.None[int]()
	if b.kind == Internal {
		childID = opt.Some(b.children[0])
		b.children = append(b.children[:0], b.children[1:]...)
	}
	return either.Right[WouldUnderflow](PopResult[T]{Item: item, ChildID: childID})
}

// PushRight appends item (and, for internal buffers, childID as the new
// rightmost child) to the end of the buffer. Returns the offset item was
// placed at.
func (b *Buffer[T]) PushRight(item T, childID opt.Option[int]) offset.Offset {
	off := offset.Of(len(b.items))
	b.Insert(off, item, childID)
	return off
}

// PopResult is the value carried by a successful PopLeft/PopRight: the
// removed item, its associated child id (internal buffers only: the leftmost
// child for PopLeft, the rightmost child for PopRight), and,
// for PopRight, the offset it was removed from.
type PopResult[T any] struct {
	Offset  offset.Offset
	Item    T
	ChildID opt.Option[int]
}

// PopRight removes the last item unless that would underflow the buffer.
func (b *Buffer[T]) PopRight(order int) either.Either[WouldUnderflow, PopResult[T]] {
	if len(b.items) <= b.MinCapacity(order) {
		return either.Left[WouldUnderflow, PopResult[T]](WouldUnderflow{})
	}
	off := offset.Of(len(b.items) - 1)
	item, childID := b.Remove(off)
	return either.Right[WouldUnderflow](PopResult[T]{Offset: off, Item: item, ChildID: childID})
}

// RemoveRightmostLeaf removes and returns the rightmost item of this buffer
// if it is a leaf, or the id of its rightmost child to recurse into if it
// is internal.
func (b *Buffer[T]) RemoveRightmostLeaf() either.Either[int, T] {
	if b.kind == Internal {
		return either.Left[int, T](b.children[len(b.children)-1])
	}
	item, _ := b.Remove(offset.Of(len(b.items) - 1))
	return either.Right[int](item)
}

// LeafRemove removes the item at offset from a leaf buffer, or, for an
// internal buffer, reports the id of the child to recurse into. Returns
// None if offset does not name an existing item.
func (b *Buffer[T]) LeafRemove(off offset.Offset) opt.Option[either.Either[int, T]] {
	if !off.Lt(b.ItemCount()) {
		return opt.None[either.Either[int, T]]()
	}
	if b.kind == Internal {
		childID := b.children[off.Unwrap()]
		return opt.Some(either.Left[int, T](childID))
	}
	item, _ := b.Remove(off)
	return opt.Some(either.Right[int](item))
}

// Split divides an overflowing buffer in two: items [0,m) and children
// [0,m] stay in the receiver, item m is promoted to the caller as the
// median, and items (m, end] (with their children) move into a new right
// buffer, whose first child is the right child of the promoted median.
//
// reuse, if non-nil, is scratch storage (as returned by Arena.Empty) that
// is reset and used as the right buffer instead of allocating a new one;
// callers without a pooled buffer to offer may pass nil.
func (b *Buffer[T]) Split(order int, reuse *Buffer[T]) (int, T, *Buffer[T]) {
	debug.Assert(b.IsOverflowing(order), "Split on a non-overflowing buffer")

	medianI := (b.ItemCount() - 1) / 2
	rightLen := b.ItemCount() - medianI - 1

	type branch struct {
		item     T
		childID  opt.Option[int]
		hasChild bool
	}
	rightBranches := make([]branch, 0, rightLen)
	for i := 0; i < rightLen; i++ {
		off := offset.Of(medianI + rightLen - i)
		item, childID := b.Remove(off)
		rightBranches = append(rightBranches, branch{item: item, childID: childID, hasChild: childID.IsSome()})
	}

	var right *Buffer[T]
	if reuse != nil {
		right = reuse
		right.resetEmpty(b.kind, b.Parent())
	} else if b.kind == Internal {
		right = newEmptyInternal[T](b.Parent())
	} else {
		right = newEmptyLeaf[T](b.Parent())
	}

	medianItem, medianRightChild := b.Remove(offset.Of(medianI))
	if b.kind == Internal {
		right.SetFirstChild(medianRightChild.Unwrap())
	}

	for i := len(rightBranches) - 1; i >= 0; i-- {
		br := rightBranches[i]
		if br.hasChild {
			right.PushRight(br.item, br.childID)
		} else {
			right.PushRight(br.item, opt.None[int]())
		}
	}

	debug.Assert(!b.IsUnderflowing(order), "Split left a node underflowing")

	return b.ItemCount(), medianItem, right
}

// Append moves separator and all the contents of other onto the end of b,
// which must be of the same kind as other. Returns the offset separator
// ends up at.
func (b *Buffer[T]) Append(separator T, other *Buffer[T]) offset.Offset {
	debug.Assert(b.kind == other.kind, "Append between incompatible buffer kinds")

	var rightChild opt.Option[int]
	if b.kind == Internal {
		rightChild = opt.Some(other.children[0])
	}
	sepOffset := b.PushRight(separator, rightChild)

	for i := 0; i < other.ItemCount(); i++ {
		item := other.items[i]
		var childID opt.Option[int]
		if b.kind == Internal {
			childID = opt.Some(other.children[i+1])
		}
		b.PushRight(item, childID)
	}

	return sepOffset
}
