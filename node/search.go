package node

import (
	"github.com/flier/gbtree/internal/debug"
	"github.com/flier/gbtree/offset"
	"github.com/flier/gbtree/pkg/either"
)

// KeyCompare compares a stored item against an external probe: negative if
// item sorts before the probe, zero if equal, positive if item sorts after.
type KeyCompare[T any] func(item T) int

// FindMin returns the offset of the rightmost item with cmp(item) <= 0 (the
// nearest item with a key less than or equal to the probe), and whether
// that item compares exactly equal. The sentinel "before-first" offset is
// returned, with eq=false, when every item sorts after the probe (including
// the empty-buffer case).
//
// This replaces an ambiguous routine found in more than one shape across
// the source's historical revisions (one of which special-cased its very
// first comparison in a way that short-circuited the search); this
// implementation is the textbook "rightmost element not greater than key"
// binary search and is correct for any sorted, possibly-empty slice.
func FindMin[T any](items []T, cmp KeyCompare[T]) (offset.Offset, bool) {
	n := len(items)
	if n == 0 || cmp(items[0]) > 0 {
		return offset.Before(), false
	}

	lo, hi := 0, n-1
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if cmp(items[mid]) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return offset.Of(lo), cmp(items[lo]) == 0
}

// OffsetOf searches a leaf buffer for the item matching cmp. On a hit it
// returns the item's offset; on a miss it returns the offset a new item
// should be inserted at to keep the buffer sorted.
func (b *Buffer[T]) OffsetOf(cmp KeyCompare[T]) either.Either[offset.Offset, offset.Offset] {
	debug.Assert(b.kind == Leaf, "OffsetOf(leaf) called on an internal buffer")

	i, eq := FindMin(b.items, cmp)
	if eq {
		return either.Right[offset.Offset](i)
	}
	return either.Left[offset.Offset, offset.Offset](i.Incr())
}

// ChildOffsetOf searches an internal buffer for the item matching cmp. On a
// hit it returns the item's offset; on a miss it returns the index and id
// of the child to descend into.
func (b *Buffer[T]) ChildOffsetOf(cmp KeyCompare[T]) either.Either[ChildRef, offset.Offset] {
	debug.Assert(b.kind == Internal, "ChildOffsetOf called on a leaf buffer")

	i, eq := FindMin(b.items, cmp)
	if !eq {
		var childIndex int
		if i.IsBefore() {
			childIndex = 0
		} else {
			childIndex = i.Unwrap() + 1
		}
		return either.Left[ChildRef, offset.Offset](ChildRef{Index: childIndex, ID: b.children[childIndex]})
	}
	return either.Right[ChildRef](i)
}

// ChildRef names the child to descend into on a search miss inside an
// internal buffer.
type ChildRef struct {
	Index int
	ID    int
}
