package btree

import (
	"github.com/flier/gbtree/addr"
	"github.com/flier/gbtree/internal/debug"
	"github.com/flier/gbtree/pkg/opt"
)

// RemoveAt removes and returns the item at address a, which must name an
// existing item.
func (t *Tree[T, K]) RemoveAt(a addr.Address) T {
	item, _ := t.removeAtTracked(a)
	return item
}

// removeAtTracked is RemoveAt's full form, also returning the address a was
// translated to by the removal (where the item that physically ended up at
// a's old position now lives). Cursors that keep iterating across a removal
// (DrainFilter, RangeMut-style traversal) need this to stay valid.
func (t *Tree[T, K]) removeAtTracked(a addr.Address) (T, addr.Address) {
	t.checkMutator()
	t.arena.SetLen(t.Len() - 1)

	result := t.node(a.ID).LeafRemove(a.Offset)
	debug.Assert(result.IsSome(), "removeAtTracked(%s): no item at that address", a)

	outcome := result.Unwrap()
	if outcome.HasRight() {
		// removed directly from a leaf.
		newAddr := t.rebalance(a.ID, a)
		return outcome.UnwrapRight(), newAddr
	}

	// the item lives in an internal node: swap its in-order predecessor (the
	// rightmost item of its left subtree) up, then rebalance starting from
	// wherever that predecessor's leaf was.
	leftChildID := outcome.UnwrapLeft()
	pendingAddr := t.NextItemOrBackAddress(a)
	debug.Assert(pendingAddr.IsSome(), "internal-node removal has no next-item-or-back address")

	separator, leafID := t.removeRightmostLeafOf(leftChildID)
	item := t.node(a.ID).Replace(a.Offset, separator)
	newAddr := t.rebalance(leafID, pendingAddr.Unwrap())

	return item, newAddr
}

// removeRightmostLeafOf recurses down id's rightmost spine, removing and
// returning the rightmost item found along with the id of the leaf it came
// from.
func (t *Tree[T, K]) removeRightmostLeafOf(id int) (T, int) {
	for {
		result := t.node(id).RemoveRightmostLeaf()
		if result.HasRight() {
			return result.UnwrapRight(), id
		}
		id = result.UnwrapLeft()
	}
}

// Remove removes and returns the item matching key, if the tree holds one.
func (t *Tree[T, K]) Remove(key K) opt.Option[T] {
	found := t.AddressOf(key)
	if !found.HasRight() {
		return opt.None[T]()
	}
	return opt.Some(t.RemoveAt(found.UnwrapRight()))
}

// Take is an alias for Remove, matching the source's naming for this
// operation alongside its map-flavored siblings.
func (t *Tree[T, K]) Take(key K) opt.Option[T] { return t.Remove(key) }

// PopFirst removes and returns the leftmost item in the tree.
func (t *Tree[T, K]) PopFirst() opt.Option[T] {
	a := t.FirstItemAddress()
	if a.IsNone() {
		return opt.None[T]()
	}
	return opt.Some(t.RemoveAt(a.Unwrap()))
}

// PopLast removes and returns the rightmost item in the tree.
func (t *Tree[T, K]) PopLast() opt.Option[T] {
	a := t.LastItemAddress()
	if a.IsNone() {
		return opt.None[T]()
	}
	return opt.Some(t.RemoveAt(a.Unwrap()))
}
