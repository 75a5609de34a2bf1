package btree

import (
	"github.com/flier/gbtree/addr"
	"github.com/flier/gbtree/internal/debug"
	"github.com/flier/gbtree/node"
	"github.com/flier/gbtree/offset"
	"github.com/flier/gbtree/pkg/either"
	"github.com/flier/gbtree/pkg/opt"
)

// addressOfItem is AddressOf's counterpart for locating an item by its own
// sort position rather than by a separate probe key, using Order.Compare
// instead of Order.CompareKey. Insert uses this so it can place an item
// without requiring a way to project a K out of a T.
func (t *Tree[T, K]) addressOfItem(item T) either.Either[addr.Address, addr.Address] {
	root := t.Root()
	if root.IsNone() {
		return either.Left[addr.Address, addr.Address](addr.Nowhere())
	}

	id := root.Unwrap()
	cmp := func(other T) int { return t.order.Compare(other, item) }

	for {
		n := t.node(id)
		if n.Kind() == node.Internal {
			ref := n.ChildOffsetOf(cmp)
			if ref.HasRight() {
				return either.Right[addr.Address](addr.New(id, ref.UnwrapRight()))
			}
			id = ref.UnwrapLeft().ID
			continue
		}

		hit := n.OffsetOf(cmp)
		if hit.HasRight() {
			return either.Right[addr.Address](addr.New(id, hit.UnwrapRight()))
		}
		return either.Left[addr.Address, addr.Address](addr.New(id, hit.UnwrapLeft()))
	}
}

// Insert places item in the tree, replacing and returning any existing item
// that compares equal to it.
func (t *Tree[T, K]) Insert(item T) opt.Option[T] {
	t.checkMutator()

	found := t.addressOfItem(item)
	if found.HasRight() {
		old := t.ReplaceAt(found.UnwrapRight(), item)
		return opt.Some(old)
	}

	t.InsertExactlyAt(found.UnwrapLeft(), item, opt.None[int]())
	return opt.None[T]()
}

// InsertAt inserts item into the leaf that a's spine leads to, at the
// position a names (which need not itself be a leaf address: it is first
// resolved to one via LeafAddress). Returns the address the item settled
// at once the tree has rebalanced. Callers are responsible for choosing a
// that keeps the tree sorted.
func (t *Tree[T, K]) InsertAt(a addr.Address, item T) addr.Address {
	t.checkMutator()
	return t.InsertExactlyAt(t.LeafAddress(a), item, opt.None[int]())
}

// InsertExactlyAt inserts item at the exact address a (which must already
// name a leaf position, or the nowhere address for the first item of an
// empty tree), optionally pairing it with rightChildID for internal-buffer
// insertions performed internally by rebalance. Returns the address the
// item settled at after rebalancing.
func (t *Tree[T, K]) InsertExactlyAt(a addr.Address, item T, rightChildID opt.Option[int]) addr.Address {
	switch {
	case a.IsNowhere():
		debug.Assert(t.IsEmpty(), "InsertExactlyAt(nowhere) on a non-empty tree")

		id := t.arena.NewLeaf(opt.None[int](), item)
		t.arena.SetRoot(opt.Some(id))
		t.arena.SetLen(t.Len() + 1)
		return addr.New(id, offset.Of(0))

	case t.IsEmpty():
		panic("gbtree: invalid item address")

	default:
		t.node(a.ID).Insert(a.Offset, item, rightChildID)
		newAddr := t.rebalance(a.ID, a)
		t.arena.SetLen(t.Len() + 1)
		return newAddr
	}
}

// ReplaceAt swaps item into the existing item address a and returns the
// item that was there.
func (t *Tree[T, K]) ReplaceAt(a addr.Address, item T) T {
	t.checkMutator()
	return t.node(a.ID).Replace(a.Offset, item)
}
