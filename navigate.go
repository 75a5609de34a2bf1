package btree

import (
	"github.com/flier/gbtree/addr"
	"github.com/flier/gbtree/offset"
	"github.com/flier/gbtree/pkg/opt"
)

// FirstItemAddress returns the address of the leftmost item in the tree.
func (t *Tree[T, K]) FirstItemAddress() opt.Option[addr.Address] {
	root := t.Root()
	if root.IsNone() {
		return opt.None[addr.Address]()
	}

	id := root.Unwrap()
	for {
		n := t.node(id)
		if n.ChildCount() == 0 {
			if n.IsEmpty() {
				return opt.None[addr.Address]()
			}
			return opt.Some(addr.New(id, offset.Of(0)))
		}
		id = n.ChildID(0).Unwrap()
	}
}

// LastItemAddress returns the address of the rightmost item in the tree.
func (t *Tree[T, K]) LastItemAddress() opt.Option[addr.Address] {
	root := t.Root()
	if root.IsNone() {
		return opt.None[addr.Address]()
	}

	id := root.Unwrap()
	for {
		n := t.node(id)
		if n.ChildCount() == 0 {
			if n.IsEmpty() {
				return opt.None[addr.Address]()
			}
			return opt.Some(addr.New(id, offset.Of(n.ItemCount()-1)))
		}
		id = n.ChildID(n.ChildCount() - 1).Unwrap()
	}
}

// FirstBackAddress returns the leftmost back address, reached by walking
// down the leftmost spine from the root (offset 0 of the leftmost leaf).
// See DESIGN.md for why this resolves an ambiguity in the source.
func (t *Tree[T, K]) FirstBackAddress() addr.Address {
	root := t.Root()
	if root.IsNone() {
		return addr.Nowhere()
	}

	id := root.Unwrap()
	for {
		n := t.node(id)
		if n.ChildCount() == 0 {
			return addr.New(id, offset.Of(0))
		}
		id = n.ChildID(0).Unwrap()
	}
}

// LastValidAddress returns the rightmost back address in the tree (the
// offset immediately past the last item of the rightmost leaf).
func (t *Tree[T, K]) LastValidAddress() addr.Address {
	root := t.Root()
	if root.IsNone() {
		return addr.Nowhere()
	}

	id := root.Unwrap()
	for {
		n := t.node(id)
		if n.ChildCount() == 0 {
			return addr.New(id, offset.Of(n.ItemCount()))
		}
		id = n.ChildID(n.ChildCount() - 1).Unwrap()
	}
}

// Normalize climbs from a to its ancestors until it sits on a real item, or
// returns None once it would climb past the root.
func (t *Tree[T, K]) Normalize(a addr.Address) opt.Option[addr.Address] {
	if a.IsNowhere() {
		return opt.None[addr.Address]()
	}

	id, off := a.ID, a.Offset
	for {
		n := t.node(id)
		if off.Lt(n.ItemCount()) {
			return opt.Some(addr.New(id, off))
		}

		parent := n.Parent()
		if parent.IsNone() {
			return opt.None[addr.Address]()
		}

		parentID := parent.Unwrap()
		pn := t.node(parentID)
		childIndex := pn.ChildIndex(id).Unwrap()
		id, off = parentID, offset.Of(childIndex)
	}
}

// LeafAddress descends from a (an internal-node back address) via child
// ids until it reaches a leaf, returning the back address at which an item
// belonging there should physically be inserted.
func (t *Tree[T, K]) LeafAddress(a addr.Address) addr.Address {
	id, off := a.ID, a.Offset
	for {
		n := t.node(id)
		if n.ChildCount() == 0 {
			return addr.New(id, off)
		}
		childID := n.ChildID(off.Unwrap()).Unwrap()
		id = childID
		off = offset.Of(t.node(childID).ItemCount())
	}
}

// PreviousItemAddress returns the in-order predecessor item address of a.
func (t *Tree[T, K]) PreviousItemAddress(a addr.Address) opt.Option[addr.Address] {
	id, off := a.ID, a.Offset
	n := t.node(id)

	if n.ChildCount() > 0 {
		// descend into the left child's rightmost spine.
		childID := n.ChildID(off.Unwrap()).Unwrap()
		for {
			cn := t.node(childID)
			if cn.ChildCount() == 0 {
				return opt.Some(addr.New(childID, offset.Of(cn.ItemCount()-1)))
			}
			childID = cn.ChildID(cn.ChildCount() - 1).Unwrap()
		}
	}

	if !off.IsBefore() && off.Unwrap() > 0 {
		return opt.Some(addr.New(id, off.Decr()))
	}

	// climb until we are the right child of some ancestor.
	cur := id
	for {
		parent := t.node(cur).Parent()
		if parent.IsNone() {
			return opt.None[addr.Address]()
		}
		parentID := parent.Unwrap()
		pn := t.node(parentID)
		idx := pn.ChildIndex(cur).Unwrap()
		if idx > 0 {
			return opt.Some(addr.New(parentID, offset.Of(idx-1)))
		}
		cur = parentID
	}
}

// NextItemAddress returns the in-order successor item address of a.
func (t *Tree[T, K]) NextItemAddress(a addr.Address) opt.Option[addr.Address] {
	id, off := a.ID, a.Offset
	n := t.node(id)

	if n.ChildCount() > 0 {
		childID := n.ChildID(off.Unwrap() + 1).Unwrap()
		for {
			cn := t.node(childID)
			if cn.ChildCount() == 0 {
				return opt.Some(addr.New(childID, offset.Of(0)))
			}
			childID = cn.ChildID(0).Unwrap()
		}
	}

	if off.Unwrap()+1 < n.ItemCount() {
		return opt.Some(addr.New(id, off.Incr()))
	}

	cur := id
	for {
		parent := t.node(cur).Parent()
		if parent.IsNone() {
			return opt.None[addr.Address]()
		}
		parentID := parent.Unwrap()
		pn := t.node(parentID)
		idx := pn.ChildIndex(cur).Unwrap()
		if idx < pn.ItemCount() {
			return opt.Some(addr.New(parentID, offset.Of(idx)))
		}
		cur = parentID
	}
}

// PreviousFrontAddress steps one back address to the left, used by cursors
// whose state is a back address rather than an item address.
func (t *Tree[T, K]) PreviousFrontAddress(a addr.Address) opt.Option[addr.Address] {
	if a.IsNowhere() {
		return opt.None[addr.Address]()
	}

	id, off := a.ID, a.Offset
	for {
		n := t.node(id)
		if !off.IsBefore() {
			index := off.Unwrap()
			if index > n.ItemCount() {
				index = n.ItemCount()
			}

			childOpt := n.ChildID(index)
			if childOpt.IsSome() {
				childID := childOpt.Unwrap()
				id = childID
				off = offset.Of(t.node(childID).ItemCount())
				continue
			}
			return opt.Some(addr.New(id, off.Decr()))
		}

		parent := n.Parent()
		if parent.IsNone() {
			return opt.None[addr.Address]()
		}
		parentID := parent.Unwrap()
		pn := t.node(parentID)
		idx := pn.ChildIndex(id).Unwrap()
		return opt.Some(addr.New(parentID, offset.Of(idx).Decr()))
	}
}

// NextBackAddress steps one back address to the right, staying at back-
// address granularity (unlike NextItemAddress, which only ever lands on
// item addresses): offset == item_count is itself a valid result, so unlike
// NextItemAddress's climb this only ever climbs one level.
func (t *Tree[T, K]) NextBackAddress(a addr.Address) opt.Option[addr.Address] {
	if a.IsNowhere() {
		return opt.None[addr.Address]()
	}

	id, off := a.ID, a.Offset
	for {
		n := t.node(id)
		var index int
		if off.IsBefore() {
			index = 0
		} else {
			index = off.Unwrap() + 1
		}

		if index <= n.ItemCount() {
			childOpt := n.ChildID(index)
			if childOpt.IsSome() {
				id = childOpt.Unwrap()
				off = offset.Before()
				continue
			}
			return opt.Some(addr.New(id, offset.Of(index)))
		}

		parent := n.Parent()
		if parent.IsNone() {
			return opt.None[addr.Address]()
		}
		parentID := parent.Unwrap()
		pn := t.node(parentID)
		idx := pn.ChildIndex(id).Unwrap()
		return opt.Some(addr.New(parentID, offset.Of(idx)))
	}
}

// NextItemOrBackAddress returns the next item address after a, the same way
// NextItemAddress does, except that when a names the very last item in the
// tree (so there is no next item to climb to), it returns the back address
// immediately past a instead of None. Used by remove_at to keep a cursor
// valid across removing an item from an internal node.
func (t *Tree[T, K]) NextItemOrBackAddress(a addr.Address) opt.Option[addr.Address] {
	if a.IsNowhere() {
		return opt.None[addr.Address]()
	}

	id, off := a.ID, a.Offset
	itemCount := t.node(id).ItemCount()
	switch off.Cmp(offset.Of(itemCount)) {
	case -1:
		off = off.Incr()
	case 1:
		return opt.None[addr.Address]()
	}
	shifted := addr.New(id, off)

	for {
		n := t.node(id)
		childOpt := n.ChildID(off.Unwrap())
		if childOpt.IsSome() {
			id = childOpt.Unwrap()
			off = offset.Of(0)
			continue
		}

		for {
			n2 := t.node(id)
			if off.Lt(n2.ItemCount()) {
				return opt.Some(addr.New(id, off))
			}
			parent := n2.Parent()
			if parent.IsNone() {
				return opt.Some(shifted)
			}
			parentID := parent.Unwrap()
			pn := t.node(parentID)
			off = offset.Of(pn.ChildIndex(id).Unwrap())
			id = parentID
		}
	}
}
