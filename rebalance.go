package btree

import (
	"github.com/flier/gbtree/addr"
	"github.com/flier/gbtree/internal/debug"
	"github.com/flier/gbtree/node"
	"github.com/flier/gbtree/offset"
	"github.com/flier/gbtree/pkg/opt"
)

// rebalance restores the tree invariants starting from the node id, whose
// balance may have just been disturbed by an insertion or removal at a.
// It returns a, translated to follow wherever its item (if any) physically
// ends up after splitting, rotating, or merging nodes on the way up.
func (t *Tree[T, K]) rebalance(id int, a addr.Address) addr.Address {
	balance := node.BalanceOf(t.node(id), t.knuth)

	for {
		switch {
		case balance.Overflow:
			n := t.node(id)
			debug.Assert(!n.IsUnderflowing(t.knuth), "overflowing node is also underflowing")

			medianOffset, median, rightNode := n.Split(t.knuth, t.arena.Empty())
			rightID := t.arena.Allocate(rightNode)

			parent := n.Parent()
			if parent.IsSome() {
				parentID := parent.Unwrap()
				pn := t.node(parentID)
				off := offset.Of(pn.ChildIndex(id).Unwrap())
				pn.Insert(off, median, opt.Some(rightID))

				if a.ID == id {
					switch a.Offset.Cmp(offset.Of(medianOffset)) {
					case 0:
						a = addr.New(parentID, off)
					case 1:
						a = addr.New(rightID, offset.Of(a.Offset.Unwrap()-medianOffset-1))
					}
				} else if a.ID == parentID && a.Offset.Cmp(off) >= 0 {
					a = addr.New(parentID, a.Offset.Incr())
				}

				id = parentID
				balance = node.BalanceOf(pn, t.knuth)
			} else {
				leftID := id
				rootID := t.arena.NewInternal(opt.None[int](), leftID, median, rightID)

				t.arena.SetRoot(opt.Some(rootID))
				t.node(leftID).SetParent(opt.Some(rootID))
				t.node(rightID).SetParent(opt.Some(rootID))

				if a.ID == id {
					switch a.Offset.Cmp(offset.Of(medianOffset)) {
					case 0:
						a = addr.New(rootID, offset.Of(0))
					case 1:
						a = addr.New(rightID, offset.Of(a.Offset.Unwrap()-medianOffset-1))
					}
				}

				return a
			}

		case balance.Underflow:
			n := t.node(id)
			parent := n.Parent()
			if parent.IsSome() {
				parentID := parent.Unwrap()
				index := t.node(parentID).ChildIndex(id).Unwrap()

				if t.tryRotateLeft(parentID, index, &a) || t.tryRotateRight(parentID, index, &a) {
					return a
				}

				newBalance, newAddr := t.merge(parentID, index, a)
				balance = newBalance
				a = newAddr
				id = parentID
			} else {
				if balance.EmptyUnder {
					firstChild := n.ChildID(0)
					t.arena.SetRoot(firstChild)

					root := t.arena.Root()
					if root.IsSome() {
						rootID := root.Unwrap()
						rn := t.node(rootID)
						rn.SetParent(opt.None[int]())

						if a.ID == id {
							a = addr.New(rootID, offset.Of(rn.ItemCount()))
						}
					} else {
						a = addr.Nowhere()
					}

					t.arena.Recycle(t.arena.Release(id))
				}

				return a
			}

		default:
			return a
		}
	}
}

// tryRotateLeft attempts to fix child deficientChildIndex's underflow by
// moving its parent's separator down to it and pulling the right sibling's
// leftmost item up to replace the separator. Reports whether it succeeded.
func (t *Tree[T, K]) tryRotateLeft(id, deficientChildIndex int, a *addr.Address) bool {
	pivotOffset := offset.Of(deficientChildIndex)
	rightSiblingIndex := deficientChildIndex + 1

	n := t.node(id)
	if rightSiblingIndex >= n.ChildCount() {
		return false
	}
	rightSiblingID := n.ChildID(rightSiblingIndex).Unwrap()
	deficientChildID := n.ChildID(deficientChildIndex).Unwrap()

	popped := t.node(rightSiblingID).PopLeft(t.knuth)
	if popped.HasLeft() {
		return false
	}
	result := popped.UnwrapRight()

	old := t.node(id).Replace(pivotOffset, result.Item)
	leftOffset := t.node(deficientChildID).PushRight(old, result.ChildID)

	if result.ChildID.IsSome() {
		t.node(result.ChildID.Unwrap()).SetParent(opt.Some(deficientChildID))
	}

	switch {
	case a.ID == rightSiblingID:
		if a.Offset.Eq(offset.Of(0)) {
			*a = addr.New(id, pivotOffset)
		} else {
			*a = addr.New(a.ID, a.Offset.Decr())
		}
	case a.ID == id:
		if a.Offset.Eq(pivotOffset) {
			*a = addr.New(deficientChildID, leftOffset)
		}
	}

	return true
}

// tryRotateRight is the mirror image of tryRotateLeft, pulling the left
// sibling's rightmost item up through the parent's separator.
func (t *Tree[T, K]) tryRotateRight(id, deficientChildIndex int, a *addr.Address) bool {
	if deficientChildIndex == 0 {
		return false
	}

	leftSiblingIndex := deficientChildIndex - 1
	pivotOffset := offset.Of(leftSiblingIndex)

	n := t.node(id)
	leftSiblingID := n.ChildID(leftSiblingIndex).Unwrap()
	deficientChildID := n.ChildID(deficientChildIndex).Unwrap()

	popped := t.node(leftSiblingID).PopRight(t.knuth)
	if popped.HasLeft() {
		return false
	}
	result := popped.UnwrapRight()

	old := t.node(id).Replace(pivotOffset, result.Item)
	t.node(deficientChildID).PushLeft(old, result.ChildID)

	if result.ChildID.IsSome() {
		t.node(result.ChildID.Unwrap()).SetParent(opt.Some(deficientChildID))
	}

	switch {
	case a.ID == deficientChildID:
		*a = addr.New(a.ID, a.Offset.Incr())
	case a.ID == leftSiblingID:
		if a.Offset.Eq(result.Offset) {
			*a = addr.New(id, pivotOffset)
		}
	case a.ID == id:
		if a.Offset.Eq(pivotOffset) {
			*a = addr.New(deficientChildID, offset.Of(0))
		}
	}

	return true
}

// merge folds the child deficientChildIndex of node id into one of its
// direct siblings (its left sibling if one exists, otherwise its right),
// consuming the separator between them. Returns the parent's (node id's) new
// balance (having lost the separator, it may itself now be underflowing) and
// the translated address.
func (t *Tree[T, K]) merge(id, deficientChildIndex int, a addr.Address) (node.Balance, addr.Address) {
	var off offset.Offset
	if deficientChildIndex > 0 {
		off = offset.Of(deficientChildIndex - 1)
	} else {
		off = offset.Of(deficientChildIndex)
	}

	n := t.node(id)
	leftID := n.ChildID(off.Unwrap()).Unwrap()
	separator, rightIDOpt := n.Remove(off)
	rightID := rightIDOpt.Unwrap()
	balance := node.BalanceOf(n, t.knuth)

	rightNode := t.arena.Release(rightID)
	for _, childID := range rightNode.Children() {
		t.node(childID).SetParent(opt.Some(leftID))
	}

	leftOffset := t.node(leftID).Append(separator, rightNode)
	t.arena.Recycle(rightNode)

	switch {
	case a.ID == id:
		switch a.Offset.Cmp(off) {
		case 0:
			a = addr.New(leftID, leftOffset)
		case 1:
			a = addr.New(a.ID, a.Offset.Decr())
		}
	case a.ID == rightID:
		a = addr.New(leftID, offset.Of(a.Offset.Unwrap()+leftOffset.Unwrap()+1))
	}

	return balance, a
}
