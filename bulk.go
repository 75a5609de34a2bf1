package btree

import "github.com/flier/gbtree/pkg/opt"

// Clear removes every item from the tree, recycling released node buffers
// back into the arena's pool where it supports that.
func (t *Tree[T, K]) Clear() {
	t.checkMutator()

	root := t.Root()
	if root.IsSome() {
		t.clearNode(root.Unwrap())
	}
	t.arena.SetRoot(opt.None[int]())
	t.arena.SetLen(0)
}

func (t *Tree[T, K]) clearNode(id int) {
	n := t.arena.Release(id)
	for _, childID := range n.Children() {
		t.clearNode(childID)
	}
	t.arena.Recycle(n)
}

// ForgetAll removes every item from the tree without visiting items
// individually first. In the source this trades an extra pass that lets
// each item run its own cleanup for a cheaper bulk release; since Go items
// carry no destructor to skip, ForgetAll and Clear are equivalent here, but
// both are kept as the source's complete bulk-removal surface.
func (t *Tree[T, K]) ForgetAll() { t.Clear() }

// Append moves every item from other into t, leaving other empty. If t is
// empty, the two trees' backing storage is swapped directly (other becomes
// what t was); otherwise every item of other is inserted into t one by one.
func (t *Tree[T, K]) Append(other *Tree[T, K]) {
	t.checkMutator()

	if other.IsEmpty() {
		return
	}

	if t.IsEmpty() {
		t.arena, other.arena = other.arena, t.arena
		return
	}

	drained := other.drainAll()
	for _, item := range drained {
		t.Insert(item)
	}
}

// drainAll empties t, returning every item it held in ascending order.
func (t *Tree[T, K]) drainAll() []T {
	items := make([]T, 0, t.Len())
	for {
		item := t.PopFirst()
		if item.IsNone() {
			break
		}
		items = append(items, item.Unwrap())
	}
	return items
}
