package btree

import (
	"github.com/flier/gbtree/addr"
	"github.com/flier/gbtree/node"
	"github.com/flier/gbtree/offset"
	"github.com/flier/gbtree/pkg/opt"
)

// UpdateEntry is the argument passed to an Update callback: the key it was
// called with, and, if the tree already holds a matching item, that item.
type UpdateEntry[T, K any] struct {
	key  K
	item opt.Option[T]
}

// Key returns the key Update was called with.
func (e UpdateEntry[T, K]) Key() K { return e.key }

// Item returns the existing item matching Key, if the tree has one.
func (e UpdateEntry[T, K]) Item() opt.Option[T] { return e.item }

// IsOccupied reports whether the tree already held a matching item.
func (e UpdateEntry[T, K]) IsOccupied() bool { return e.item.IsSome() }

// Update is a general-purpose insert/replace/remove primitive. It locates
// the item matching key (if any) and calls action once with an
// [UpdateEntry] describing what it found. action returns the item that
// should end up bound to key (None removes any existing binding and
// inserts nothing) alongside an arbitrary result value, which Update
// returns to its caller.
//
// Update is a free function rather than a *Tree method because it needs an
// additional type parameter for the result type R, and Go does not allow a
// method to introduce type parameters beyond its receiver's.
func Update[T, K, R any](t *Tree[T, K], key K, action func(UpdateEntry[T, K]) (opt.Option[T], R)) R {
	t.checkMutator()

	root := t.Root()
	if root.IsNone() {
		newItem, result := action(UpdateEntry[T, K]{key: key, item: opt.None[T]()})
		if newItem.IsSome() {
			t.InsertExactlyAt(addr.Nowhere(), newItem.Unwrap(), opt.None[int]())
		}
		return result
	}

	return updateIn(t, root.Unwrap(), key, action)
}

func updateIn[T, K, R any](t *Tree[T, K], id int, key K, action func(UpdateEntry[T, K]) (opt.Option[T], R)) R {
	cmp := func(item T) int { return t.order.CompareKey(item, key) }

	for {
		n := t.node(id)
		if n.Kind() == node.Internal {
			ref := n.ChildOffsetOf(cmp)
			if ref.HasRight() {
				return updateOccupied(t, id, ref.UnwrapRight(), key, action)
			}
			id = ref.UnwrapLeft().ID
			continue
		}

		hit := n.OffsetOf(cmp)
		if hit.HasRight() {
			return updateOccupied(t, id, hit.UnwrapRight(), key, action)
		}

		newItem, result := action(UpdateEntry[T, K]{key: key, item: opt.None[T]()})
		if newItem.IsSome() {
			t.InsertExactlyAt(addr.New(id, hit.UnwrapLeft()), newItem.Unwrap(), opt.None[int]())
		}
		return result
	}
}

func updateOccupied[T, K, R any](
	t *Tree[T, K], id int, off offset.Offset, key K, action func(UpdateEntry[T, K]) (opt.Option[T], R),
) R {
	existing := t.node(id).Item(off).Unwrap()
	newItem, result := action(UpdateEntry[T, K]{key: key, item: opt.Some(existing)})

	if newItem.IsSome() {
		t.node(id).Replace(off, newItem.Unwrap())
	} else {
		t.RemoveAt(addr.New(id, off))
	}

	return result
}
