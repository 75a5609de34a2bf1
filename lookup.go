package btree

import (
	"github.com/flier/gbtree/addr"
	"github.com/flier/gbtree/node"
	"github.com/flier/gbtree/pkg/either"
	"github.com/flier/gbtree/pkg/opt"
)

// AddressOf searches the tree for the item matching key, descending from
// the root through internal nodes. It returns Right(address) of a matching
// item on a hit, or Left(address) of the leaf position a new item should be
// inserted at on a miss.
func (t *Tree[T, K]) AddressOf(key K) either.Either[addr.Address, addr.Address] {
	root := t.Root()
	if root.IsNone() {
		return either.Left[addr.Address, addr.Address](addr.Nowhere())
	}

	id := root.Unwrap()
	cmp := func(item T) int { return t.order.CompareKey(item, key) }

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

// Get returns the item matching key, if the tree holds one.
func (t *Tree[T, K]) Get(key K) opt.Option[T] {
	found := t.AddressOf(key)
	if !found.HasRight() {
		return opt.None[T]()
	}
	return t.Item(found.UnwrapRight())
}

// Contains reports whether the tree holds an item matching key.
func (t *Tree[T, K]) Contains(key K) bool { return t.Get(key).IsSome() }
