package btree

import (
	"github.com/flier/gbtree/offset"
	"github.com/flier/gbtree/pkg/opt"
)

// NodeInfo is a read-only snapshot of one node's structure, for diagnostics
// and export (see the dot package) that need to walk node-by-node without
// reaching into the engine's internals.
type NodeInfo[T any] struct {
	Parent   opt.Option[int]
	Items    []T
	Children []int
}

// Node returns a snapshot of node id's structure.
func (t *Tree[T, K]) Node(id int) NodeInfo[T] {
	n := t.node(id)
	items := make([]T, n.ItemCount())
	for i := range items {
		items[i] = n.Item(offset.Of(i)).Unwrap()
	}
	return NodeInfo[T]{Parent: n.Parent(), Items: items, Children: n.Children()}
}
