// Package btree implements a generic, in-memory B-tree: node layout, tree
// invariants, search/insert/remove/rebalance, an address model for naming
// positions inside the tree, and traversal cursors over it.
//
// A Tree is parameterized over the item type T it stores and the probe type
// K used to look items up (K may equal T when items are their own key). The
// tree consumes an [arena.Arena] to allocate, fetch, and release node
// buffers by integer id; [slab.New] provides the module's default arena.
package btree

import (
	"github.com/flier/gbtree/addr"
	"github.com/flier/gbtree/arena"
	"github.com/flier/gbtree/internal/debug"
	"github.com/flier/gbtree/node"
	"github.com/flier/gbtree/pkg/opt"
	"github.com/flier/gbtree/slab"
)

// Order supplies the comparison capabilities a tree instantiation needs:
// a total order between two stored items, and a partial order between a
// stored item and an external probe of (possibly) another type. Lookup,
// insertion, and validation are all expressed in terms of these two.
type Order[T, K any] interface {
	// Compare returns <0, 0, >0 as a sorts before, equal to, or after b.
	Compare(a, b T) int
	// CompareKey returns <0, 0, >0 as item sorts before, equal to, or after key.
	CompareKey(item T, key K) int
}

// Tree is a generic in-memory B-tree over items of type T, looked up by
// probes of type K.
type Tree[T, K any] struct {
	arena arena.Arena[T]
	order Order[T, K]
	knuth int

	mutator *debug.Mutator
}

// Opt configures a Tree at construction.
type Opt[T, K any] func(*Tree[T, K])

// WithArena overrides the arena backend. The default is slab.New[T]().
func WithArena[T, K any](a arena.Arena[T]) Opt[T, K] {
	return func(t *Tree[T, K]) { t.arena = a }
}

// WithKnuthOrder overrides the knuth order M (default 8). M must be at
// least 6; implementers intending to exercise the invariants documented on
// Tree should keep M >= 6 so internal nodes can hold at least two items.
func WithKnuthOrder[T, K any](m int) Opt[T, K] {
	return func(t *Tree[T, K]) { t.knuth = m }
}

// New returns an empty tree using the given comparator.
func New[T, K any](order Order[T, K], opts ...Opt[T, K]) *Tree[T, K] {
	t := &Tree[T, K]{
		order:   order,
		knuth:   slab.DefaultOrder,
		mutator: debug.NewMutator(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.arena == nil {
		t.arena = slab.New[T]()
	}
	return t
}

// Len returns the number of items stored in the tree.
func (t *Tree[T, K]) Len() int { return t.arena.Len() }

// IsEmpty reports whether the tree holds no items.
func (t *Tree[T, K]) IsEmpty() bool { return t.Len() == 0 }

// Root returns the id of the root node, if any.
func (t *Tree[T, K]) Root() opt.Option[int] { return t.arena.Root() }

// node returns the buffer for id, asserting that it must exist: callers
// only ever reach this through an address that names a live node.
func (t *Tree[T, K]) node(id int) *node.Buffer[T] {
	b := t.arena.Get(id)
	debug.Assert(b.IsSome(), "address names node %d, which does not exist", id)
	return b.Unwrap()
}

func (t *Tree[T, K]) checkMutator() { debug.CheckMutator(t.mutator) }

// item returns the item at the given address, asserting the address names
// an existing item.
func (t *Tree[T, K]) item(a addr.Address) T {
	n := t.node(a.ID)
	it := n.Item(a.Offset)
	debug.Assert(it.IsSome(), "address %s does not name an existing item", a)
	return it.Unwrap()
}

// Item returns the item at the given address.
func (t *Tree[T, K]) Item(a addr.Address) opt.Option[T] {
	if a.IsNowhere() {
		return opt.None[T]()
	}
	n := t.node(a.ID)
	return n.Item(a.Offset)
}

// ItemPtr returns a pointer to the item at the given address, for in-place
// mutation that does not affect sort order (see Buffer.ItemPtr). Returns
// nil if a does not name an existing item.
func (t *Tree[T, K]) ItemPtr(a addr.Address) *T {
	if a.IsNowhere() {
		return nil
	}
	return t.node(a.ID).ItemPtr(a.Offset)
}
