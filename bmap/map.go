// Package bmap builds a conventional keyed-map façade on top of
// [github.com/flier/gbtree], the way the source's map.rs layers Map over its
// Storage trait.
package bmap

import (
	"cmp"
	"hash/maphash"

	dolthashmap "github.com/dolthub/maphash"

	"github.com/flier/gbtree"
	"github.com/flier/gbtree/pkg/opt"
)

// Binding is the item type stored in a Map's underlying tree: a key paired
// with its value.
type Binding[K, V any] struct {
	Key   K
	Value V
}

// order adapts a key comparator into the btree.Order[Binding[K,V], K]
// interface the tree engine needs.
type order[K, V any] struct {
	cmp func(K, K) int
}

func (o order[K, V]) Compare(a, b Binding[K, V]) int { return o.cmp(a.Key, b.Key) }

func (o order[K, V]) CompareKey(item Binding[K, V], key K) int { return o.cmp(item.Key, key) }

// Map is a sorted associative container, keyed by K, backed by a
// [btree.Tree].
type Map[K, V any] struct {
	tree *btree.Tree[Binding[K, V], K]
}

// New returns an empty map ordered by K's natural order.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty map ordered by the given comparator.
func NewFunc[K, V any](cmp func(K, K) int) *Map[K, V] {
	return &Map[K, V]{tree: btree.New[Binding[K, V], K](order[K, V]{cmp: cmp})}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.tree.Len() }

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.tree.IsEmpty() }

// Get returns the value bound to key, if any.
func (m *Map[K, V]) Get(key K) opt.Option[V] {
	found := m.tree.Get(key)
	if found.IsNone() {
		return opt.None[V]()
	}
	return opt.Some(found.Unwrap().Value)
}

// GetKeyValue returns the stored key and its value, if key is bound. Unlike
// Get, this returns the exact key instance stored in the tree rather than
// the probe key passed in, which matters when K and the probe differ only
// by identity (e.g. interned strings).
func (m *Map[K, V]) GetKeyValue(key K) opt.Option[Binding[K, V]] { return m.tree.Get(key) }

// ContainsKey reports whether key is bound in the map.
func (m *Map[K, V]) ContainsKey(key K) bool { return m.tree.Contains(key) }

// FirstKeyValue returns the entry with the smallest key, if any.
func (m *Map[K, V]) FirstKeyValue() opt.Option[Binding[K, V]] {
	it := btree.NewIter(m.tree)
	item, ok := it.Next()
	if !ok {
		return opt.None[Binding[K, V]]()
	}
	return opt.Some(item)
}

// LastKeyValue returns the entry with the largest key, if any.
func (m *Map[K, V]) LastKeyValue() opt.Option[Binding[K, V]] {
	it := btree.NewIter(m.tree)
	item, ok := it.NextBack()
	if !ok {
		return opt.None[Binding[K, V]]()
	}
	return opt.Some(item)
}

// Insert binds key to value, returning the value it displaced, if any.
func (m *Map[K, V]) Insert(key K, value V) opt.Option[V] {
	displaced := m.tree.Insert(Binding[K, V]{Key: key, Value: value})
	if displaced.IsNone() {
		return opt.None[V]()
	}
	return opt.Some(displaced.Unwrap().Value)
}

// Remove unbinds key, returning the value it was bound to, if any.
func (m *Map[K, V]) Remove(key K) opt.Option[V] {
	removed := m.tree.Remove(key)
	if removed.IsNone() {
		return opt.None[V]()
	}
	return opt.Some(removed.Unwrap().Value)
}

// RemoveEntry unbinds key, returning the whole entry it was bound to, if any.
func (m *Map[K, V]) RemoveEntry(key K) opt.Option[Binding[K, V]] { return m.tree.Remove(key) }

// Take is an alias for Remove, matching the source's map-flavored naming.
func (m *Map[K, V]) Take(key K) opt.Option[V] { return m.Remove(key) }

// PopFirst removes and returns the entry with the smallest key, if any.
func (m *Map[K, V]) PopFirst() opt.Option[Binding[K, V]] { return m.tree.PopFirst() }

// PopLast removes and returns the entry with the largest key, if any.
func (m *Map[K, V]) PopLast() opt.Option[Binding[K, V]] { return m.tree.PopLast() }

// Update is the map-flavored form of [btree.Update]: action is called with
// the existing value bound to key, if any, and returns the value that
// should end up bound there (None unbinds it) plus an arbitrary result.
func Update[K, V, R any](m *Map[K, V], key K, action func(opt.Option[V]) (opt.Option[V], R)) R {
	return btree.Update(m.tree, key, func(entry btree.UpdateEntry[Binding[K, V], K]) (opt.Option[Binding[K, V]], R) {
		var existing opt.Option[V]
		if entry.IsOccupied() {
			existing = opt.Some(entry.Item().Unwrap().Value)
		}

		newValue, result := action(existing)
		if newValue.IsNone() {
			return opt.None[Binding[K, V]](), result
		}
		return opt.Some(Binding[K, V]{Key: entry.Key(), Value: newValue.Unwrap()}), result
	})
}

// Retain removes every entry for which keep returns false.
func (m *Map[K, V]) Retain(keep func(K, V) bool) {
	btree.Retain(m.tree, func(b Binding[K, V]) bool { return keep(b.Key, b.Value) })
}

// Equal reports whether m and other hold the same keys, in the same sorted
// order. Values are not compared.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool { return m.tree.Equal(other.tree) }

// Compare orders m against other lexicographically by their sorted keys.
// Values are not compared.
func (m *Map[K, V]) Compare(other *Map[K, V]) int { return m.tree.Compare(other.tree) }

// Hash writes a hash of m's sorted entries to h, using hasher to hash each
// key. Two maps that compare Equal under the same key ordering always
// produce the same hash under the same hasher, since Hash only depends on
// the keys, not the values (mirroring the source's identity: a map hashes
// like a set of its keys when values aren't Hash).
func Hash[K comparable, V any](m *Map[K, V], hasher dolthashmap.Hasher[K], h *maphash.Hash) {
	it := btree.NewIter(m.tree)
	for {
		item, ok := it.Next()
		if !ok {
			return
		}
		var buf [8]byte
		v := hasher.Hash(item.Key)
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
}
