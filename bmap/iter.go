package bmap

import "github.com/flier/gbtree"

// Iter is a double-ended cursor over a Map's entries, sorted by key.
type Iter[K, V any] struct {
	inner *btree.Iter[Binding[K, V], K]
}

// Iter returns a cursor over every entry of m, ascending by key.
func (m *Map[K, V]) Iter() *Iter[K, V] { return &Iter[K, V]{inner: btree.NewIter(m.tree)} }

// Len returns the number of entries the cursor has not yet yielded.
func (it *Iter[K, V]) Len() int { return it.inner.Len() }

// Next returns the next entry in ascending order, or false once exhausted.
func (it *Iter[K, V]) Next() (Binding[K, V], bool) { return it.inner.Next() }

// NextBack returns the next entry in descending order, or false once
// exhausted.
func (it *Iter[K, V]) NextBack() (Binding[K, V], bool) { return it.inner.NextBack() }

// Keys is a cursor over a Map's keys, sorted.
type Keys[K, V any] struct{ it *Iter[K, V] }

// Keys returns a cursor over every key of m, ascending.
func (m *Map[K, V]) Keys() *Keys[K, V] { return &Keys[K, V]{it: m.Iter()} }

// Next returns the next key, or false once exhausted.
func (k *Keys[K, V]) Next() (K, bool) {
	b, ok := k.it.Next()
	return b.Key, ok
}

// Values is a cursor over a Map's values, sorted by key.
type Values[K, V any] struct{ it *Iter[K, V] }

// Values returns a cursor over every value of m, in ascending key order.
func (m *Map[K, V]) Values() *Values[K, V] { return &Values[K, V]{it: m.Iter()} }

// Next returns the next value, or false once exhausted.
func (v *Values[K, V]) Next() (V, bool) {
	b, ok := v.it.Next()
	return b.Value, ok
}

// Range is a double-ended cursor over the entries of m whose keys fall
// within the given bounds.
type Range[K, V any] struct {
	inner *btree.Range[Binding[K, V], K]
}

// NewRange returns a cursor over m's entries whose keys satisfy start and
// end, using the same [btree.Bound] vocabulary (btree.Included,
// btree.Excluded, btree.Unbounded) as the underlying tree.
func (m *Map[K, V]) NewRange(start, end btree.Bound[K]) *Range[K, V] {
	return &Range[K, V]{inner: btree.NewRange(m.tree, start, end)}
}

// Next returns the next entry in the range, ascending, or false once
// exhausted.
func (r *Range[K, V]) Next() (Binding[K, V], bool) { return r.inner.Next() }

// NextBack returns the next entry in the range, descending, or false once
// exhausted.
func (r *Range[K, V]) NextBack() (Binding[K, V], bool) { return r.inner.NextBack() }

// DrainFilter removes every entry of m for which pred returns true,
// visiting each entry exactly once.
type DrainFilter[K, V any] struct {
	inner *btree.DrainFilter[Binding[K, V], K]
}

// NewDrainFilter returns a cursor that removes every entry of m for which
// pred returns true as it is visited.
func (m *Map[K, V]) NewDrainFilter(pred func(K, V) bool) *DrainFilter[K, V] {
	inner := btree.NewDrainFilter(m.tree, func(b Binding[K, V]) bool { return pred(b.Key, b.Value) })
	return &DrainFilter[K, V]{inner: inner}
}

// Next advances the cursor, removing and returning the next entry for which
// pred holds, or false once every entry has been visited.
func (d *DrainFilter[K, V]) Next() (Binding[K, V], bool) { return d.inner.Next() }

// EntriesMut is a cursor that hands out a pointer to each entry's value in
// turn, letting the caller mutate values in place without disturbing sort
// order. Unlike the source's separate IterMut, this reuses Iter plus
// Map.tree.ItemPtr: Go's garbage collector makes a distinct mutable cursor
// type unnecessary here, the same reasoning documented on [btree.Iter].
type EntriesMut[K, V any] struct {
	m   *Map[K, V]
	it  *btree.Iter[Binding[K, V], K]
	key K
}

// EntriesMut returns a cursor over every entry of m, ascending by key, each
// yielding a pointer into the value for in-place mutation.
func (m *Map[K, V]) EntriesMut() *EntriesMut[K, V] {
	return &EntriesMut[K, V]{m: m, it: btree.NewIter(m.tree)}
}

// Next advances the cursor, returning the next key and a pointer to its
// value, or false once exhausted.
func (e *EntriesMut[K, V]) Next() (K, *V, bool) {
	b, ok := e.it.Next()
	if !ok {
		var zero K
		return zero, nil, false
	}

	found := e.m.tree.AddressOf(b.Key)
	addr := found.UnwrapRight()
	return b.Key, &e.m.tree.ItemPtr(addr).Value, true
}
