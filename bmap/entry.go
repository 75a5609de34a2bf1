package bmap

// Entry is a view into a single slot of a Map, obtained via [Map.Entry],
// either already bound to a value (Occupied) or not (Vacant). Grounded on
// entry.rs's Entry/OccupiedEntry/VacantEntry, folded into one Go type since
// there is no borrow-checker reason here to split the mutable accessors out
// into their own types.
type Entry[K, V any] struct {
	m        *Map[K, V]
	key      K
	occupied bool
}

// entryFor builds the Entry for key, without yet mutating m.
func entryFor[K, V any](m *Map[K, V], key K) Entry[K, V] {
	return Entry[K, V]{m: m, key: key, occupied: m.ContainsKey(key)}
}

// Entry returns a view into the slot for key, letting the caller inspect or
// conditionally populate it without a separate lookup-then-insert pass.
func (m *Map[K, V]) Entry(key K) Entry[K, V] { return entryFor(m, key) }

// Key returns the key this entry was constructed with.
func (e Entry[K, V]) Key() K { return e.key }

// IsOccupied reports whether the map already held a value for this entry's
// key at the time it was constructed.
func (e Entry[K, V]) IsOccupied() bool { return e.occupied }

// OrInsert ensures key is bound, inserting def if it was not, and returns a
// pointer to the bound value.
func (e Entry[K, V]) OrInsert(def V) *V {
	return e.OrInsertWith(func() V { return def })
}

// OrInsertWith ensures key is bound, inserting the result of def if it was
// not, and returns a pointer to the bound value.
func (e Entry[K, V]) OrInsertWith(def func() V) *V {
	if !e.occupied {
		e.m.Insert(e.key, def())
	}

	found := e.m.tree.AddressOf(e.key)
	addr := found.UnwrapRight()
	return &e.m.tree.ItemPtr(addr).Value
}

// AndModify calls f with a pointer to the bound value if key is already
// occupied, then returns e unchanged so the caller can chain into OrInsert.
func (e Entry[K, V]) AndModify(f func(*V)) Entry[K, V] {
	if e.occupied {
		found := e.m.tree.AddressOf(e.key)
		addr := found.UnwrapRight()
		f(&e.m.tree.ItemPtr(addr).Value)
	}
	return e
}

// OrDefault ensures key is bound, inserting the zero value of V if it was
// not, and returns a pointer to the bound value.
func (e Entry[K, V]) OrDefault() *V {
	var zero V
	return e.OrInsertWith(func() V { return zero })
}
