package btree

import "github.com/flier/gbtree/addr"

// DrainFilter is a single-pass cursor that visits every item of a tree
// exactly once, removing the ones for which a predicate returns true.
// Advancing past a kept item moves to the next item in the ordinary way;
// advancing past a removed one resumes from the address the removal
// rebalanced it to, which is why Next needs the tracked form of RemoveAt.
type DrainFilter[T, K any] struct {
	t    *Tree[T, K]
	addr addr.Address
	pred func(T) bool
}

// NewDrainFilter returns a cursor that removes every item of t for which
// pred returns true as it is visited.
func NewDrainFilter[T, K any](t *Tree[T, K], pred func(T) bool) *DrainFilter[T, K] {
	t.checkMutator()
	return &DrainFilter[T, K]{t: t, addr: t.FirstBackAddress(), pred: pred}
}

// Next advances the cursor, removing and returning the next item for which
// pred holds, or returning false once every item has been visited.
func (d *DrainFilter[T, K]) Next() (T, bool) {
	var zero T
	for {
		if d.addr.IsNowhere() {
			return zero, false
		}

		n := d.t.node(d.addr.ID)
		if !d.addr.IsItem(n.ItemCount()) {
			next := d.t.NextBackAddress(d.addr)
			if next.IsNone() {
				return zero, false
			}
			d.addr = next.Unwrap()
			continue
		}

		item := d.t.item(d.addr)
		if d.pred(item) {
			removed, next := d.t.removeAtTracked(d.addr)
			d.addr = next
			return removed, true
		}

		next := d.t.NextItemOrBackAddress(d.addr)
		if next.IsNone() {
			return zero, false
		}
		d.addr = next.Unwrap()
	}
}

// Retain removes every item of t for which keep returns false.
func Retain[T, K any](t *Tree[T, K], keep func(T) bool) {
	d := NewDrainFilter(t, func(item T) bool { return !keep(item) })
	for {
		if _, ok := d.Next(); !ok {
			return
		}
	}
}
