package btree

import "github.com/flier/gbtree/addr"

// BoundKind classifies one endpoint of a Range.
type BoundKind int

const (
	BoundUnbounded BoundKind = iota
	BoundIncluded
	BoundExcluded
)

// Bound is one endpoint of a Range: unbounded, or inclusive/exclusive of
// Value.
type Bound[K any] struct {
	Kind  BoundKind
	Value K
}

// Included returns an inclusive bound at v.
func Included[K any](v K) Bound[K] { return Bound[K]{Kind: BoundIncluded, Value: v} }

// Excluded returns an exclusive bound at v.
func Excluded[K any](v K) Bound[K] { return Bound[K]{Kind: BoundExcluded, Value: v} }

// Unbounded returns a bound with no endpoint.
func Unbounded[K any]() Bound[K] { return Bound[K]{Kind: BoundUnbounded} }

// Range is a double-ended cursor over the items of a tree whose keys fall
// within [start, end) (subject to each bound's own inclusivity).
//
// Unlike the source, constructing a Range with start logically after end
// does not panic: lacking a direct key-to-key comparator (Order only
// compares an item against a key), this port cannot validate the bounds
// ahead of time, so an inverted range simply yields no items, the same way
// it would once the cursor notices addr has already reached end.
type Range[T, K any] struct {
	t    *Tree[T, K]
	addr addr.Address
	end  addr.Address
}

// NewRange returns a cursor over t's items whose keys satisfy start and end.
func NewRange[T, K any](t *Tree[T, K], start, end Bound[K]) *Range[T, K] {
	return &Range[T, K]{t: t, addr: resolveStart(t, start), end: resolveEnd(t, end)}
}

// addressOrMiss collapses an AddressOf result to a single address: the item
// itself if found, otherwise the address it would be inserted at.
func addressOrMiss[T, K any](t *Tree[T, K], key K) addr.Address {
	found := t.AddressOf(key)
	if found.HasRight() {
		return found.UnwrapRight()
	}
	return found.UnwrapLeft()
}

func resolveStart[T, K any](t *Tree[T, K], b Bound[K]) addr.Address {
	switch b.Kind {
	case BoundIncluded:
		return addressOrMiss(t, b.Value)
	case BoundExcluded:
		found := t.AddressOf(b.Value)
		if found.HasRight() {
			next := t.NextItemOrBackAddress(found.UnwrapRight())
			return next.Unwrap()
		}
		return found.UnwrapLeft()
	default:
		return t.FirstBackAddress()
	}
}

func resolveEnd[T, K any](t *Tree[T, K], b Bound[K]) addr.Address {
	switch b.Kind {
	case BoundIncluded:
		found := t.AddressOf(b.Value)
		if found.HasRight() {
			next := t.NextItemOrBackAddress(found.UnwrapRight())
			return next.Unwrap()
		}
		return found.UnwrapLeft()
	case BoundExcluded:
		return addressOrMiss(t, b.Value)
	default:
		return t.LastValidAddress()
	}
}

// Next returns the next item in the range, ascending, or false once
// exhausted.
func (r *Range[T, K]) Next() (T, bool) {
	var zero T
	if r.addr.Eq(r.end) {
		return zero, false
	}
	item := r.t.item(r.addr)
	next := r.t.NextItemOrBackAddress(r.addr)
	r.addr = next.Unwrap()
	return item, true
}

// NextBack returns the next item in the range, descending, or false once
// exhausted.
func (r *Range[T, K]) NextBack() (T, bool) {
	var zero T
	if r.addr.Eq(r.end) {
		return zero, false
	}
	prev := r.t.PreviousItemAddress(r.end)
	a := prev.Unwrap()
	item := r.t.item(a)
	r.end = a
	return item, true
}
