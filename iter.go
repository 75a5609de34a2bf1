package btree

import (
	"github.com/flier/gbtree/addr"
	"github.com/flier/gbtree/pkg/opt"
)

// Iter is a double-ended cursor over every item in a tree, sorted by key.
// Go's garbage collector makes a separate mutable-iterator type
// unnecessary: since an Iter only ever hands out items by value (via
// Tree.Item) or lets the caller reach them through Tree.ReplaceAt or Update,
// nothing here aliases node storage the way the source's IterMut needed to.
type Iter[T, K any] struct {
	t    *Tree[T, K]
	addr opt.Option[addr.Address]
	end  opt.Option[addr.Address]
	len  int
}

// NewIter returns an iterator over every item of t, ascending by key.
func NewIter[T, K any](t *Tree[T, K]) *Iter[T, K] {
	return &Iter[T, K]{t: t, addr: t.FirstItemAddress(), len: t.Len()}
}

// Len returns the number of items the iterator has not yet yielded.
func (it *Iter[T, K]) Len() int { return it.len }

// Next returns the next item in ascending order, or false once exhausted.
func (it *Iter[T, K]) Next() (T, bool) {
	var zero T
	if it.addr.IsNone() || it.len == 0 {
		return zero, false
	}

	a := it.addr.Unwrap()
	it.len--
	item := it.t.item(a)
	it.addr = it.t.NextItemAddress(a)
	return item, true
}

// NextBack returns the next item in descending order, or false once
// exhausted. Mixing Next and NextBack drains the sequence from both ends
// toward the middle.
func (it *Iter[T, K]) NextBack() (T, bool) {
	var zero T
	if it.len == 0 {
		return zero, false
	}

	var a addr.Address
	if it.end.IsSome() {
		prev := it.t.PreviousItemAddress(it.end.Unwrap())
		a = prev.Unwrap()
	} else {
		a = it.t.LastItemAddress().Unwrap()
	}

	it.len--
	item := it.t.item(a)
	it.end = opt.Some(a)
	return item, true
}
