package btree_test

import (
	. "github.com/flier/gbtree"
)

// intOrder orders plain ints by their natural order, treating each item as
// its own lookup key.
type intOrder struct{}

func (intOrder) Compare(a, b int) int    { return a - b }
func (intOrder) CompareKey(item, key int) int { return item - key }

func newIntTree(opts ...Opt[int, int]) *Tree[int, int] {
	return New[int, int](intOrder{}, opts...)
}

func insertAll(t *Tree[int, int], values ...int) {
	for _, v := range values {
		t.Insert(v)
	}
}

func collect(t *Tree[int, int]) []int {
	items := make([]int, 0, t.Len())
	it := NewIter(t)
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		items = append(items, v)
	}
	return items
}
