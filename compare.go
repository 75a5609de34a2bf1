package btree

import (
	"hash/maphash"

	dolthashmap "github.com/dolthub/maphash"
)

// Equal reports whether t and other hold the same items in the same sorted
// order, comparing item-by-item.
//
// The source's eq/partial_cmp/cmp compare item2 against item1 twice in a
// row on the Ordering::Equal arm before moving on (lines 632-644,
// 663-668 of btree.rs): the second comparison is redundant, always agreeing
// with the first since item_cmp is a pure function of its two arguments.
// This port compares once, per item, and documents the simplification here
// rather than reproducing the apparent copy-paste duplication, the same
// way node.FindMin replaces the source's binary_search_min.
func (t *Tree[T, K]) Equal(other *Tree[T, K]) bool {
	if t.Len() != other.Len() {
		return false
	}

	it1 := NewIter(t)
	it2 := NewIter(other)
	for {
		item1, ok1 := it1.Next()
		item2, ok2 := it2.Next()
		if !ok1 && !ok2 {
			return true
		}
		if ok1 != ok2 {
			return false
		}
		if t.order.Compare(item1, item2) != 0 {
			return false
		}
	}
}

// Compare orders t against other lexicographically by their sorted item
// sequences: the first tree with a smaller item at the first differing
// position sorts first, and a tree that is a strict prefix of the other
// sorts first.
func (t *Tree[T, K]) Compare(other *Tree[T, K]) int {
	it1 := NewIter(t)
	it2 := NewIter(other)
	for {
		item1, ok1 := it1.Next()
		item2, ok2 := it2.Next()
		switch {
		case !ok1 && !ok2:
			return 0
		case ok1 && !ok2:
			return 1
		case !ok1 && ok2:
			return -1
		}

		if c := t.order.Compare(item1, item2); c != 0 {
			return c
		}
	}
}

// Hash writes a hash of every item of t, in sorted order, to h. Two trees
// that compare Equal always produce the same hash under the same hasher.
//
// T must be comparable to use dolthub/maphash's generic per-value hasher;
// callers whose item type embeds non-comparable fields should hash a
// comparable projection of it instead (see bmap.Hash, which hashes
// just the key).
func Hash[T comparable, K any](t *Tree[T, K], hasher dolthashmap.Hasher[T], h *maphash.Hash) {
	it := NewIter(t)
	for {
		item, ok := it.Next()
		if !ok {
			return
		}
		var buf [8]byte
		v := hasher.Hash(item)
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
}
