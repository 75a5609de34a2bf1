package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flier/gbtree/node"
	"github.com/flier/gbtree/offset"
	"github.com/flier/gbtree/pkg/opt"
)

func intCmp(key int) func(int) int {
	return func(item int) int { return item - key }
}

func TestLeafInsertRemove(t *testing.T) {
	b := node.NewLeaf[int](opt.None[int](), 5)
	require.Equal(t, 1, b.ItemCount())

	b.Insert(offset.Of(1), 7, opt.None[int]())
	b.Insert(offset.Of(0), 3, opt.None[int]())

	assert.Equal(t, []int{3, 5, 7}, collect(b))

	item, childID := b.Remove(offset.Of(1))
	assert.Equal(t, 5, item)
	assert.True(t, childID.IsNone())
	assert.Equal(t, []int{3, 7}, collect(b))
}

func TestLeafSplit(t *testing.T) {
	b := node.NewLeaf[int](opt.None[int](), 0)
	for _, v := range []int{1, 2, 3, 4, 5, 6} {
		b.PushRight(v, opt.None[int]())
	}
	// items: 0..6, order big enough to be overflowing.
	leftCount, median, right := b.Split(6, nil)

	assert.Equal(t, 3, leftCount)
	assert.Equal(t, 3, median)
	assert.Equal(t, []int{0, 1, 2}, collect(b))
	assert.Equal(t, []int{4, 5, 6}, collect(right))
}

func TestInternalSplitAndAppend(t *testing.T) {
	b := node.NewInternal[int](opt.None[int](), 100, 0, 101)
	b.PushRight(1, opt.Some(102))
	b.PushRight(2, opt.Some(103))
	b.PushRight(3, opt.Some(104))
	b.PushRight(4, opt.Some(105))

	leftCount, median, right := b.Split(4, nil)
	assert.Equal(t, 2, leftCount)
	assert.Equal(t, 2, median)
	assert.Equal(t, []int{0, 1}, collect(b))
	assert.Equal(t, []int{100, 101, 102}, b.Children())
	assert.Equal(t, []int{3, 4}, collect(right))
	assert.Equal(t, []int{103, 104, 105}, right.Children())

	off := b.Append(median, right)
	assert.Equal(t, 2, off.Unwrap())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, collect(b))
	assert.Equal(t, []int{100, 101, 102, 103, 104, 105}, b.Children())
}

func TestLeafSplitReusesScratchBuffer(t *testing.T) {
	b := node.NewLeaf[int](opt.None[int](), 0)
	for _, v := range []int{1, 2, 3, 4, 5, 6} {
		b.PushRight(v, opt.None[int]())
	}

	// A dirty buffer left over from a previous, unrelated split: Split must
	// reset it rather than append onto its stale contents.
	scratch := node.NewLeaf[int](opt.None[int](), 999)
	scratch.PushRight(998, opt.None[int]())

	_, _, right := b.Split(6, scratch)

	assert.Same(t, scratch, right)
	assert.Equal(t, []int{4, 5, 6}, collect(right))
}

func TestPopLeftUnderflow(t *testing.T) {
	b := node.NewLeaf[int](opt.None[int](), 1)
	b.PushRight(2, opt.None[int]())

	// order 8: leaf min capacity = (8-1)/2-1 = 2. With 2 items we're at
	// min capacity, so popping would underflow.
	res := b.PopLeft(8)
	assert.True(t, res.HasLeft())
}

func TestOffsetOf(t *testing.T) {
	b := node.NewLeaf[int](opt.None[int](), 0)
	b.PushRight(2, opt.None[int]())
	b.PushRight(4, opt.None[int]())

	hit := b.OffsetOf(intCmp(2))
	assert.True(t, hit.HasRight())
	assert.Equal(t, 1, hit.RightOrEmpty().Unwrap())

	miss := b.OffsetOf(intCmp(3))
	assert.True(t, miss.HasLeft())
	assert.Equal(t, 2, miss.LeftOrEmpty().Unwrap())

	missBefore := b.OffsetOf(intCmp(-1))
	assert.Equal(t, 0, missBefore.LeftOrEmpty().Unwrap())
}

func TestSeparatorsOnLeaf(t *testing.T) {
	b := node.NewLeaf[int](opt.None[int](), 5)
	left, right := b.Separators(0)
	assert.True(t, left.IsNone())
	assert.True(t, right.IsNone())
}

func TestSeparatorsOnInternal(t *testing.T) {
	b := node.NewInternal[int](opt.None[int](), 100, 5, 101)
	b.Insert(offset.Of(1), 9, opt.Some(102))
	// items: 5, 9; children: 100, 101, 102.

	left, right := b.Separators(0)
	assert.True(t, left.IsNone())
	require.True(t, right.IsSome())
	assert.Equal(t, 5, right.Unwrap())

	left, right = b.Separators(1)
	require.True(t, left.IsSome())
	assert.Equal(t, 5, left.Unwrap())
	require.True(t, right.IsSome())
	assert.Equal(t, 9, right.Unwrap())

	left, right = b.Separators(2)
	require.True(t, left.IsSome())
	assert.Equal(t, 9, left.Unwrap())
	assert.True(t, right.IsNone())
}

func collect(b *node.Buffer[int]) []int {
	out := make([]int, 0, b.ItemCount())
	for i := 0; i < b.ItemCount(); i++ {
		out = append(out, b.Item(offset.Of(i)).Unwrap())
	}
	return out
}
