package btree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/flier/gbtree"
)

func TestIterAscending(t *testing.T) {
	tr := newIntTree()
	insertAll(tr, 5, 1, 3, 2, 4)

	it := NewIter(tr)
	require.Equal(t, 5, it.Len())

	var got []int
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestIterDescending(t *testing.T) {
	tr := newIntTree()
	insertAll(tr, 5, 1, 3, 2, 4)

	it := NewIter(tr)
	var got []int
	for {
		v, ok := it.NextBack()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, got)
}

func TestIterMeetingInMiddle(t *testing.T) {
	tr := newIntTree()
	insertAll(tr, 1, 2, 3, 4, 5, 6)

	it := NewIter(tr)
	front, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, front)

	back, ok := it.NextBack()
	require.True(t, ok)
	assert.Equal(t, 6, back)

	var rest []int
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		rest = append(rest, v)
	}
	assert.Equal(t, []int{2, 3, 4, 5}, rest)
}

func TestIterEmptyTree(t *testing.T) {
	it := NewIter(newIntTree())
	_, ok := it.Next()
	assert.False(t, ok)
}
