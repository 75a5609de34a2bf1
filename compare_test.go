package btree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualSameContents(t *testing.T) {
	a := newIntTree()
	b := newIntTree()
	insertAll(a, 1, 2, 3)
	insertAll(b, 3, 2, 1)

	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Compare(b))
}

func TestEqualDifferentLengths(t *testing.T) {
	a := newIntTree()
	b := newIntTree()
	insertAll(a, 1, 2)
	insertAll(b, 1, 2, 3)

	assert.False(t, a.Equal(b))
}

func TestCompareLexicographic(t *testing.T) {
	a := newIntTree()
	b := newIntTree()
	insertAll(a, 1, 2, 3)
	insertAll(b, 1, 2, 4)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
}

func TestComparePrefixIsSmaller(t *testing.T) {
	a := newIntTree()
	b := newIntTree()
	insertAll(a, 1, 2)
	insertAll(b, 1, 2, 3)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
}
