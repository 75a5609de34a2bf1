package btree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/flier/gbtree"
	"github.com/flier/gbtree/pkg/opt"
)

func TestUpdateInsertsWhenAbsent(t *testing.T) {
	tr := newIntTree()

	result := Update(tr, 7, func(e UpdateEntry[int, int]) (opt.Option[int], string) {
		assert.False(t, e.IsOccupied())
		return opt.Some(7), "inserted"
	})

	assert.Equal(t, "inserted", result)
	require.True(t, tr.Contains(7))
}

func TestUpdateReplacesWhenPresent(t *testing.T) {
	tr := newIntTree()
	tr.Insert(7)

	result := Update(tr, 7, func(e UpdateEntry[int, int]) (opt.Option[int], int) {
		require.True(t, e.IsOccupied())
		return opt.Some(e.Item().Unwrap() + 1), e.Item().Unwrap()
	})

	assert.Equal(t, 7, result)
	assert.Equal(t, 1, tr.Len())
}

func TestUpdateRemovesOnNone(t *testing.T) {
	tr := newIntTree()
	insertAll(tr, 1, 2, 3)

	Update(tr, 2, func(e UpdateEntry[int, int]) (opt.Option[int], struct{}) {
		return opt.None[int](), struct{}{}
	})

	assert.False(t, tr.Contains(2))
	assert.Equal(t, 2, tr.Len())
	require.NoError(t, tr.Validate())
}
