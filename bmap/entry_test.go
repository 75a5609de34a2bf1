package bmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flier/gbtree/bmap"
)

func TestEntryOrInsertOnVacant(t *testing.T) {
	m := bmap.New[string, int]()

	e := m.Entry("a")
	assert.False(t, e.IsOccupied())

	v := e.OrInsert(5)
	*v += 1

	assert.Equal(t, 6, m.Get("a").Unwrap())
}

func TestEntryOrInsertOnOccupiedDoesNotOverwrite(t *testing.T) {
	m := bmap.New[string, int]()
	m.Insert("a", 10)

	e := m.Entry("a")
	require.True(t, e.IsOccupied())

	v := e.OrInsert(99)
	assert.Equal(t, 10, *v)
}

func TestEntryOrInsertWithOnlyCallsOnMiss(t *testing.T) {
	m := bmap.New[string, int]()
	m.Insert("a", 10)

	calls := 0
	def := func() int { calls++; return 42 }

	m.Entry("a").OrInsertWith(def)
	assert.Equal(t, 0, calls)

	m.Entry("b").OrInsertWith(def)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 42, m.Get("b").Unwrap())
}

func TestEntryAndModify(t *testing.T) {
	m := bmap.New[string, int]()
	m.Insert("a", 1)

	m.Entry("a").AndModify(func(v *int) { *v += 10 }).OrInsert(0)
	assert.Equal(t, 11, m.Get("a").Unwrap())

	m.Entry("b").AndModify(func(v *int) { *v += 10 }).OrInsert(0)
	assert.Equal(t, 0, m.Get("b").Unwrap())
}

func TestEntryOrDefault(t *testing.T) {
	m := bmap.New[string, int]()

	v := m.Entry("a").OrDefault()
	assert.Equal(t, 0, *v)
	assert.Equal(t, 0, m.Get("a").Unwrap())
}

func TestEntryKey(t *testing.T) {
	m := bmap.New[string, int]()
	assert.Equal(t, "k", m.Entry("k").Key())
}
