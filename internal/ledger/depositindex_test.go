package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"txnengine/internal/ledger"
)

func TestDepositIndexInsertAndLookup(t *testing.T) {
	idx := ledger.NewDepositIndex()
	a := amount(t, 25)

	ok := idx.Insert(1, a)
	assert.True(t, ok)

	got, found := idx.Lookup(1)
	assert.True(t, found)
	assert.Equal(t, a, got)
}

func TestDepositIndexRejectsDuplicate(t *testing.T) {
	idx := ledger.NewDepositIndex()
	a := amount(t, 25)

	require := assert.New(t)
	require.True(idx.Insert(1, a))
	require.False(idx.Insert(1, amount(t, 99)))

	got, _ := idx.Lookup(1)
	require.Equal(a, got)
}

func TestDepositIndexLookupMiss(t *testing.T) {
	idx := ledger.NewDepositIndex()
	_, found := idx.Lookup(42)
	assert.False(t, found)
}
