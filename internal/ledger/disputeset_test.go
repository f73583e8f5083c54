package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"txnengine/internal/ledger"
)

func TestDisputeSetOpenContainsClose(t *testing.T) {
	ds := ledger.NewDisputeSet()
	a := amount(t, 10)

	assert.False(t, ds.Contains(5))

	ds.Open(5, a)
	assert.True(t, ds.Contains(5))

	got, ok := ds.Amount(5)
	assert.True(t, ok)
	assert.Equal(t, a, got)

	ds.Close(5)
	assert.False(t, ds.Contains(5))
	_, ok = ds.Amount(5)
	assert.False(t, ok)
}
