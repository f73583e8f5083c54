package dispatch_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"txnengine/internal/dispatch"
	"txnengine/internal/event"
	"txnengine/internal/money"
)

func amount(t *testing.T, v float64) money.Amount {
	t.Helper()
	a, err := money.NewAmount(decimal.NewFromFloat(v))
	require.NoError(t, err)
	return a
}

func TestDispatchSingleClient(t *testing.T) {
	f := dispatch.New(10, nil)
	f.Dispatch(event.NewDeposit(1, 1, amount(t, 50)))
	f.Dispatch(event.NewWithdrawal(1, 2, amount(t, 20)))

	snaps := f.Drain()
	require.Len(t, snaps, 1)
	assert.Equal(t, uint16(1), snaps[0].Client)
	assert.Equal(t, "30.0000", snaps[0].Available.String())
}

func TestDispatchMultipleClientsAreIndependent(t *testing.T) {
	f := dispatch.New(10, nil)
	f.Dispatch(event.NewDeposit(1, 1, amount(t, 100)))
	f.Dispatch(event.NewDeposit(2, 2, amount(t, 200)))
	f.Dispatch(event.NewWithdrawal(1, 3, amount(t, 10)))

	snaps := f.Drain()
	require.Len(t, snaps, 2)

	byClient := make(map[uint16]string, len(snaps))
	for _, s := range snaps {
		byClient[s.Client] = s.Available.String()
	}
	assert.Equal(t, "90.0000", byClient[1])
	assert.Equal(t, "200.0000", byClient[2])
}

func TestDispatchDisputeAndChargebackAcrossClients(t *testing.T) {
	f := dispatch.New(10, nil)
	f.Dispatch(event.NewDeposit(1, 1, amount(t, 100)))
	f.Dispatch(event.NewDispute(1, 1))
	f.Dispatch(event.NewChargeback(1, 1))
	f.Dispatch(event.NewDeposit(2, 2, amount(t, 50)))

	snaps := f.Drain()
	require.Len(t, snaps, 2)

	for _, s := range snaps {
		if s.Client == 1 {
			assert.True(t, s.Locked)
			assert.Equal(t, "0.0000", s.Available.String())
		} else {
			assert.False(t, s.Locked)
			assert.Equal(t, "50.0000", s.Available.String())
		}
	}
}

func TestDrainOnEmptyFabric(t *testing.T) {
	f := dispatch.New(10, nil)
	snaps := f.Drain()
	assert.Empty(t, snaps)
}
