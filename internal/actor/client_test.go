package actor_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"txnengine/internal/actor"
	"txnengine/internal/event"
	"txnengine/internal/money"
)

func amount(t *testing.T, v float64) money.Amount {
	t.Helper()
	a, err := money.NewAmount(decimal.NewFromFloat(v))
	require.NoError(t, err)
	return a
}

// runClient feeds events through a fresh Client and returns its snapshot.
func runClient(t *testing.T, client uint16, events []event.Event) (actor.Snapshot, bool) {
	t.Helper()
	inbox := make(chan event.Event, len(events))
	results := make(chan actor.Snapshot, 1)
	c := actor.New(client, inbox, results, nil)

	for _, ev := range events {
		inbox <- ev
	}
	close(inbox)

	done := make(chan struct{})
	go func() {
		c.Run(func() {})
		close(done)
	}()
	<-done

	snap, ok := <-results
	return snap, ok
}

func TestDepositIncreasesAvailable(t *testing.T) {
	snap, ok := runClient(t, 1, []event.Event{
		event.NewDeposit(1, 1, amount(t, 100)),
	})
	require.True(t, ok)
	assert.Equal(t, "100.0000", snap.Available.String())
	assert.Equal(t, "0.0000", snap.Held.String())
	assert.False(t, snap.Locked)
}

func TestWithdrawalBeyondAvailableIsDropped(t *testing.T) {
	snap, ok := runClient(t, 1, []event.Event{
		event.NewDeposit(1, 1, amount(t, 10)),
		event.NewWithdrawal(1, 2, amount(t, 50)),
	})
	require.True(t, ok)
	assert.Equal(t, "10.0000", snap.Available.String())
}

func TestDisputeHoldsFunds(t *testing.T) {
	snap, ok := runClient(t, 1, []event.Event{
		event.NewDeposit(1, 1, amount(t, 100)),
		event.NewDispute(1, 1),
	})
	require.True(t, ok)
	assert.Equal(t, "0.0000", snap.Available.String())
	assert.Equal(t, "100.0000", snap.Held.String())
}

func TestDisputeOfUnknownIDIsNoop(t *testing.T) {
	snap, ok := runClient(t, 1, []event.Event{
		event.NewDeposit(1, 1, amount(t, 100)),
		event.NewDispute(1, 999),
	})
	require.True(t, ok)
	assert.Equal(t, "100.0000", snap.Available.String())
	assert.Equal(t, "0.0000", snap.Held.String())
}

func TestResolveReturnsFundsToAvailable(t *testing.T) {
	snap, ok := runClient(t, 1, []event.Event{
		event.NewDeposit(1, 1, amount(t, 100)),
		event.NewDispute(1, 1),
		event.NewResolve(1, 1),
	})
	require.True(t, ok)
	assert.Equal(t, "100.0000", snap.Available.String())
	assert.Equal(t, "0.0000", snap.Held.String())
	assert.False(t, snap.Locked)
}

func TestResolveWithoutDisputeIsNoop(t *testing.T) {
	snap, ok := runClient(t, 1, []event.Event{
		event.NewDeposit(1, 1, amount(t, 100)),
		event.NewResolve(1, 1),
	})
	require.True(t, ok)
	assert.Equal(t, "100.0000", snap.Available.String())
}

func TestChargebackLocksAccount(t *testing.T) {
	snap, ok := runClient(t, 1, []event.Event{
		event.NewDeposit(1, 1, amount(t, 100)),
		event.NewDispute(1, 1),
		event.NewChargeback(1, 1),
	})
	require.True(t, ok)
	assert.Equal(t, "0.0000", snap.Available.String())
	assert.Equal(t, "0.0000", snap.Held.String())
	assert.True(t, snap.Locked)
}

func TestEventsAfterChargebackAreIgnored(t *testing.T) {
	snap, ok := runClient(t, 1, []event.Event{
		event.NewDeposit(1, 1, amount(t, 100)),
		event.NewDispute(1, 1),
		event.NewChargeback(1, 1),
		event.NewDeposit(1, 2, amount(t, 50)),
	})
	require.True(t, ok)
	assert.Equal(t, "0.0000", snap.Available.String())
	assert.True(t, snap.Locked)
}

func TestDuplicateDisputeIsNoop(t *testing.T) {
	snap, ok := runClient(t, 1, []event.Event{
		event.NewDeposit(1, 1, amount(t, 100)),
		event.NewDispute(1, 1),
		event.NewDispute(1, 1),
	})
	require.True(t, ok)
	assert.Equal(t, "100.0000", snap.Held.String())
}
