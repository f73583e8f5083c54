package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"txnengine/internal/event"
	"txnengine/internal/ingest"
)

func collect(ch <-chan event.Event) []event.Event {
	var out []event.Event
	for ev := range ch {
		out = append(out, ev)
	}
	return out
}

func TestStreamDecodesValidRows(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,100.5\n" +
		"withdrawal,1,2,20\n" +
		"dispute,1,1,\n"

	events := collect(ingest.Stream(strings.NewReader(input)))
	require.Len(t, events, 3)

	assert.Equal(t, event.Deposit, events[0].Kind())
	assert.Equal(t, uint16(1), events[0].Client())
	amt, ok := events[0].Amount()
	require.True(t, ok)
	assert.Equal(t, "100.5000", amt.String())

	assert.Equal(t, event.Withdrawal, events[1].Kind())
	assert.Equal(t, event.Dispute, events[2].Kind())
	_, ok = events[2].Amount()
	assert.False(t, ok)
}

func TestStreamSkipsMalformedRows(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,100\n" +
		"deposit,notanumber,2,50\n" +
		"withdrawal,1,3,5\n"

	events := collect(ingest.Stream(strings.NewReader(input)))
	require.Len(t, events, 2)
	assert.Equal(t, event.Deposit, events[0].Kind())
	assert.Equal(t, event.Withdrawal, events[1].Kind())
}

func TestStreamSkipsDepositMissingAmount(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,\n" +
		"deposit,1,2,10\n"

	events := collect(ingest.Stream(strings.NewReader(input)))
	require.Len(t, events, 1)
	assert.Equal(t, uint32(2), events[0].ID())
}

func TestStreamEmptyInput(t *testing.T) {
	events := collect(ingest.Stream(strings.NewReader("")))
	assert.Empty(t, events)
}
