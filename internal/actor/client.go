// Package actor implements the per-client state machine: a single
// goroutine that owns one account's Balances, DepositIndex, and
// DisputeSet exclusively (no locking) and applies events strictly in the
// order they arrive on its inbound channel.
//
// Grounded on original_source/src/client_processor.rs (ClientProcessor::
// crank/process_tx) for the exact per-variant rules, adapted to the Go
// idiom of small checked-mutation methods seen in
// fandangolas-core-banking-lab/internal/domain/account/account.go (though
// here there is no mutex: the actor is the state's sole owner).
package actor

import (
	"txnengine/internal/engineerr"
	"txnengine/internal/event"
	"txnengine/internal/ledger"
	"txnengine/internal/money"
	"txnengine/internal/pkg/logging"
)

// Snapshot is the final per-client result emitted once an actor's inbound
// channel is closed and drained.
type Snapshot struct {
	Client    uint16
	Available money.Balance
	Held      money.Balance
	Total     money.Balance
	Locked    bool
}

// Sink receives observability events as the actor applies transactions.
// Satisfied by internal/metrics.Registry; nil-safe via noopSink so
// metrics stay optional without littering the actor with nil checks.
type Sink interface {
	EventProcessed()
	EventDropped(reason string)
	AccountLocked()
}

type noopSink struct{}

func (noopSink) EventProcessed()     {}
func (noopSink) EventDropped(string) {}
func (noopSink) AccountLocked()      {}

// Client runs one account's state machine. Callers construct one per
// client id the first time that client is named by an event (see
// internal/dispatch), then call Run in its own goroutine.
type Client struct {
	id       uint16
	balances ledger.Balances
	locked   bool
	deposits *ledger.DepositIndex
	disputed *ledger.DisputeSet

	inbox   <-chan event.Event
	results chan<- Snapshot
	metrics Sink
}

// New constructs a Client for id, reading from inbox and writing its one
// snapshot to results (which must have capacity >= 1; the actor sends at
// most once, closes results, then returns). sink may be nil, in which case
// metrics are not recorded.
func New(id uint16, inbox <-chan event.Event, results chan<- Snapshot, sink Sink) *Client {
	if sink == nil {
		sink = noopSink{}
	}
	return &Client{
		id:       id,
		balances: ledger.NewBalances(),
		deposits: ledger.NewDepositIndex(),
		disputed: ledger.NewDisputeSet(),
		inbox:    inbox,
		results:  results,
		metrics:  sink,
	}
}

// Run consumes inbox to exhaustion, applying each event in order, then
// emits one Snapshot on results (none if available+held overflows),
// closes results and returns. done is called once
// per event immediately after it has been applied (including no-ops and
// dropped events), so the caller can maintain an in-flight counter.
func (c *Client) Run(done func()) {
	for ev := range c.inbox {
		c.apply(ev)
		done()
	}
	c.emit()
}

// apply dispatches one event to its processing rule. All failures are
// recoverable and local: they are logged and the event is dropped,
// balances are left exactly as they were.
func (c *Client) apply(ev event.Event) {
	if c.locked {
		return
	}

	switch ev.Kind() {
	case event.Deposit:
		c.applyDeposit(ev)
	case event.Withdrawal:
		c.applyWithdrawal(ev)
	case event.Dispute:
		c.applyDispute(ev)
	case event.Resolve:
		c.applyResolve(ev)
	case event.Chargeback:
		c.applyChargeback(ev)
	}
}

func (c *Client) applyDeposit(ev event.Event) {
	amount, ok := ev.Amount()
	if !ok {
		logging.Warn("dropping deposit with no amount", map[string]interface{}{"client": c.id, "id": ev.ID()})
		c.metrics.EventDropped("invalid_record")
		return
	}
	next, ok := c.balances.Deposit(amount)
	if !ok {
		logging.Warn("dropping deposit: overflow", map[string]interface{}{"client": c.id, "id": ev.ID(), "error": engineerr.NewOverflow(ev.ID()).Error()})
		c.metrics.EventDropped("overflow")
		return
	}
	c.balances = next

	// Balance mutation is kept even if the id is already indexed: the
	// stream's id-uniqueness assumption (spec.md §3) means this branch is
	// not expected to be hit, and the source makes the same choice (see
	// DESIGN.md "Open Questions").
	if !c.deposits.Insert(ev.ID(), amount) {
		logging.Warn("duplicate deposit id, balance kept", map[string]interface{}{"client": c.id, "id": ev.ID(), "error": engineerr.NewDuplicateID(ev.ID()).Error()})
	}
	c.metrics.EventProcessed()
}

func (c *Client) applyWithdrawal(ev event.Event) {
	amount, ok := ev.Amount()
	if !ok {
		logging.Warn("dropping withdrawal with no amount", map[string]interface{}{"client": c.id, "id": ev.ID()})
		c.metrics.EventDropped("invalid_record")
		return
	}
	next, ok := c.balances.Withdrawal(amount)
	if !ok {
		logging.Warn("dropping withdrawal: insufficient funds or overflow", map[string]interface{}{"client": c.id, "id": ev.ID(), "error": engineerr.NewInsufficientFunds(ev.ID()).Error()})
		c.metrics.EventDropped("insufficient_funds")
		return
	}
	c.balances = next
	c.metrics.EventProcessed()
}

func (c *Client) applyDispute(ev event.Event) {
	id := ev.ID()
	if c.disputed.Contains(id) {
		return
	}
	amount, ok := c.deposits.Lookup(id)
	if !ok {
		// References an unknown or non-deposit id (e.g. a withdrawal);
		// tolerated as a no-op (B3 in spec.md §8).
		return
	}
	next, ok := c.balances.Dispute(amount)
	if !ok {
		logging.Warn("dropping dispute: insufficient available", map[string]interface{}{"client": c.id, "id": id})
		c.metrics.EventDropped("insufficient_funds")
		return
	}
	c.balances = next
	c.disputed.Open(id, amount)
	c.metrics.EventProcessed()
}

func (c *Client) applyResolve(ev event.Event) {
	id := ev.ID()
	amount, ok := c.disputed.Amount(id)
	if !ok {
		return
	}
	next, ok := c.balances.Resolve(amount)
	if !ok {
		logging.Warn("resolve failed: held balance invariant violated", map[string]interface{}{"client": c.id, "id": id, "error": engineerr.NewOverflow(id).Error()})
		c.metrics.EventDropped("overflow")
		return
	}
	c.balances = next
	c.disputed.Close(id)
	c.metrics.EventProcessed()
}

func (c *Client) applyChargeback(ev event.Event) {
	id := ev.ID()
	amount, ok := c.disputed.Amount(id)
	if !ok {
		return
	}
	next, ok := c.balances.Chargeback(amount)
	if !ok {
		logging.Warn("chargeback failed: held balance invariant violated", map[string]interface{}{"client": c.id, "id": id, "error": engineerr.NewOverflow(id).Error()})
		c.metrics.EventDropped("overflow")
		return
	}
	c.balances = next
	c.disputed.Close(id)
	c.locked = true
	c.metrics.EventProcessed()
	c.metrics.AccountLocked()
}

func (c *Client) emit() {
	total, ok := c.balances.Total()
	if !ok {
		logging.Warn("dropping snapshot: total overflow", map[string]interface{}{"client": c.id, "error": engineerr.NewSnapshotOverflow(c.id).Error()})
		close(c.results)
		return
	}
	c.results <- Snapshot{
		Client:    c.id,
		Available: c.balances.Available(),
		Held:      c.balances.Held(),
		Total:     total,
		Locked:    c.locked,
	}
	close(c.results)
}
