// Package event defines the tagged Event variant the dispatch fabric
// routes and the client actor consumes.
//
// A tagged union rather than a single struct with nullable fields is used
// deliberately (spec.md §9): the payload shape — whether an amount is
// present — is encoded in which constructor built the Event, not in a
// runtime nil-check scattered through the actor's hot path.
package event

import "txnengine/internal/money"

// Kind identifies which of the five event variants an Event carries.
type Kind int

const (
	Deposit Kind = iota
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Dispute:
		return "dispute"
	case Resolve:
		return "resolve"
	case Chargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// Event is a tagged value over the five variants. Client and ID are
// common to all variants; Amount is only meaningful for Deposit and
// Withdrawal (the constructors below enforce that; the fields are
// unexported, so outside this package an Event comes from a constructor
// or is the zero value, which reads as a Deposit with a zero Amount).
type Event struct {
	kind   Kind
	client uint16
	id     uint32
	amount money.Amount
}

// NewDeposit builds a Deposit event.
func NewDeposit(client uint16, id uint32, amount money.Amount) Event {
	return Event{kind: Deposit, client: client, id: id, amount: amount}
}

// NewWithdrawal builds a Withdrawal event.
func NewWithdrawal(client uint16, id uint32, amount money.Amount) Event {
	return Event{kind: Withdrawal, client: client, id: id, amount: amount}
}

// NewDispute builds a Dispute event (no amount; it is resolved from the
// deposit index by the client actor).
func NewDispute(client uint16, id uint32) Event {
	return Event{kind: Dispute, client: client, id: id}
}

// NewResolve builds a Resolve event.
func NewResolve(client uint16, id uint32) Event {
	return Event{kind: Resolve, client: client, id: id}
}

// NewChargeback builds a Chargeback event.
func NewChargeback(client uint16, id uint32) Event {
	return Event{kind: Chargeback, client: client, id: id}
}

// Kind returns the event's variant.
func (e Event) Kind() Kind { return e.kind }

// Client returns the 16-bit client id this event targets.
func (e Event) Client() uint16 { return e.client }

// ID returns the 32-bit event id. For Dispute/Resolve/Chargeback this
// references a prior Deposit's id.
func (e Event) ID() uint32 { return e.id }

// Amount returns the event's amount and whether one is present. Only
// Deposit and Withdrawal carry an amount.
func (e Event) Amount() (money.Amount, bool) {
	if e.kind == Deposit || e.kind == Withdrawal {
		return e.amount, true
	}
	return money.Amount{}, false
}
