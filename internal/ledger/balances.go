// Package ledger holds the per-client account state: the two-field
// Balances with its five checked operations, the deposit index that
// resolves a dispute's amount, and the dispute set of currently-frozen
// deposits. None of these types lock — each is owned exclusively by the
// single goroutine running the client actor (see internal/actor).
package ledger

import (
	"txnengine/internal/money"
)

// Balances holds the two fields an account tracks. Total is never stored;
// it is derived as available+held only at snapshot time.
type Balances struct {
	available money.Balance
	held      money.Balance
}

// NewBalances returns a zeroed Balances.
func NewBalances() Balances {
	return Balances{available: money.ZeroBalance(), held: money.ZeroBalance()}
}

// Available returns the current available balance.
func (b Balances) Available() money.Balance { return b.available }

// Held returns the current held balance.
func (b Balances) Held() money.Balance { return b.held }

// Total derives available+held. ok is false on overflow, in which case
// the caller (the actor, at snapshot time) must drop the snapshot.
func (b Balances) Total() (money.Balance, bool) {
	return b.available.Add(b.held)
}

// Deposit credits available by a. Fails (balances unchanged) on overflow.
func (b Balances) Deposit(a money.Amount) (Balances, bool) {
	available, ok := b.available.AddAmount(a)
	if !ok {
		return b, false
	}
	return Balances{available: available, held: b.held}, true
}

// Withdrawal debits available by a. Fails (balances unchanged) when
// available < a.
func (b Balances) Withdrawal(a money.Amount) (Balances, bool) {
	available, ok := b.available.SubAmount(a)
	if !ok {
		return b, false
	}
	return Balances{available: available, held: b.held}, true
}

// Dispute moves a from available to held. Both fields are computed before
// either is committed, so a failure of either leaves balances entirely
// unchanged — there is no partially-applied dispute.
func (b Balances) Dispute(a money.Amount) (Balances, bool) {
	available, ok := b.available.SubAmount(a)
	if !ok {
		return b, false
	}
	held, ok := b.held.AddAmount(a)
	if !ok {
		return b, false
	}
	return Balances{available: available, held: held}, true
}

// Resolve moves a from held back to available. a was previously moved
// into held by Dispute, so held >= a must hold; a failure here indicates
// a prior invariant violation.
func (b Balances) Resolve(a money.Amount) (Balances, bool) {
	held, ok := b.held.SubAmount(a)
	if !ok {
		return b, false
	}
	available, ok := b.available.AddAmount(a)
	if !ok {
		return b, false
	}
	return Balances{available: available, held: held}, true
}

// Chargeback removes a from held permanently. The caller is responsible
// for locking the account on success.
func (b Balances) Chargeback(a money.Amount) (Balances, bool) {
	held, ok := b.held.SubAmount(a)
	if !ok {
		return b, false
	}
	return Balances{available: b.available, held: held}, true
}
