package ledger

import "txnengine/internal/money"

// DisputeSet holds the amounts currently frozen under an active dispute
// for one client, keyed by event id. Invariant (I4 in spec.md §8): every
// id present here is also present in the client's DepositIndex with the
// same amount — DisputeSet never stores an id whose deposit wasn't
// resolved through that index first.
type DisputeSet struct {
	amounts map[uint32]money.Amount
}

// NewDisputeSet returns an empty dispute set.
func NewDisputeSet() *DisputeSet {
	return &DisputeSet{amounts: make(map[uint32]money.Amount)}
}

// Contains reports whether id is currently disputed.
func (d *DisputeSet) Contains(id uint32) bool {
	_, ok := d.amounts[id]
	return ok
}

// Amount returns the frozen amount for id, if disputed.
func (d *DisputeSet) Amount(id uint32) (money.Amount, bool) {
	a, ok := d.amounts[id]
	return a, ok
}

// Open marks id as disputed for amount. Called only after Balances.Dispute
// has already succeeded.
func (d *DisputeSet) Open(id uint32, amount money.Amount) {
	d.amounts[id] = amount
}

// Close removes id from the dispute set, on either Resolve or Chargeback.
func (d *DisputeSet) Close(id uint32) {
	delete(d.amounts, id)
}
