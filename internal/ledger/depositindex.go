package ledger

import "txnengine/internal/money"

// DepositIndex snapshots the amount of every successfully-applied deposit
// for one client, keyed by event id. Disputes carry no amount, so this is
// how a later Dispute event is translated back into a concrete Amount.
//
// Grounded on original_source's db/in_mem.rs AmountCache: insert rejects a
// duplicate id without rolling back any balance mutation that already
// happened — the stream's id-uniqueness assumption (spec.md §3) makes this
// unobservable in practice, and the source takes the same shortcut.
type DepositIndex struct {
	amounts map[uint32]money.Amount
}

// NewDepositIndex returns an empty index.
func NewDepositIndex() *DepositIndex {
	return &DepositIndex{amounts: make(map[uint32]money.Amount)}
}

// Insert records a deposit's amount under id. ok is false if id is already
// present; the caller (the actor) logs this and moves on, it does not
// roll back the balance mutation already committed for this deposit.
func (d *DepositIndex) Insert(id uint32, amount money.Amount) (ok bool) {
	if _, exists := d.amounts[id]; exists {
		return false
	}
	d.amounts[id] = amount
	return true
}

// Lookup returns the amount recorded for id, if any.
func (d *DepositIndex) Lookup(id uint32) (money.Amount, bool) {
	a, ok := d.amounts[id]
	return a, ok
}
