package model

import "github.com/google/uuid"

// TransferKind tags a coin movement with its business meaning.
type TransferKind string

const (
	TransferKindTip       TransferKind = "tip"
	TransferKindEntryPass TransferKind = "entry_pass"
)

// LedgerEntry is a single signed coin delta applied to one account. A
// transfer applies all of its entries together or none of them.
type LedgerEntry struct {
	Account int64
	Delta   int64
}

// Transfer describes an atomic multi-account coin movement requested from the
// ledger store.
type Transfer struct {
	Kind     TransferKind
	SenderID int64
	StreamID string
	Message  string
	Entries  []LedgerEntry
}

// Amount returns the total coins debited from the sender.
func (t *Transfer) Amount() int64 {
	var debit int64
	for _, e := range t.Entries {
		if e.Account == t.SenderID && e.Delta < 0 {
			debit -= e.Delta
		}
	}
	return debit
}

// Recipient returns the account receiving the largest credit, i.e. the tip
// recipient or the broadcaster of an entry pass.
func (t *Transfer) Recipient() int64 {
	var account, best int64
	for _, e := range t.Entries {
		if e.Delta > best {
			best = e.Delta
			account = e.Account
		}
	}
	return account
}

// Balanced reports whether entry deltas sum to zero, i.e. the transfer
// neither mints nor destroys coins.
func (t *Transfer) Balanced() bool {
	var sum int64
	for _, e := range t.Entries {
		sum += e.Delta
	}
	return sum == 0
}

// TransferResult is what economic operations hand back to callers. Store
// failures are folded into Error instead of being raised, so a caller always
// learns success or failure and never observes a partial transfer.
type TransferResult struct {
	Success       bool
	TransactionID uuid.UUID
	Error         string
}
