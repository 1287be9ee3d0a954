package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a ledger entry.
// Transitions are one-directional: DRAFT -> CONFIRMED -> REVERSED.
// Only DRAFT entries may be edited or deleted; REVERSED is terminal.
type EntryStatus string

const (
	Draft     EntryStatus = "DRAFT"
	Confirmed EntryStatus = "CONFIRMED"
	Reversed  EntryStatus = "REVERSED"
)

// EntryKind classifies how a ledger entry originated.
type EntryKind string

const (
	Manual     EntryKind = "MANUAL"
	Automatic  EntryKind = "AUTOMATIC"
	Adjustment EntryKind = "ADJUSTMENT" // Reversal entries are always ADJUSTMENT
	Closing    EntryKind = "CLOSING"
)

// ValidEntryKind reports whether k is one of the known entry kinds.
func ValidEntryKind(k EntryKind) bool {
	switch k {
	case Manual, Automatic, Adjustment, Closing:
		return true
	}
	return false
}

// LedgerEntry is a double-entry bookkeeping record moving an amount from a
// credit account to a debit account. Invariant: DebitAccountID != CreditAccountID.
type LedgerEntry struct {
	EntryID           string          `json:"entryID"`
	Number            string          `json:"number"`         // Human readable reference, sequence-assigned at creation
	EntryDate         time.Time       `json:"entryDate"`      // When the entry was posted
	CompetenceDate    time.Time       `json:"competenceDate"` // Accounting period the entry belongs to
	DebitAccountID    string          `json:"debitAccountID"`
	CreditAccountID   string          `json:"creditAccountID"`
	Amount            decimal.Decimal `json:"amount"` // Strictly positive
	Memo              string          `json:"memo"`
	Kind              EntryKind       `json:"kind"`
	Status            EntryStatus     `json:"status"`
	ReferenceDocument string          `json:"referenceDocument,omitempty"`
	CostCenterID      *string         `json:"costCenterID,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	// ReversalEntryID is a mutual back-reference: on a reversed original it
	// points at the compensating ADJUSTMENT entry, on the compensating entry
	// it points back at the original.
	ReversalEntryID *string `json:"reversalEntryID,omitempty"`
	AuditFields
}

// IsEditable reports whether the entry may still be edited or deleted.
func (e LedgerEntry) IsEditable() bool {
	return e.Status == Draft
}

// IsReversible reports whether the entry may be reversed.
func (e LedgerEntry) IsReversible() bool {
	return e.Status == Confirmed
}

// Reversal builds the compensating entry for e: debit and credit swapped,
// amount and competence date preserved, kind ADJUSTMENT, linked back to e.
// The caller assigns EntryID, EntryDate and audit fields.
func (e LedgerEntry) Reversal() LedgerEntry {
	originalID := e.EntryID
	return LedgerEntry{
		DebitAccountID:    e.CreditAccountID,
		CreditAccountID:   e.DebitAccountID,
		Amount:            e.Amount,
		CompetenceDate:    e.CompetenceDate,
		Memo:              "Reversal: " + e.Memo,
		Kind:              Adjustment,
		Status:            Confirmed,
		ReferenceDocument: e.ReferenceDocument,
		CostCenterID:      e.CostCenterID,
		ReversalEntryID:   &originalID,
	}
}
