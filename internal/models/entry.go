package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry mirrors the ledger_entries table.
// Number is assigned by the entry number sequence inside the insert statement.
type LedgerEntry struct {
	EntryID           string          `db:"entry_id"`
	Number            string          `db:"number"`
	EntryDate         time.Time       `db:"entry_date"`
	CompetenceDate    time.Time       `db:"competence_date"`
	DebitAccountID    string          `db:"debit_account_id"`
	CreditAccountID   string          `db:"credit_account_id"`
	Amount            decimal.Decimal `db:"amount"`
	Memo              string          `db:"memo"`
	Kind              string          `db:"kind"`
	Status            string          `db:"status"`
	ReferenceDocument string          `db:"reference_document"` // Nullable
	CostCenterID      *string         `db:"cost_center_id"`     // Nullable FK
	Notes             string          `db:"notes"`              // Nullable
	ReversalEntryID   *string         `db:"reversal_entry_id"`  // Nullable, mutual back-reference
	AuditFields
}
