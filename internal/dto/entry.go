package dto

import (
	"time"

	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the payload for creating a ledger entry.
type CreateEntryRequest struct {
	EntryDate         time.Time        `json:"entryDate" binding:"required"`
	CompetenceDate    *time.Time       `json:"competenceDate"` // Defaults to EntryDate
	DebitAccountID    string           `json:"debitAccountID" binding:"required"`
	CreditAccountID   string           `json:"creditAccountID" binding:"required"`
	Amount            decimal.Decimal  `json:"amount" binding:"required"`
	Memo              string           `json:"memo" binding:"required"`
	Kind              domain.EntryKind `json:"kind"` // Defaults to MANUAL
	ReferenceDocument string           `json:"referenceDocument"`
	CostCenterID      *string          `json:"costCenterID"`
	Notes             string           `json:"notes"`
	// Draft creates the entry in DRAFT status instead of confirming it
	// immediately. Draft entries can still be edited and deleted.
	Draft bool `json:"draft"`
}

// UpdateEntryRequest defines the patch payload for editing a draft entry.
// Nil fields are left unchanged.
type UpdateEntryRequest struct {
	EntryDate         *time.Time        `json:"entryDate"`
	CompetenceDate    *time.Time        `json:"competenceDate"`
	DebitAccountID    *string           `json:"debitAccountID"`
	CreditAccountID   *string           `json:"creditAccountID"`
	Amount            *decimal.Decimal  `json:"amount"`
	Memo              *string           `json:"memo"`
	Kind              *domain.EntryKind `json:"kind"`
	ReferenceDocument *string           `json:"referenceDocument"`
	CostCenterID      *string           `json:"costCenterID"`
	Notes             *string           `json:"notes"`
}

// ListEntriesParams holds the query parameters for listing entries.
type ListEntriesParams struct {
	// Query matches memo or number, case-insensitive substring.
	Query string `form:"q"`
	// Status is one of all|draft|confirmed|reversed; empty means all.
	Status string `form:"status"`
	// From/To bound entryDate inclusively (YYYY-MM-DD).
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
	// Limit caps the page size; omit for the full filtered set.
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// EntryResponse defines the data returned for a ledger entry, with account
// names resolved for display.
type EntryResponse struct {
	EntryID           string          `json:"entryID"`
	Number            string          `json:"number"`
	EntryDate         time.Time       `json:"entryDate"`
	CompetenceDate    time.Time       `json:"competenceDate"`
	DebitAccountID    string          `json:"debitAccountID"`
	DebitAccountName  string          `json:"debitAccountName,omitempty"`
	CreditAccountID   string          `json:"creditAccountID"`
	CreditAccountName string          `json:"creditAccountName,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Memo              string          `json:"memo"`
	Kind              string          `json:"kind"`
	Status            string          `json:"status"`
	ReferenceDocument string          `json:"referenceDocument,omitempty"`
	CostCenterID      *string         `json:"costCenterID,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	ReversalEntryID   *string         `json:"reversalEntryID,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedBy         string          `json:"createdBy"`
}

// ListEntriesResponse is the paginated (or full) entry listing.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryResponse converts a domain.LedgerEntry to EntryResponse, resolving
// account names from the given lookup when present.
func ToEntryResponse(e *domain.LedgerEntry, accounts map[string]domain.Account) EntryResponse {
	resp := EntryResponse{
		EntryID:           e.EntryID,
		Number:            e.Number,
		EntryDate:         e.EntryDate,
		CompetenceDate:    e.CompetenceDate,
		DebitAccountID:    e.DebitAccountID,
		CreditAccountID:   e.CreditAccountID,
		Amount:            e.Amount,
		Memo:              e.Memo,
		Kind:              string(e.Kind),
		Status:            string(e.Status),
		ReferenceDocument: e.ReferenceDocument,
		CostCenterID:      e.CostCenterID,
		Notes:             e.Notes,
		ReversalEntryID:   e.ReversalEntryID,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
	}
	if acc, ok := accounts[e.DebitAccountID]; ok {
		resp.DebitAccountName = acc.Name
	}
	if acc, ok := accounts[e.CreditAccountID]; ok {
		resp.CreditAccountName = acc.Name
	}
	return resp
}

// ToEntryResponses converts a slice of entries, sharing one account lookup.
func ToEntryResponses(entries []domain.LedgerEntry, accounts map[string]domain.Account) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i], accounts)
	}
	return responses
}
