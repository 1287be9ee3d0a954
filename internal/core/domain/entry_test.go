package domain_test

import (
	"testing"
	"time"

	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLedgerEntry_StatusGuards(t *testing.T) {
	tests := []struct {
		name           string
		status         domain.EntryStatus
		wantEditable   bool
		wantReversible bool
	}{
		{name: "draft entry is editable but not reversible", status: domain.Draft, wantEditable: true, wantReversible: false},
		{name: "confirmed entry is reversible but not editable", status: domain.Confirmed, wantEditable: false, wantReversible: true},
		{name: "reversed entry is terminal", status: domain.Reversed, wantEditable: false, wantReversible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := domain.LedgerEntry{Status: tt.status}
			assert.Equal(t, tt.wantEditable, e.IsEditable())
			assert.Equal(t, tt.wantReversible, e.IsReversible())
		})
	}
}

func TestLedgerEntry_Reversal(t *testing.T) {
	costCenterID := "cc-1"
	original := domain.LedgerEntry{
		EntryID:           "entry-1",
		Number:            "LC-000042",
		EntryDate:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CompetenceDate:    time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		DebitAccountID:    "acc-debit",
		CreditAccountID:   "acc-credit",
		Amount:            decimal.NewFromInt(200),
		Memo:              "Office rent",
		Kind:              domain.Manual,
		Status:            domain.Confirmed,
		ReferenceDocument: "NF-123",
		CostCenterID:      &costCenterID,
	}

	rev := original.Reversal()

	assert.Equal(t, original.CreditAccountID, rev.DebitAccountID)
	assert.Equal(t, original.DebitAccountID, rev.CreditAccountID)
	assert.True(t, rev.Amount.Equal(original.Amount))
	assert.Equal(t, original.CompetenceDate, rev.CompetenceDate)
	assert.Equal(t, domain.Adjustment, rev.Kind)
	assert.Equal(t, domain.Confirmed, rev.Status)
	assert.Equal(t, "Reversal: Office rent", rev.Memo)
	assert.Equal(t, original.ReferenceDocument, rev.ReferenceDocument)
	assert.Equal(t, original.CostCenterID, rev.CostCenterID)
	if assert.NotNil(t, rev.ReversalEntryID) {
		assert.Equal(t, original.EntryID, *rev.ReversalEntryID)
	}
}

func TestValidEntryKind(t *testing.T) {
	for _, k := range []domain.EntryKind{domain.Manual, domain.Automatic, domain.Adjustment, domain.Closing} {
		assert.True(t, domain.ValidEntryKind(k))
	}
	assert.False(t, domain.ValidEntryKind(domain.EntryKind("TRANSFER")))
	assert.False(t, domain.ValidEntryKind(domain.EntryKind("")))
}

func TestAccount_IsPostable(t *testing.T) {
	tests := []struct {
		name    string
		account domain.Account
		want    bool
	}{
		{name: "analytic active", account: domain.Account{IsAnalytic: true, IsActive: true}, want: true},
		{name: "synthetic active", account: domain.Account{IsAnalytic: false, IsActive: true}, want: false},
		{name: "analytic inactive", account: domain.Account{IsAnalytic: true, IsActive: false}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.account.IsPostable())
		})
	}
}
