package mapping

import (
	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	"github.com/lotearq/ledger_backoffice_app/internal/models"
)

// ToModelLedgerEntry converts a domain.LedgerEntry to models.LedgerEntry for DB storage.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:           d.EntryID,
		Number:            d.Number,
		EntryDate:         d.EntryDate,
		CompetenceDate:    d.CompetenceDate,
		DebitAccountID:    d.DebitAccountID,
		CreditAccountID:   d.CreditAccountID,
		Amount:            d.Amount,
		Memo:              d.Memo,
		Kind:              string(d.Kind),
		Status:            string(d.Status),
		ReferenceDocument: d.ReferenceDocument,
		CostCenterID:      d.CostCenterID,
		Notes:             d.Notes,
		ReversalEntryID:   d.ReversalEntryID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a models.LedgerEntry from the DB to domain.LedgerEntry.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:           m.EntryID,
		Number:            m.Number,
		EntryDate:         m.EntryDate,
		CompetenceDate:    m.CompetenceDate,
		DebitAccountID:    m.DebitAccountID,
		CreditAccountID:   m.CreditAccountID,
		Amount:            m.Amount,
		Memo:              m.Memo,
		Kind:              domain.EntryKind(m.Kind),
		Status:            domain.EntryStatus(m.Status),
		ReferenceDocument: m.ReferenceDocument,
		CostCenterID:      m.CostCenterID,
		Notes:             m.Notes,
		ReversalEntryID:   m.ReversalEntryID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts a slice of models.LedgerEntry.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	entries := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		entries[i] = ToDomainLedgerEntry(m)
	}
	return entries
}
