package services

import (
	"context"

	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	"github.com/lotearq/ledger_backoffice_app/internal/dto"
)

// LedgerReaderSvc defines read operations over ledger entries.
type LedgerReaderSvc interface {
	// GetEntryByID retrieves a single entry.
	GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves entries matching the given filters, most recent
	// entry date first, with account names resolved for display.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// LedgerWriterSvc defines the ledger protocol's mutating operations.
type LedgerWriterSvc interface {
	// CreateEntry validates and persists a new ledger entry.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.LedgerEntry, error)

	// UpdateEntry edits a draft entry. Non-draft entries are immutable.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.LedgerEntry, error)

	// ConfirmEntry transitions a draft entry to confirmed.
	ConfirmEntry(ctx context.Context, entryID string, userID string) (*domain.LedgerEntry, error)

	// ReverseEntry creates the compensating entry for a confirmed entry and
	// marks the original as reversed, atomically.
	ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.LedgerEntry, error)

	// DeleteEntry permanently removes a draft entry.
	DeleteEntry(ctx context.Context, entryID string, userID string) error
}

// LedgerSvcFacade combines the full ledger protocol surface.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
