package services

import (
	"context"

	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
)

// AccountSvcFacade exposes the chart of accounts, read-only.
type AccountSvcFacade interface {
	// GetAccountByID retrieves a single account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountsByIDs retrieves multiple accounts keyed by ID.
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves accounts ordered by code, optionally restricted
	// to analytic and/or active accounts. The postable selection set shown to
	// users is ListAccounts(ctx, true, true).
	ListAccounts(ctx context.Context, onlyAnalytic bool, onlyActive bool) ([]domain.Account, error)
}
