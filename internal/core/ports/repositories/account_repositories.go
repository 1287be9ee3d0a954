package repositories

import (
	"context"

	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
)

// AccountReader defines read operations over the chart of accounts.
// The chart is seeded by migrations and maintained externally, so there is no
// writer interface here.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves accounts ordered by code, optionally restricted
	// to analytic and/or active accounts.
	ListAccounts(ctx context.Context, onlyAnalytic bool, onlyActive bool) ([]domain.Account, error)
}

// AccountRepositoryFacade is the full account repository surface.
type AccountRepositoryFacade interface {
	AccountReader
}
