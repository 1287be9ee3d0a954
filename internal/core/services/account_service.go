package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lotearq/ledger_backoffice_app/internal/apperrors"
	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	portsrepo "github.com/lotearq/ledger_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/lotearq/ledger_backoffice_app/internal/core/ports/services"
	"github.com/lotearq/ledger_backoffice_app/internal/middleware"
)

// accountService exposes the seeded chart of accounts, read-only. The chart
// itself is maintained by an external chart-of-accounts manager.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find account by ID", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountsByIDs retrieves multiple accounts keyed by ID. Missing IDs are
// simply absent from the result; callers decide whether that is an error.
func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to fetch accounts by IDs", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context, onlyAnalytic bool, onlyActive bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, onlyAnalytic, onlyActive)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
