package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lotearq/ledger_backoffice_app/internal/apperrors"
	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	portsrepo "github.com/lotearq/ledger_backoffice_app/internal/core/ports/repositories"
	"github.com/lotearq/ledger_backoffice_app/internal/core/services"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, onlyAnalytic bool, onlyActive bool) ([]domain.Account, error) {
	args := m.Called(ctx, onlyAnalytic, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func TestAccountService_GetAccountByID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAccountRepository)
	service := services.NewAccountService(mockRepo)

	account := &domain.Account{AccountID: uuid.NewString(), Code: "1.1", Name: "Cash", IsAnalytic: true, IsActive: true}
	mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	got, err := service.GetAccountByID(ctx, account.AccountID)

	require.NoError(t, err)
	assert.Equal(t, account.Code, got.Code)
	mockRepo.AssertExpectations(t)
}

func TestAccountService_GetAccountByID_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAccountRepository)
	service := services.NewAccountService(mockRepo)

	accountID := uuid.NewString()
	mockRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := service.GetAccountByID(ctx, accountID)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAccountService_ListAccounts_PassesFilters(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAccountRepository)
	service := services.NewAccountService(mockRepo)

	postable := []domain.Account{
		{AccountID: uuid.NewString(), Code: "1.1", Name: "Cash", IsAnalytic: true, IsActive: true},
		{AccountID: uuid.NewString(), Code: "3.1", Name: "Service Revenue", IsAnalytic: true, IsActive: true},
	}
	mockRepo.On("ListAccounts", ctx, true, true).Return(postable, nil).Once()

	accounts, err := service.ListAccounts(ctx, true, true)

	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	mockRepo.AssertExpectations(t)
}

func TestAccountService_GetAccountsByIDs_Error(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAccountRepository)
	service := services.NewAccountService(mockRepo)

	mockRepo.On("FindAccountsByIDs", ctx, mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := service.GetAccountsByIDs(ctx, []string{uuid.NewString()})

	require.Error(t, err)
}
