package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lotearq/ledger_backoffice_app/internal/apperrors"
	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	portssvc "github.com/lotearq/ledger_backoffice_app/internal/core/ports/services"
	"github.com/lotearq/ledger_backoffice_app/internal/dto"
	"github.com/lotearq/ledger_backoffice_app/internal/handlers"
	"github.com/lotearq/ledger_backoffice_app/internal/middleware"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

func (m *MockLedgerService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) ConfirmEntry(ctx context.Context, entryID string, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) DeleteEntry(ctx context.Context, entryID string, userID string) error {
	args := m.Called(ctx, entryID, userID)
	return args.Error(0)
}

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, onlyAnalytic bool, onlyActive bool) ([]domain.Account, error) {
	args := m.Called(ctx, onlyAnalytic, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Test Suite ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockLedgerService  *MockLedgerService
	mockAccountService *MockAccountService
	jwtSecret          string
	userID             string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *EntryHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "lba-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockLedgerService = new(MockLedgerService)
	suite.mockAccountService = new(MockAccountService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterEntryRoutes(v1, suite.mockLedgerService, suite.mockAccountService)
}

func (suite *EntryHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *EntryHandlerTestSuite) sampleEntry() *domain.LedgerEntry {
	return &domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		Number:          "LC-000123",
		EntryDate:       time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		CompetenceDate:  time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		DebitAccountID:  uuid.NewString(),
		CreditAccountID: uuid.NewString(),
		Amount:          decimal.NewFromFloat(1250.50),
		Memo:            "Consulting invoice 2026-042",
		Kind:            domain.Manual,
		Status:          domain.Confirmed,
	}
}

// --- Test Cases ---

func (suite *EntryHandlerTestSuite) TestCreateEntry_Success() {
	entry := suite.sampleEntry()

	suite.mockLedgerService.On("CreateEntry", mock.Anything, mock.MatchedBy(func(req dto.CreateEntryRequest) bool {
		return req.Memo == entry.Memo && req.Amount.Equal(entry.Amount)
	}), suite.userID).Return(entry, nil).Once()
	suite.mockAccountService.On("GetAccountsByIDs", mock.Anything, mock.Anything).Return(map[string]domain.Account{
		entry.DebitAccountID:  {AccountID: entry.DebitAccountID, Name: "Cash"},
		entry.CreditAccountID: {AccountID: entry.CreditAccountID, Name: "Service Revenue"},
	}, nil).Once()

	body := dto.CreateEntryRequest{
		EntryDate:       entry.EntryDate,
		DebitAccountID:  entry.DebitAccountID,
		CreditAccountID: entry.CreditAccountID,
		Amount:          entry.Amount,
		Memo:            entry.Memo,
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/entries", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entry.Number, resp.Number)
	suite.Equal("Cash", resp.DebitAccountName)
	suite.Equal("Service Revenue", resp.CreditAccountName)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_ValidationError() {
	suite.mockLedgerService.On("CreateEntry", mock.Anything, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: debit and credit accounts must differ", apperrors.ErrValidation)).Once()

	accountID := uuid.NewString()
	body := dto.CreateEntryRequest{
		EntryDate:       time.Now(),
		DebitAccountID:  accountID,
		CreditAccountID: accountID,
		Amount:          decimal.NewFromInt(100),
		Memo:            "same accounts",
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/entries", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "debit and credit accounts must differ")
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_Unauthorized() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/entries", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestGetEntry_NotFound() {
	entryID := uuid.NewString()
	suite.mockLedgerService.On("GetEntryByID", mock.Anything, entryID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/entries/"+entryID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EntryHandlerTestSuite) TestListEntries_Success() {
	expected := &dto.ListEntriesResponse{
		Entries: []dto.EntryResponse{{EntryID: uuid.NewString(), Number: "LC-000123", Status: string(domain.Confirmed)}},
	}

	suite.mockLedgerService.On("ListEntries", mock.Anything, mock.MatchedBy(func(p dto.ListEntriesParams) bool {
		return p.Status == "confirmed" && p.Query == "invoice" && p.Limit == 10
	})).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/entries?status=confirmed&q=invoice&limit=10", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 1)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestUpdateEntry_Conflict() {
	entryID := uuid.NewString()
	suite.mockLedgerService.On("UpdateEntry", mock.Anything, entryID, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: only draft entries can be edited", apperrors.ErrInvalidState)).Once()

	memo := "new memo"
	w := suite.doRequest(http.MethodPut, "/api/v1/entries/"+entryID, dto.UpdateEntryRequest{Memo: &memo})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "only draft entries can be edited")
}

func (suite *EntryHandlerTestSuite) TestConfirmEntry_Success() {
	entry := suite.sampleEntry()

	suite.mockLedgerService.On("ConfirmEntry", mock.Anything, entry.EntryID, suite.userID).Return(entry, nil).Once()
	suite.mockAccountService.On("GetAccountsByIDs", mock.Anything, mock.Anything).Return(map[string]domain.Account{}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/entries/"+entry.EntryID+"/confirm", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestReverseEntry_Success() {
	entry := suite.sampleEntry()
	originalID := uuid.NewString()
	entry.Kind = domain.Adjustment
	entry.ReversalEntryID = &originalID

	suite.mockLedgerService.On("ReverseEntry", mock.Anything, originalID, suite.userID).Return(entry, nil).Once()
	suite.mockAccountService.On("GetAccountsByIDs", mock.Anything, mock.Anything).Return(map[string]domain.Account{}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/entries/"+originalID+"/reverse", nil)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.Adjustment), resp.Kind)
	suite.Require().NotNil(resp.ReversalEntryID)
	suite.Equal(originalID, *resp.ReversalEntryID)
}

func (suite *EntryHandlerTestSuite) TestReverseEntry_InvalidState() {
	entryID := uuid.NewString()
	suite.mockLedgerService.On("ReverseEntry", mock.Anything, entryID, suite.userID).
		Return(nil, fmt.Errorf("%w: only confirmed entries can be reversed", apperrors.ErrInvalidState)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/entries/"+entryID+"/reverse", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry_Success() {
	entryID := uuid.NewString()
	suite.mockLedgerService.On("DeleteEntry", mock.Anything, entryID, suite.userID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/entries/"+entryID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry_ConfirmedRefused() {
	entryID := uuid.NewString()
	suite.mockLedgerService.On("DeleteEntry", mock.Anything, entryID, suite.userID).
		Return(fmt.Errorf("%w: only draft entries can be deleted", apperrors.ErrInvalidState)).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/entries/"+entryID, nil)

	suite.Equal(http.StatusConflict, w.Code)
}

// --- Run Test Suite ---
func TestEntryHandler(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
