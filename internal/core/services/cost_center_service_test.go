package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lotearq/ledger_backoffice_app/internal/apperrors"
	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	portsrepo "github.com/lotearq/ledger_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/lotearq/ledger_backoffice_app/internal/core/ports/services"
	"github.com/lotearq/ledger_backoffice_app/internal/core/services"
	"github.com/lotearq/ledger_backoffice_app/internal/dto"
)

// --- Mock CostCenterRepository ---
type MockCostCenterRepository struct {
	mock.Mock
}

var _ portsrepo.CostCenterRepositoryFacade = (*MockCostCenterRepository)(nil)

func (m *MockCostCenterRepository) SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	args := m.Called(ctx, costCenter)
	return args.Error(0)
}

func (m *MockCostCenterRepository) FindCostCenterByID(ctx context.Context, costCenterID string) (*domain.CostCenter, error) {
	args := m.Called(ctx, costCenterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCenter), args.Error(1)
}

func (m *MockCostCenterRepository) ListCostCenters(ctx context.Context, onlyActive bool) ([]domain.CostCenter, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCenter), args.Error(1)
}

// --- Test Suite Setup ---
type CostCenterServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCostCenterRepository
	service  portssvc.CostCenterSvcFacade
	userID   string
}

func (suite *CostCenterServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCostCenterRepository)
	suite.service = services.NewCostCenterService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *CostCenterServiceTestSuite) TestCreateCostCenter_Success() {
	ctx := context.Background()
	req := dto.CreateCostCenterRequest{Code: "CC-01", Name: "Operations", Description: "Day-to-day operations"}

	suite.mockRepo.On("SaveCostCenter", ctx, mock.MatchedBy(func(cc domain.CostCenter) bool {
		return cc.Code == "CC-01" && cc.Name == "Operations" && cc.IsActive && cc.CostCenterID != ""
	})).Return(nil).Once()

	created, err := suite.service.CreateCostCenter(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal("CC-01", created.Code)
	suite.Equal(suite.userID, created.CreatedBy)
	suite.True(created.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CostCenterServiceTestSuite) TestCreateCostCenter_TrimsWhitespace() {
	ctx := context.Background()
	req := dto.CreateCostCenterRequest{Code: "  CC-02 ", Name: " Marketing "}

	suite.mockRepo.On("SaveCostCenter", ctx, mock.MatchedBy(func(cc domain.CostCenter) bool {
		return cc.Code == "CC-02" && cc.Name == "Marketing"
	})).Return(nil).Once()

	created, err := suite.service.CreateCostCenter(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("CC-02", created.Code)
}

func (suite *CostCenterServiceTestSuite) TestCreateCostCenter_MissingFields() {
	ctx := context.Background()

	_, err := suite.service.CreateCostCenter(ctx, dto.CreateCostCenterRequest{Code: "   ", Name: "X"}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCostCenter", mock.Anything, mock.Anything)
}

func (suite *CostCenterServiceTestSuite) TestCreateCostCenter_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateCostCenterRequest{Code: "CC-01", Name: "Operations"}

	suite.mockRepo.On("SaveCostCenter", ctx, mock.AnythingOfType("domain.CostCenter")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateCostCenter(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CostCenterServiceTestSuite) TestGetCostCenterByID_NotFound() {
	ctx := context.Background()
	ccID := uuid.NewString()

	suite.mockRepo.On("FindCostCenterByID", ctx, ccID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCostCenterByID(ctx, ccID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CostCenterServiceTestSuite) TestListCostCenters_OnlyActivePassedThrough() {
	ctx := context.Background()

	suite.mockRepo.On("ListCostCenters", ctx, true).Return([]domain.CostCenter{{CostCenterID: "cc-1", Code: "CC-01", IsActive: true}}, nil).Once()

	centers, err := suite.service.ListCostCenters(ctx, true)

	suite.Require().NoError(err)
	suite.Len(centers, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCostCenterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CostCenterServiceTestSuite))
}
