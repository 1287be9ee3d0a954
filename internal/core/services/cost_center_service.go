package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lotearq/ledger_backoffice_app/internal/apperrors"
	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	portsrepo "github.com/lotearq/ledger_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/lotearq/ledger_backoffice_app/internal/core/ports/services"
	"github.com/lotearq/ledger_backoffice_app/internal/dto"
	"github.com/lotearq/ledger_backoffice_app/internal/middleware"
)

// costCenterService manages the cost center registry that ledger entries
// reference for cost allocation.
type costCenterService struct {
	costCenterRepo portsrepo.CostCenterRepositoryFacade
}

// NewCostCenterService creates a new cost center service.
func NewCostCenterService(costCenterRepo portsrepo.CostCenterRepositoryFacade) portssvc.CostCenterSvcFacade {
	return &costCenterService{costCenterRepo: costCenterRepo}
}

var _ portssvc.CostCenterSvcFacade = (*costCenterService)(nil)

// CreateCostCenter registers a new cost center.
func (s *costCenterService) CreateCostCenter(ctx context.Context, req dto.CreateCostCenterRequest, creatorUserID string) (*domain.CostCenter, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: code and name are required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	costCenter := domain.CostCenter{
		CostCenterID: uuid.NewString(),
		Code:         code,
		Name:         name,
		Description:  req.Description,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.costCenterRepo.SaveCostCenter(ctx, costCenter); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: cost center code %s already exists", apperrors.ErrDuplicate, code)
		}
		logger.Error("Failed to save cost center", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save cost center: %w", err)
	}

	logger.Info("Cost center created", slog.String("cost_center_id", costCenter.CostCenterID), slog.String("code", code))
	return &costCenter, nil
}

// GetCostCenterByID retrieves a single cost center.
func (s *costCenterService) GetCostCenterByID(ctx context.Context, costCenterID string) (*domain.CostCenter, error) {
	costCenter, err := s.costCenterRepo.FindCostCenterByID(ctx, costCenterID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find cost center by ID", slog.String("error", err.Error()), slog.String("cost_center_id", costCenterID))
		}
		return nil, err
	}
	return costCenter, nil
}

// ListCostCenters retrieves cost centers ordered by code.
func (s *costCenterService) ListCostCenters(ctx context.Context, onlyActive bool) ([]domain.CostCenter, error) {
	centers, err := s.costCenterRepo.ListCostCenters(ctx, onlyActive)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list cost centers", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list cost centers: %w", err)
	}
	return centers, nil
}
