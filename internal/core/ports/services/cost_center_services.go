package services

import (
	"context"

	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	"github.com/lotearq/ledger_backoffice_app/internal/dto"
)

// CostCenterSvcFacade manages the cost center registry.
type CostCenterSvcFacade interface {
	// CreateCostCenter registers a new cost center.
	CreateCostCenter(ctx context.Context, req dto.CreateCostCenterRequest, creatorUserID string) (*domain.CostCenter, error)

	// GetCostCenterByID retrieves a single cost center.
	GetCostCenterByID(ctx context.Context, costCenterID string) (*domain.CostCenter, error)

	// ListCostCenters retrieves cost centers ordered by code.
	ListCostCenters(ctx context.Context, onlyActive bool) ([]domain.CostCenter, error)
}
