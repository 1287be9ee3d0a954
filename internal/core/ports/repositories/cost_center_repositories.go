package repositories

import (
	"context"

	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
)

// CostCenterReader defines read operations for cost center data.
type CostCenterReader interface {
	// FindCostCenterByID retrieves a specific cost center by its identifier.
	FindCostCenterByID(ctx context.Context, costCenterID string) (*domain.CostCenter, error)

	// ListCostCenters retrieves cost centers ordered by code.
	ListCostCenters(ctx context.Context, onlyActive bool) ([]domain.CostCenter, error)
}

// CostCenterWriter defines write operations for cost center data.
type CostCenterWriter interface {
	// SaveCostCenter persists a new cost center. Returns
	// apperrors.ErrDuplicate when the code is already taken.
	SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error
}

// CostCenterRepositoryFacade combines all cost center repository interfaces.
type CostCenterRepositoryFacade interface {
	CostCenterReader
	CostCenterWriter
}
