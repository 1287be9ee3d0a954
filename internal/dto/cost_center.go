package dto

import "github.com/lotearq/ledger_backoffice_app/internal/core/domain"

// CreateCostCenterRequest defines the payload for registering a cost center.
type CreateCostCenterRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CostCenterResponse defines the data returned for a cost center.
type CostCenterResponse struct {
	CostCenterID string `json:"costCenterID"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"isActive"`
}

// ToCostCenterResponse converts a domain.CostCenter to CostCenterResponse.
func ToCostCenterResponse(cc *domain.CostCenter) CostCenterResponse {
	return CostCenterResponse{
		CostCenterID: cc.CostCenterID,
		Code:         cc.Code,
		Name:         cc.Name,
		Description:  cc.Description,
		IsActive:     cc.IsActive,
	}
}

// ToCostCenterResponses converts a slice of domain cost centers.
func ToCostCenterResponses(centers []domain.CostCenter) []CostCenterResponse {
	responses := make([]CostCenterResponse, len(centers))
	for i := range centers {
		responses[i] = ToCostCenterResponse(&centers[i])
	}
	return responses
}
