package domain

// CostCenter groups ledger entries for cost allocation (a development project,
// a consortium group, an administrative department).
type CostCenter struct {
	CostCenterID string `json:"costCenterID"`
	Code         string `json:"code"` // Unique short code
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
