package models

// CostCenter mirrors the cost_centers table.
type CostCenter struct {
	CostCenterID string `db:"cost_center_id"`
	Code         string `db:"code"`
	Name         string `db:"name"`
	Description  string `db:"description"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
