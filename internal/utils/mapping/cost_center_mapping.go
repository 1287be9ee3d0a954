package mapping

import (
	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	"github.com/lotearq/ledger_backoffice_app/internal/models"
)

// ToModelCostCenter converts a domain.CostCenter to models.CostCenter for DB storage.
func ToModelCostCenter(d domain.CostCenter) models.CostCenter {
	return models.CostCenter{
		CostCenterID: d.CostCenterID,
		Code:         d.Code,
		Name:         d.Name,
		Description:  d.Description,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCostCenter converts a models.CostCenter from the DB to domain.CostCenter.
func ToDomainCostCenter(m models.CostCenter) domain.CostCenter {
	return domain.CostCenter{
		CostCenterID: m.CostCenterID,
		Code:         m.Code,
		Name:         m.Name,
		Description:  m.Description,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
