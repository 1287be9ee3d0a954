package mapping

import (
	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	"github.com/lotearq/ledger_backoffice_app/internal/models"
)

// ToDomainAccount converts a models.Account from the DB to domain.Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		Code:            m.Code,
		Name:            m.Name,
		IsAnalytic:      m.IsAnalytic,
		IsActive:        m.IsActive,
		ParentAccountID: m.ParentAccountID,
		Description:     m.Description,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
