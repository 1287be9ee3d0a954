package services

import (
	portsrepo "github.com/lotearq/ledger_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/lotearq/ledger_backoffice_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.CostCenter = NewCostCenterService(repos.CostCenterRepo)
	// The ledger service validates against both registries.
	container.Ledger = NewEntryService(repos.EntryRepo, container.Account, container.CostCenter)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade    = (*accountService)(nil)
	_ portssvc.LedgerSvcFacade     = (*entryService)(nil)
	_ portssvc.CostCenterSvcFacade = (*costCenterService)(nil)
)
