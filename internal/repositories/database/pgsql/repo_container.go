package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/lotearq/ledger_backoffice_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds all pgx-backed repositories over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:    newPgxAccountRepository(pool),
		EntryRepo:      newPgxEntryRepository(pool),
		CostCenterRepo: newPgxCostCenterRepository(pool),
	}
}
