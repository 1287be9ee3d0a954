package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lotearq/ledger_backoffice_app/internal/apperrors"
	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	portsrepo "github.com/lotearq/ledger_backoffice_app/internal/core/ports/repositories"
	"github.com/lotearq/ledger_backoffice_app/internal/models"
	"github.com/lotearq/ledger_backoffice_app/internal/utils/mapping"
)

const pgUniqueViolationCode = "23505"

// PgxCostCenterRepository persists cost centers.
type PgxCostCenterRepository struct {
	pool *pgxpool.Pool
}

// newPgxCostCenterRepository creates a new repository for cost center data.
func newPgxCostCenterRepository(pool *pgxpool.Pool) portsrepo.CostCenterRepositoryFacade {
	return &PgxCostCenterRepository{pool: pool}
}

// Ensure PgxCostCenterRepository implements portsrepo.CostCenterRepositoryFacade
var _ portsrepo.CostCenterRepositoryFacade = (*PgxCostCenterRepository)(nil)

const costCenterColumns = `cost_center_id, code, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanCostCenter(row pgx.Row) (models.CostCenter, error) {
	var m models.CostCenter
	var description sql.NullString

	err := row.Scan(
		&m.CostCenterID,
		&m.Code,
		&m.Name,
		&description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.CostCenter{}, err
	}
	if description.Valid {
		m.Description = description.String
	}
	return m, nil
}

// SaveCostCenter persists a new cost center. A unique constraint on code
// surfaces as apperrors.ErrDuplicate.
func (r *PgxCostCenterRepository) SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	m := mapping.ToModelCostCenter(costCenter)

	var description *string
	if m.Description != "" {
		description = &m.Description
	}

	query := `
		INSERT INTO cost_centers (
			cost_center_id, code, name, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.pool.Exec(ctx, query,
		m.CostCenterID,
		m.Code,
		m.Name,
		description,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return apperrors.NewAppError(409, "cost center code "+m.Code+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert cost center "+m.CostCenterID, err)
	}

	return nil
}

// FindCostCenterByID retrieves a cost center by its ID.
func (r *PgxCostCenterRepository) FindCostCenterByID(ctx context.Context, costCenterID string) (*domain.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE cost_center_id = $1;`

	m, err := scanCostCenter(r.pool.QueryRow(ctx, query, costCenterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find cost center by ID "+costCenterID, err)
	}

	costCenter := mapping.ToDomainCostCenter(m)
	return &costCenter, nil
}

// ListCostCenters retrieves cost centers ordered by code.
func (r *PgxCostCenterRepository) ListCostCenters(ctx context.Context, onlyActive bool) ([]domain.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM cost_centers`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY code;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cost centers", err)
	}
	defer rows.Close()

	costCenters := []domain.CostCenter{}
	for rows.Next() {
		m, err := scanCostCenter(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cost center row", err)
		}
		costCenters = append(costCenters, mapping.ToDomainCostCenter(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cost center rows", err)
	}

	return costCenters, nil
}
