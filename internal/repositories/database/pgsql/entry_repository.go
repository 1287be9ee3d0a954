package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lotearq/ledger_backoffice_app/internal/apperrors"
	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	portsrepo "github.com/lotearq/ledger_backoffice_app/internal/core/ports/repositories"
	"github.com/lotearq/ledger_backoffice_app/internal/models"
	"github.com/lotearq/ledger_backoffice_app/internal/utils/mapping"
	"github.com/lotearq/ledger_backoffice_app/internal/utils/pagination"
)

// PgxEntryRepository persists ledger entries. Entry numbers come from the
// ledger_entry_number_seq sequence so uniqueness is guaranteed by the
// database rather than by wall-clock tokens.
type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for ledger entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryWithTx {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryWithTx
var _ portsrepo.EntryRepositoryWithTx = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, number, entry_date, competence_date, debit_account_id, credit_account_id, amount, memo, kind, status, reference_document, cost_center_id, notes, reversal_entry_id, created_at, created_by, last_updated_at, last_updated_by`

const insertEntryQuery = `
	INSERT INTO ledger_entries (
		entry_id, number, entry_date, competence_date, debit_account_id, credit_account_id,
		amount, memo, kind, status, reference_document, cost_center_id, notes, reversal_entry_id,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, 'LC-' || lpad(nextval('ledger_entry_number_seq')::text, 6, '0'),
	        $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	RETURNING number;
`

func scanEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	var referenceDocument sql.NullString
	var notes sql.NullString
	var costCenterID sql.NullString
	var reversalEntryID sql.NullString

	err := row.Scan(
		&m.EntryID,
		&m.Number,
		&m.EntryDate,
		&m.CompetenceDate,
		&m.DebitAccountID,
		&m.CreditAccountID,
		&m.Amount,
		&m.Memo,
		&m.Kind,
		&m.Status,
		&referenceDocument,
		&costCenterID,
		&notes,
		&reversalEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.LedgerEntry{}, err
	}
	if referenceDocument.Valid {
		m.ReferenceDocument = referenceDocument.String
	}
	if notes.Valid {
		m.Notes = notes.String
	}
	if costCenterID.Valid {
		m.CostCenterID = &costCenterID.String
	}
	if reversalEntryID.Valid {
		m.ReversalEntryID = &reversalEntryID.String
	}
	return m, nil
}

// insertEntryTx inserts an entry using the given query executor and returns
// the sequence-assigned number.
func insertEntryTx(ctx context.Context, q interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}, entry domain.LedgerEntry) (string, error) {
	m := mapping.ToModelLedgerEntry(entry)

	var referenceDocument, notes *string
	if m.ReferenceDocument != "" {
		referenceDocument = &m.ReferenceDocument
	}
	if m.Notes != "" {
		notes = &m.Notes
	}

	var number string
	err := q.QueryRow(ctx, insertEntryQuery,
		m.EntryID,
		m.EntryDate,
		m.CompetenceDate,
		m.DebitAccountID,
		m.CreditAccountID,
		m.Amount,
		m.Memo,
		m.Kind,
		m.Status,
		referenceDocument,
		m.CostCenterID,
		notes,
		m.ReversalEntryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&number)
	if err != nil {
		return "", err
	}
	return number, nil
}

// CreateEntry persists a new entry and returns it with the assigned number.
func (r *PgxEntryRepository) CreateEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	number, err := insertEntryTx(ctx, r.Pool, entry)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert ledger entry "+entry.EntryID, err)
	}
	entry.Number = number
	return &entry, nil
}

// FindEntryByID retrieves an entry by its ID.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}

	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// ListEntries retrieves entries matching the filter, most recent entry_date
// first with created_at as the tie-breaker. With a positive limit one extra
// row is fetched to decide whether a next-page token is needed.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, filter portsrepo.EntryListFilter) ([]domain.LedgerEntry, *string, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE 1=1`
	args := []interface{}{}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := strconv.Itoa(len(args))
		query += ` AND (memo ILIKE $` + n + ` OR number ILIKE $` + n + `)`
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND entry_date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND entry_date <= $` + strconv.Itoa(len(args))
	}

	if filter.NextToken != nil && *filter.NextToken != "" {
		lastEntryDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*filter.NextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastEntryDate, lastCreatedAt)
		query += ` AND (entry_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	query += ` ORDER BY entry_date DESC, created_at DESC`

	fetchLimit := 0
	if filter.Limit > 0 {
		fetchLimit = filter.Limit + 1
		args = append(args, fetchLimit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	query += `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries", err)
	}
	defer rows.Close()

	modelEntries := []models.LedgerEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		modelEntries = append(modelEntries, m)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	var nextTokenVal *string
	results := modelEntries
	if filter.Limit > 0 && len(modelEntries) > filter.Limit {
		lastEntry := modelEntries[filter.Limit-1]
		token := pagination.EncodeToken(lastEntry.EntryDate, lastEntry.CreatedAt)
		nextTokenVal = &token
		results = modelEntries[:filter.Limit]
	}

	return mapping.ToDomainLedgerEntrySlice(results), nextTokenVal, nil
}

// UpdateEntry replaces the mutable fields of a draft entry. The status guard
// is repeated at the database level so a concurrently confirmed entry is
// never overwritten.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)

	var referenceDocument, notes *string
	if m.ReferenceDocument != "" {
		referenceDocument = &m.ReferenceDocument
	}
	if m.Notes != "" {
		notes = &m.Notes
	}

	query := `
		UPDATE ledger_entries
		SET entry_date = $2,
		    competence_date = $3,
		    debit_account_id = $4,
		    credit_account_id = $5,
		    amount = $6,
		    memo = $7,
		    kind = $8,
		    reference_document = $9,
		    cost_center_id = $10,
		    notes = $11,
		    last_updated_at = $12,
		    last_updated_by = $13
		WHERE entry_id = $1 AND status = 'DRAFT';
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.EntryDate,
		m.CompetenceDate,
		m.DebitAccountID,
		m.CreditAccountID,
		m.Amount,
		m.Memo,
		m.Kind,
		referenceDocument,
		m.CostCenterID,
		notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update ledger entry "+m.EntryID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "entry "+m.EntryID+" is not a draft or does not exist", apperrors.ErrConflict)
	}

	return nil
}

// UpdateEntryStatus transitions an entry's status with a compare-and-swap on
// the expected current status.
func (r *PgxEntryRepository) UpdateEntryStatus(ctx context.Context, entryID string, from domain.EntryStatus, to domain.EntryStatus, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE ledger_entries
		SET status = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE entry_id = $1 AND status = $2;
	`

	cmdTag, err := r.Pool.Exec(ctx, query, entryID, string(from), string(to), updatedAt, updatedByUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of entry "+entryID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "entry "+entryID+" is no longer in status "+string(from), apperrors.ErrConflict)
	}

	return nil
}

// SaveReversal persists the compensating entry and flips the original from
// CONFIRMED to REVERSED inside a single database transaction. The
// compare-and-swap on the original's status makes concurrent reversals safe:
// the loser's update affects zero rows, the transaction rolls back, and no
// orphaned compensating entry remains.
func (r *PgxEntryRepository) SaveReversal(ctx context.Context, originalEntryID string, reversal domain.LedgerEntry) (*domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // No-op once committed

	number, err := insertEntryTx(ctx, tx, reversal)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert reversal entry for "+originalEntryID, err)
	}
	reversal.Number = number

	linkQuery := `
		UPDATE ledger_entries
		SET status = 'REVERSED',
		    reversal_entry_id = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE entry_id = $1 AND status = 'CONFIRMED';
	`

	cmdTag, err := tx.Exec(ctx, linkQuery, originalEntryID, reversal.EntryID, reversal.LastUpdatedAt, reversal.LastUpdatedBy)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to mark entry "+originalEntryID+" as reversed", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.NewAppError(409, "entry "+originalEntryID+" is no longer confirmed", apperrors.ErrConflict)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &reversal, nil
}

// DeleteEntry permanently removes an entry. The draft guard lives in the
// service; the status predicate here is a second line of defense.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	query := `DELETE FROM ledger_entries WHERE entry_id = $1 AND status = 'DRAFT';`

	cmdTag, err := r.Pool.Exec(ctx, query, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete entry "+entryID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "entry "+entryID+" is not a draft or does not exist", apperrors.ErrConflict)
	}

	return nil
}
