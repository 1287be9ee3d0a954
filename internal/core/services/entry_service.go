package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lotearq/ledger_backoffice_app/internal/apperrors"
	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
	portsrepo "github.com/lotearq/ledger_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/lotearq/ledger_backoffice_app/internal/core/ports/services"
	"github.com/lotearq/ledger_backoffice_app/internal/dto"
	"github.com/lotearq/ledger_backoffice_app/internal/middleware"
)

// entryService implements the ledger protocol: it validates, creates and
// reverses entries and drives the DRAFT -> CONFIRMED -> REVERSED state machine.
type entryService struct {
	entryRepo     portsrepo.EntryRepositoryWithTx
	accountSvc    portssvc.AccountSvcFacade
	costCenterSvc portssvc.CostCenterSvcFacade
}

// NewEntryService creates a new ledger entry service.
func NewEntryService(entryRepo portsrepo.EntryRepositoryWithTx, accountSvc portssvc.AccountSvcFacade, costCenterSvc portssvc.CostCenterSvcFacade) portssvc.LedgerSvcFacade {
	return &entryService{
		entryRepo:     entryRepo,
		accountSvc:    accountSvc,
		costCenterSvc: costCenterSvc,
	}
}

// Ensure entryService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*entryService)(nil)

// validateEntry runs the full create-level validation over an assembled entry.
// It is re-run in full on updates as well, since a patch can reintroduce a
// violation (e.g. make debit and credit accounts equal).
func (s *entryService) validateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	if entry.DebitAccountID == "" || entry.CreditAccountID == "" || entry.Memo == "" || entry.Amount.IsZero() {
		return fmt.Errorf("%w: missing required fields", apperrors.ErrValidation)
	}
	if entry.DebitAccountID == entry.CreditAccountID {
		return fmt.Errorf("%w: debit and credit accounts must differ", apperrors.ErrValidation)
	}
	if entry.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: entry amount must be positive", apperrors.ErrValidation)
	}
	if !domain.ValidEntryKind(entry.Kind) {
		return fmt.Errorf("%w: unknown entry kind %q", apperrors.ErrValidation, entry.Kind)
	}
	if entry.EntryDate.IsZero() {
		return fmt.Errorf("%w: entry date is required", apperrors.ErrValidation)
	}

	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, []string{entry.DebitAccountID, entry.CreditAccountID})
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, accountID := range []string{entry.DebitAccountID, entry.CreditAccountID} {
		acc, found := accountsMap[accountID]
		if !found {
			return fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, accountID)
		}
		if !acc.IsPostable() {
			return fmt.Errorf("%w: account %s (%s) is not postable", apperrors.ErrValidation, acc.Code, accountID)
		}
	}

	if entry.CostCenterID != nil && *entry.CostCenterID != "" {
		if _, err := s.costCenterSvc.GetCostCenterByID(ctx, *entry.CostCenterID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: cost center %s not found", apperrors.ErrValidation, *entry.CostCenterID)
			}
			return fmt.Errorf("failed to fetch cost center: %w", err)
		}
	}

	return nil
}

// CreateEntry validates and persists a new ledger entry.
// Implements portssvc.LedgerWriterSvc
func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()

	kind := req.Kind
	if kind == "" {
		kind = domain.Manual
	}
	competenceDate := req.EntryDate
	if req.CompetenceDate != nil {
		competenceDate = *req.CompetenceDate
	}
	status := domain.Confirmed
	if req.Draft {
		status = domain.Draft
	}

	entry := domain.LedgerEntry{
		EntryID:           uuid.NewString(),
		EntryDate:         req.EntryDate,
		CompetenceDate:    competenceDate,
		DebitAccountID:    req.DebitAccountID,
		CreditAccountID:   req.CreditAccountID,
		Amount:            req.Amount,
		Memo:              req.Memo,
		Kind:              kind,
		Status:            status,
		ReferenceDocument: req.ReferenceDocument,
		CostCenterID:      req.CostCenterID,
		Notes:             req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// Fail fast: no write happens unless the whole entry validates.
	if err := s.validateEntry(ctx, entry); err != nil {
		return nil, err
	}

	created, err := s.entryRepo.CreateEntry(ctx, entry)
	if err != nil {
		logger.Error("Failed to save ledger entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	logger.Info("Ledger entry created", slog.String("entry_id", created.EntryID), slog.String("number", created.Number), slog.String("status", string(created.Status)))
	return created, nil
}

// GetEntryByID retrieves a single entry.
// Implements portssvc.LedgerReaderSvc
func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find entry by ID", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// parseStatusFilter maps the presentation-level status value (all|draft|
// confirmed|reversed, case-insensitive) to a domain status. Empty and "all"
// mean no filter.
func parseStatusFilter(status string) (domain.EntryStatus, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", "all":
		return "", nil
	case "draft":
		return domain.Draft, nil
	case "confirmed":
		return domain.Confirmed, nil
	case "reversed":
		return domain.Reversed, nil
	}
	return "", fmt.Errorf("%w: unknown status filter %q", apperrors.ErrValidation, status)
}

// ListEntries retrieves entries matching the given filters, most recent entry
// date first, resolving account names for display.
// Implements portssvc.LedgerReaderSvc
func (s *entryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	statusFilter, err := parseStatusFilter(params.Status)
	if err != nil {
		return nil, err
	}

	filter := portsrepo.EntryListFilter{
		Query:     params.Query,
		Status:    statusFilter,
		From:      params.From,
		To:        params.To,
		Limit:     params.Limit,
		NextToken: params.NextToken,
	}

	entries, nextToken, err := s.entryRepo.ListEntries(ctx, filter)
	if err != nil {
		logger.Error("Failed to list entries from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	// Resolve account names for display. A lookup failure degrades the
	// listing to bare IDs instead of failing the whole request.
	accountIDs := make([]string, 0, len(entries)*2)
	for _, entry := range entries {
		accountIDs = append(accountIDs, entry.DebitAccountID, entry.CreditAccountID)
	}
	var accountsMap map[string]domain.Account
	if len(accountIDs) > 0 {
		accountsMap, err = s.accountSvc.GetAccountsByIDs(ctx, uniqueStrings(accountIDs))
		if err != nil {
			logger.Warn("Failed to resolve account names for entry listing", slog.String("error", err.Error()))
			accountsMap = nil
		}
	}

	resp := &dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries, accountsMap),
		NextToken: nextToken,
	}

	logger.Debug("Entries listed", slog.Int("count", len(entries)))
	return resp, nil
}

// UpdateEntry edits a draft entry. Confirmed and reversed entries are immutable.
// Implements portssvc.LedgerWriterSvc
func (s *entryService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if !entry.IsEditable() {
		return nil, fmt.Errorf("%w: only draft entries can be edited", apperrors.ErrInvalidState)
	}

	if req.EntryDate != nil {
		entry.EntryDate = *req.EntryDate
	}
	if req.CompetenceDate != nil {
		entry.CompetenceDate = *req.CompetenceDate
	}
	if req.DebitAccountID != nil {
		entry.DebitAccountID = *req.DebitAccountID
	}
	if req.CreditAccountID != nil {
		entry.CreditAccountID = *req.CreditAccountID
	}
	if req.Amount != nil {
		entry.Amount = *req.Amount
	}
	if req.Memo != nil {
		entry.Memo = *req.Memo
	}
	if req.Kind != nil {
		entry.Kind = *req.Kind
	}
	if req.ReferenceDocument != nil {
		entry.ReferenceDocument = *req.ReferenceDocument
	}
	if req.CostCenterID != nil {
		entry.CostCenterID = req.CostCenterID
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}

	// The merged entry goes through the same validation as creation.
	if err := s.validateEntry(ctx, *entry); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		logger.Error("Failed to save entry update", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save entry update: %w", err)
	}

	logger.Info("Ledger entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

// ConfirmEntry transitions a draft entry to confirmed.
// Implements portssvc.LedgerWriterSvc
func (s *entryService) ConfirmEntry(ctx context.Context, entryID string, userID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: only draft entries can be confirmed", apperrors.ErrInvalidState)
	}

	now := time.Now().UTC()
	if err := s.entryRepo.UpdateEntryStatus(ctx, entryID, domain.Draft, domain.Confirmed, userID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Entry left draft status concurrently", slog.String("entry_id", entryID))
		} else {
			logger.Error("Failed to confirm entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	entry.Status = domain.Confirmed
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	logger.Info("Ledger entry confirmed", slog.String("entry_id", entryID))
	return entry, nil
}

// ReverseEntry creates the compensating entry for a confirmed entry and marks
// the original as reversed. Both writes happen in a single database
// transaction, with a compare-and-swap on the original's status, so a
// concurrent reversal cannot double-compensate the movement and a failure
// cannot leave an orphaned compensating entry behind.
// Implements portssvc.LedgerWriterSvc
func (s *entryService) ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if !entry.IsReversible() {
		return nil, fmt.Errorf("%w: only confirmed entries can be reversed", apperrors.ErrInvalidState)
	}

	now := time.Now().UTC()
	reversal := entry.Reversal()
	reversal.EntryID = uuid.NewString()
	reversal.EntryDate = now
	reversal.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	persisted, err := s.entryRepo.SaveReversal(ctx, entry.EntryID, reversal)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Entry was no longer confirmed at reversal time", slog.String("entry_id", entryID))
			return nil, fmt.Errorf("%w: only confirmed entries can be reversed", apperrors.ErrInvalidState)
		}
		logger.Error("Failed to save reversal", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to reverse entry: %w", err)
	}

	logger.Info("Ledger entry reversed", slog.String("entry_id", entryID), slog.String("reversal_entry_id", persisted.EntryID), slog.String("reversal_number", persisted.Number))
	return persisted, nil
}

// DeleteEntry permanently removes a draft entry. Entries are never physically
// deleted once confirmed; they can only be reversed.
// Implements portssvc.LedgerWriterSvc
func (s *entryService) DeleteEntry(ctx context.Context, entryID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}

	if !entry.IsEditable() {
		return fmt.Errorf("%w: only draft entries can be deleted", apperrors.ErrInvalidState)
	}

	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		logger.Error("Failed to delete draft entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	logger.Info("Draft entry deleted", slog.String("entry_id", entryID), slog.String("deleted_by", userID))
	return nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
