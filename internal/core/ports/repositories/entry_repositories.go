package repositories

import (
	"context"
	"time"

	"github.com/lotearq/ledger_backoffice_app/internal/core/domain"
)

// EntryListFilter narrows the entry listing. Zero values mean "no filter".
type EntryListFilter struct {
	// Query matches memo or number, case-insensitive substring.
	Query string
	// Status restricts to a single lifecycle status when non-empty.
	Status domain.EntryStatus
	// From/To bound entry_date inclusively.
	From *time.Time
	To   *time.Time
	// Limit caps the page size; 0 or negative returns the full filtered set.
	Limit int
	// NextToken is an opaque cursor from a previous page.
	NextToken *string
}

// EntryReader defines read operations for ledger entries.
type EntryReader interface {
	// FindEntryByID retrieves a specific entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves entries matching the filter, most recent
	// entry_date first. Returns the entries and, when a limit was applied and
	// more rows remain, a token for the next page.
	ListEntries(ctx context.Context, filter EntryListFilter) ([]domain.LedgerEntry, *string, error)
}

// EntryWriter defines write operations for ledger entries.
type EntryWriter interface {
	// CreateEntry persists a new entry, assigning its number from the entry
	// number sequence. Returns the persisted entry including the number.
	CreateEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)

	// UpdateEntry replaces the mutable fields of a draft entry.
	UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error

	// UpdateEntryStatus transitions an entry between statuses with a
	// compare-and-swap on the expected current status. Returns
	// apperrors.ErrConflict when the entry was concurrently moved out of the
	// expected status.
	UpdateEntryStatus(ctx context.Context, entryID string, from domain.EntryStatus, to domain.EntryStatus, updatedByUserID string, updatedAt time.Time) error

	// SaveReversal persists the compensating entry and flips the original
	// from CONFIRMED to REVERSED, linking the two, inside a single database
	// transaction. Returns apperrors.ErrConflict when the original is no
	// longer CONFIRMED (e.g. a concurrent reversal won). Returns the
	// persisted compensating entry including its assigned number.
	SaveReversal(ctx context.Context, originalEntryID string, reversal domain.LedgerEntry) (*domain.LedgerEntry, error)

	// DeleteEntry permanently removes an entry. Only the service-level draft
	// guard makes this reachable; confirmed entries are never deleted.
	DeleteEntry(ctx context.Context, entryID string) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}

// EntryRepositoryWithTx extends EntryRepositoryFacade with transaction capabilities.
type EntryRepositoryWithTx interface {
	EntryRepositoryFacade
	TransactionManager
}
