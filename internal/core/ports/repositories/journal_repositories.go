package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trackmint/finance_tracker_app/internal/core/domain"
)

// JournalReader provides read access to journals and their splits.
// Ownership is part of every lookup predicate so a journal belonging to
// another user is indistinguishable from a missing one.
type JournalReader interface {
	FindJournalByID(ctx context.Context, userID string, journalID string) (*domain.Journal, error)
	FindSplitsByJournalID(ctx context.Context, journalID string) ([]domain.Split, error)
	FindSplitsByJournalIDs(ctx context.Context, journalIDs []string) (map[string][]domain.Split, error)
	ListJournals(ctx context.Context, userID string, filter domain.JournalFilter) ([]domain.Journal, int64, error)
	SummarizeJournals(ctx context.Context, userID string, startDate *time.Time, endDate *time.Time) (domain.JournalTotals, error)
}

// JournalWriter provides the atomic write operations of the ledger core.
// SaveJournal and DeleteJournal each run as one database transaction covering
// the journal row, its split rows and the account balance deltas.
type JournalWriter interface {
	SaveJournal(ctx context.Context, journal domain.Journal, splits []domain.Split, balanceChanges map[string]decimal.Decimal) error
	UpdateJournal(ctx context.Context, journal domain.Journal) error
	DeleteJournal(ctx context.Context, journal domain.Journal, splits []domain.Split, balanceChanges map[string]decimal.Decimal) error
}

// JournalRepositoryFacade combines all journal repository capabilities.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
