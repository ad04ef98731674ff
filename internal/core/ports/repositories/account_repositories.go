package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/trackmint/finance_tracker_app/internal/core/domain"
)

// AccountReader provides read access to accounts.
type AccountReader interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter provides write access to accounts.
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountBalanceMutator mutates account balances inside an existing database
// transaction. Deltas are relative increments applied to both current_balance
// and virtual_balance; callers never pass absolute values.
type AccountBalanceMutator interface {
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)
	ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account repository capabilities.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountBalanceMutator
}
