package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// ReportingRepository provides the read-only aggregates for the dashboard.
type ReportingRepository interface {
	// GetNetWorth sums current balances over the user's active asset accounts.
	GetNetWorth(ctx context.Context, userID string) (decimal.Decimal, error)
	// CountAccounts counts the user's active accounts.
	CountAccounts(ctx context.Context, userID string) (int, error)
}
