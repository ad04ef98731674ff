package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/trackmint/finance_tracker_app/internal/apperrors"
	"github.com/trackmint/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/trackmint/finance_tracker_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for dashboard aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetNetWorth sums current balances over the user's active asset accounts.
func (r *PgxReportingRepository) GetNetWorth(ctx context.Context, userID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(current_balance), 0)
		FROM accounts
		WHERE user_id = $1 AND account_type = $2 AND is_active = TRUE;
	`

	var netWorth decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, userID, string(domain.Asset)).Scan(&netWorth)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to compute net worth for user "+userID, err)
	}

	return netWorth, nil
}

// CountAccounts counts the user's active accounts.
func (r *PgxReportingRepository) CountAccounts(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM accounts WHERE user_id = $1 AND is_active = TRUE;`

	var count int
	err := r.Pool.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count accounts for user "+userID, err)
	}

	return count, nil
}
