package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/trackmint/finance_tracker_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql-backed repositories over one
// connection pool. The journal repository shares the account repository so
// balance deltas run inside the journal transaction.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(pool)

	return &portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		JournalRepo:   newPgxJournalRepository(pool, accountRepo),
		CategoryRepo:  newPgxCategoryRepository(pool),
		ReportingRepo: newPgxReportingRepository(pool),
	}
}
