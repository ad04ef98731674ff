package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/trackmint/finance_tracker_app/internal/apperrors"
	"github.com/trackmint/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/trackmint/finance_tracker_app/internal/core/ports/repositories"
	"github.com/trackmint/finance_tracker_app/internal/models"
	"github.com/trackmint/finance_tracker_app/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxJournalRepository creates a new repository for journal and split data.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, user_id, transaction_kind, journal_date, description, notes, tags, external_reference, internal_reference, reconciled, order_index, created_at, created_by, last_updated_at, last_updated_by`

const splitColumns = `split_id, journal_id, source_account_id, destination_account_id, amount, currency_code, description, category_id, foreign_amount, foreign_currency_code, sequence, created_at, created_by, last_updated_at, last_updated_by`

func scanJournal(row pgx.Row) (models.Journal, error) {
	var m models.Journal
	var externalRef, internalRef sql.NullString

	err := row.Scan(
		&m.JournalID,
		&m.UserID,
		&m.TransactionKind,
		&m.Date,
		&m.Description,
		&m.Notes,
		&m.Tags,
		&externalRef,
		&internalRef,
		&m.Reconciled,
		&m.OrderIndex,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return m, err
	}

	if externalRef.Valid {
		m.ExternalReference = &externalRef.String
	}
	if internalRef.Valid {
		m.InternalReference = &internalRef.String
	}
	return m, nil
}

func scanSplit(row pgx.Row) (models.Split, error) {
	var m models.Split
	var categoryID, foreignCurrency sql.NullString
	var foreignAmount *decimal.Decimal

	err := row.Scan(
		&m.SplitID,
		&m.JournalID,
		&m.SourceAccountID,
		&m.DestinationAccountID,
		&m.Amount,
		&m.CurrencyCode,
		&m.Description,
		&categoryID,
		&foreignAmount,
		&foreignCurrency,
		&m.Sequence,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return m, err
	}

	if categoryID.Valid {
		m.CategoryID = &categoryID.String
	}
	m.ForeignAmount = foreignAmount
	if foreignCurrency.Valid {
		m.ForeignCurrencyCode = &foreignCurrency.String
	}
	return m, nil
}

// SaveJournal persists a journal, its splits and the account balance deltas
// within one database transaction. Nothing is visible until commit; any
// failure rolls the whole unit back.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, splits []domain.Split, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	now := journal.CreatedAt
	userID := journal.CreatedBy

	m := mapping.ToModelJournal(journal)
	journalQuery := `
		INSERT INTO journals (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, journalQuery,
		m.JournalID,
		m.UserID,
		m.TransactionKind,
		m.Date,
		m.Description,
		m.Notes,
		m.Tags,
		m.ExternalReference,
		m.InternalReference,
		m.Reconciled,
		m.OrderIndex,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal "+m.JournalID, err)
	}

	// Lock the affected accounts before touching balances so concurrent
	// journals touching the same accounts serialize on the row locks.
	accountIDs := make([]string, 0, len(balanceChanges))
	for accID := range balanceChanges {
		accountIDs = append(accountIDs, accID)
	}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return err
	}

	if err := r.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, balanceChanges, userID, now); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	splitQuery := `
		INSERT INTO splits (` + splitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	for _, split := range splits {
		sm := mapping.ToModelSplit(split)
		batch.Queue(splitQuery,
			sm.SplitID,
			sm.JournalID,
			sm.SourceAccountID,
			sm.DestinationAccountID,
			sm.Amount,
			sm.CurrencyCode,
			sm.Description,
			sm.CategoryID,
			sm.ForeignAmount,
			sm.ForeignCurrencyCode,
			sm.Sequence,
			sm.CreatedAt,
			sm.CreatedBy,
			sm.LastUpdatedAt,
			sm.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute split batch for journal "+m.JournalID, err)
	}

	return r.Commit(ctx, tx)
}

// FindJournalByID retrieves a journal by its ID, scoped to the owning user.
// The ownership predicate is part of the query so journals of other users
// are indistinguishable from missing ones.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, userID string, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1 AND user_id = $2;`

	m, err := scanJournal(r.Pool.QueryRow(ctx, query, journalID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal by ID "+journalID, err)
	}

	journal := mapping.ToDomainJournal(m)
	return &journal, nil
}

// FindSplitsByJournalID retrieves all splits of a journal in sequence order.
func (r *PgxJournalRepository) FindSplitsByJournalID(ctx context.Context, journalID string) ([]domain.Split, error) {
	query := `SELECT ` + splitColumns + ` FROM splits WHERE journal_id = $1 ORDER BY sequence;`

	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query splits for journal "+journalID, err)
	}
	defer rows.Close()

	splits := []models.Split{}
	for rows.Next() {
		m, err := scanSplit(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan split row for journal "+journalID, err)
		}
		splits = append(splits, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating split rows for journal "+journalID, err)
	}

	return mapping.ToDomainSplitSlice(splits), nil
}

// FindSplitsByJournalIDs retrieves splits for a list of journals, keyed by
// journal ID. Journals without splits get an empty slice.
func (r *PgxJournalRepository) FindSplitsByJournalIDs(ctx context.Context, journalIDs []string) (map[string][]domain.Split, error) {
	if len(journalIDs) == 0 {
		return map[string][]domain.Split{}, nil
	}

	query := `SELECT ` + splitColumns + ` FROM splits WHERE journal_id = ANY($1) ORDER BY journal_id, sequence;`

	rows, err := r.Pool.Query(ctx, query, journalIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query splits for journal IDs", err)
	}
	defer rows.Close()

	splitsMap := make(map[string][]domain.Split)
	for rows.Next() {
		m, err := scanSplit(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan split row during batch fetch", err)
		}
		split := mapping.ToDomainSplit(m)
		splitsMap[split.JournalID] = append(splitsMap[split.JournalID], split)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating split rows during batch fetch", err)
	}

	for _, jid := range journalIDs {
		if _, exists := splitsMap[jid]; !exists {
			splitsMap[jid] = []domain.Split{}
		}
	}

	return splitsMap, nil
}

// sortColumns maps allow-listed sort fields to ORDER BY expressions. Amount
// sorts by the journal's split total.
var sortColumns = map[domain.SortField]string{
	domain.SortByDate:        "j.journal_date",
	domain.SortByAmount:      "(SELECT COALESCE(SUM(s.amount), 0) FROM splits s WHERE s.journal_id = j.journal_id)",
	domain.SortByDescription: "j.description",
}

// ListJournals retrieves a filtered, sorted page of the user's journals along
// with the total match count.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, userID string, filter domain.JournalFilter) ([]domain.Journal, int64, error) {
	conditions := []string{"j.user_id = $1"}
	args := []interface{}{userID}

	appendArg := func(condition string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, strings.ReplaceAll(condition, "?", "$"+strconv.Itoa(len(args))))
	}

	if filter.Kind != nil {
		appendArg("j.transaction_kind = ?", string(*filter.Kind))
	}
	if filter.StartDate != nil {
		appendArg("j.journal_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		appendArg("j.journal_date <= ?", *filter.EndDate)
	}
	if filter.AccountID != nil {
		appendArg(`EXISTS (
			SELECT 1 FROM splits s
			WHERE s.journal_id = j.journal_id
			  AND (s.source_account_id = ? OR s.destination_account_id = ?)
		)`, *filter.AccountID)
	}
	if filter.Search != nil {
		appendArg("j.description ILIKE '%' || ? || '%'", *filter.Search)
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := "SELECT COUNT(*) FROM journals j " + whereClause + ";"
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count journals for user "+userID, err)
	}

	sortColumn, ok := sortColumns[filter.SortBy]
	if !ok {
		sortColumn = sortColumns[domain.SortByDate]
	}
	direction := "ASC"
	if filter.SortDescending {
		direction = "DESC"
	}
	// created_at tie-break keeps the ordering stable across pages.
	orderByClause := "ORDER BY " + sortColumn + " " + direction + ", j.created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	query := "SELECT " + journalColumnsAliased("j") + " FROM journals j " +
		whereClause + " " + orderByClause +
		" LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query journals for user "+userID, err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		m, err := scanJournal(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan journal row for user "+userID, err)
		}
		journals = append(journals, mapping.ToDomainJournal(m))
	}

	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating journal rows for user "+userID, err)
	}

	return journals, total, nil
}

// journalColumnsAliased prefixes every journal column with the table alias.
func journalColumnsAliased(alias string) string {
	cols := strings.Split(journalColumns, ", ")
	for i, col := range cols {
		cols[i] = alias + "." + col
	}
	return strings.Join(cols, ", ")
}

// SummarizeJournals sums split amounts across the user's journals by kind
// within the optional date range.
func (r *PgxJournalRepository) SummarizeJournals(ctx context.Context, userID string, startDate *time.Time, endDate *time.Time) (domain.JournalTotals, error) {
	conditions := []string{"j.user_id = $1"}
	args := []interface{}{userID}

	if startDate != nil {
		args = append(args, *startDate)
		conditions = append(conditions, "j.journal_date >= $"+strconv.Itoa(len(args)))
	}
	if endDate != nil {
		args = append(args, *endDate)
		conditions = append(conditions, "j.journal_date <= $"+strconv.Itoa(len(args)))
	}

	query := `
		SELECT
			COUNT(DISTINCT j.journal_id),
			COALESCE(SUM(CASE WHEN j.transaction_kind = 'deposit' THEN s.amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN j.transaction_kind = 'withdrawal' THEN s.amount ELSE 0 END), 0)
		FROM journals j
		LEFT JOIN splits s ON s.journal_id = j.journal_id
		WHERE ` + strings.Join(conditions, " AND ") + `;
	`

	var totals domain.JournalTotals
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&totals.TotalTransactions,
		&totals.TotalIncome,
		&totals.TotalExpenses,
	)
	if err != nil {
		return domain.JournalTotals{}, apperrors.NewAppError(500, "failed to summarize journals for user "+userID, err)
	}

	return totals, nil
}

// UpdateJournal updates the editable fields of a journal: description and
// notes. Financial content never changes through this path.
func (r *PgxJournalRepository) UpdateJournal(ctx context.Context, journal domain.Journal) error {
	m := mapping.ToModelJournal(journal)

	query := `
		UPDATE journals
		SET description = $3,
		    notes = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE journal_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.JournalID,
		m.UserID,
		m.Description,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update journal "+m.JournalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal " + m.JournalID + " not found for update")
	}

	return nil
}

// DeleteJournal reverses the balance effect of every split and removes the
// journal with its splits, all within one database transaction. The caller
// supplies the reversal deltas computed from the stored splits.
func (r *PgxJournalRepository) DeleteJournal(ctx context.Context, journal domain.Journal, splits []domain.Split, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now().UTC()

	accountIDs := make([]string, 0, len(balanceChanges))
	for accID := range balanceChanges {
		accountIDs = append(accountIDs, accID)
	}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return err
	}

	if err := r.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, balanceChanges, journal.UserID, now); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM splits WHERE journal_id = $1;`, journal.JournalID); err != nil {
		return apperrors.NewAppError(500, "failed to delete splits for journal "+journal.JournalID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM journals WHERE journal_id = $1 AND user_id = $2;`, journal.JournalID, journal.UserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal "+journal.JournalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal " + journal.JournalID + " not found for deletion")
	}

	return r.Commit(ctx, tx)
}
