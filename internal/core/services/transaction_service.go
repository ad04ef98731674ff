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

	"github.com/trackmint/finance_tracker_app/internal/apperrors"
	"github.com/trackmint/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/trackmint/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/trackmint/finance_tracker_app/internal/core/ports/services"
	"github.com/trackmint/finance_tracker_app/internal/dto"
	"github.com/trackmint/finance_tracker_app/internal/utils/accounting"
)

var (
	ErrDescriptionMissing = errors.New("transaction description is required")
	ErrNoSplits           = errors.New("transaction must have at least one split")
	ErrAccountNotFound    = errors.New("account not found")
)

// sortFields is the allow-list for the listing sort parameter.
var sortFields = map[string]domain.SortField{
	"date":        domain.SortByDate,
	"amount":      domain.SortByAmount,
	"description": domain.SortByDescription,
}

// transactionService orchestrates the transaction ledger core: creation,
// lookup, limited update and reversal of journals with their splits.
type transactionService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
}

// NewTransactionService creates the ledger core service.
func NewTransactionService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the request against the account types of every
// split, then persists the journal, its splits and the account balance deltas
// as one atomic unit. All checks run before any write so a rejected request
// leaves no trace.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Journal, error) {
	kind := domain.TransactionKind(req.Type)

	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrDescriptionMissing)
	}
	if len(req.Splits) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNoSplits)
	}

	for _, splitReq := range req.Splits {
		if splitReq.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: split amount must be positive, got %s", apperrors.ErrValidation, splitReq.Amount)
		}
		if splitReq.SourceAccountID == splitReq.DestinationAccountID {
			return nil, fmt.Errorf("%w: split source and destination must be different accounts (account %s)",
				apperrors.ErrValidation, splitReq.SourceAccountID)
		}
	}

	// Resolve every referenced account through the account collaborator.
	// Missing and foreign accounts are both reported as not found.
	accountIDs := make([]string, 0, len(req.Splits)*2)
	for _, splitReq := range req.Splits {
		accountIDs = append(accountIDs, splitReq.SourceAccountID, splitReq.DestinationAccountID)
	}
	uniqueAccountIDs := uniqueStrings(accountIDs)

	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, userID, uniqueAccountIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range uniqueAccountIDs {
		if _, found := accountsMap[id]; !found {
			return nil, fmt.Errorf("%w: %s: ID %s", apperrors.ErrNotFound, ErrAccountNotFound, id)
		}
	}

	// Type rule check per split, before any persistence. A single bad split
	// aborts the whole journal.
	for _, splitReq := range req.Splits {
		source := accountsMap[splitReq.SourceAccountID]
		destination := accountsMap[splitReq.DestinationAccountID]
		if err := validateSplitTypes(kind, source.AccountType, destination.AccountType, source.AccountID, destination.AccountID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	journalID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	journal := domain.Journal{
		JournalID:         journalID,
		UserID:            userID,
		TransactionKind:   kind,
		Date:              req.Date,
		Description:       req.Description,
		Tags:              req.Tags,
		ExternalReference: req.ExternalReference,
		InternalReference: req.InternalReference,
		AuditFields:       audit,
	}
	if req.Notes != nil {
		journal.Notes = *req.Notes
	}

	splits := make([]domain.Split, len(req.Splits))
	for i, splitReq := range req.Splits {
		currencyCode := accountsMap[splitReq.SourceAccountID].CurrencyCode
		if splitReq.CurrencyCode != nil {
			currencyCode = *splitReq.CurrencyCode
		}
		splits[i] = domain.Split{
			SplitID:              uuid.NewString(),
			JournalID:            journalID,
			SourceAccountID:      splitReq.SourceAccountID,
			DestinationAccountID: splitReq.DestinationAccountID,
			Amount:               splitReq.Amount,
			CurrencyCode:         currencyCode,
			CategoryID:           splitReq.CategoryID,
			ForeignAmount:        splitReq.ForeignAmount,
			ForeignCurrencyCode:  splitReq.ForeignCurrencyCode,
			Sequence:             i + 1,
			AuditFields:          audit,
		}
		if splitReq.Description != nil {
			splits[i].Description = *splitReq.Description
		}
	}

	balanceChanges := accounting.BalanceChanges(splits)

	if err := s.journalRepo.SaveJournal(ctx, journal, splits, balanceChanges); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("journal_id", journalID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created", slog.String("journal_id", journalID), slog.String("type", string(kind)))

	// Return via a fresh read so the caller sees exactly what was persisted.
	return s.GetTransactionByID(ctx, userID, journalID)
}

// GetTransactionByID retrieves a journal with its splits. Ownership is part
// of the lookup predicate, so foreign journals yield apperrors.ErrNotFound.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, userID, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("journal_id", journalID))
		}
		return nil, err
	}

	splits, err := s.journalRepo.FindSplitsByJournalID(ctx, journalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch splits for transaction", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to retrieve splits for journal %s: %w", journalID, apperrors.ErrInternal)
	}
	journal.Splits = splits

	return journal, nil
}

// ListTransactions returns a filtered, sorted, offset-paginated listing.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.PaginatedTransactionsResponse, error) {
	sortBy, ok := sortFields[params.SortBy]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported sort field %q", apperrors.ErrValidation, params.SortBy)
	}
	var descending bool
	switch strings.ToLower(params.SortDirection) {
	case "desc":
		descending = true
	case "asc":
		descending = false
	default:
		return nil, fmt.Errorf("%w: sort direction must be asc or desc, got %q", apperrors.ErrValidation, params.SortDirection)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	filter := domain.JournalFilter{
		StartDate:      params.StartDate,
		EndDate:        params.EndDate,
		AccountID:      params.AccountID,
		Search:         params.Search,
		SortBy:         sortBy,
		SortDescending: descending,
		Limit:          limit,
		Offset:         (page - 1) * limit,
	}
	if params.Type != nil {
		kind := domain.TransactionKind(*params.Type)
		filter.Kind = &kind
	}

	journals, total, err := s.journalRepo.ListJournals(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}

	if len(journals) > 0 {
		journalIDs := make([]string, len(journals))
		for i, journal := range journals {
			journalIDs[i] = journal.JournalID
		}
		splitsMap, err := s.journalRepo.FindSplitsByJournalIDs(ctx, journalIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to fetch splits for transaction listing")
			return nil, err
		}
		for i := range journals {
			journals[i].Splits = splitsMap[journals[i].JournalID]
		}
	}

	return dto.NewPaginatedTransactionsResponse(journals, total, page, limit), nil
}

// UpdateTransaction changes description and notes only. The financial content
// of a journal is immutable after creation; correcting amounts, accounts or
// kind requires delete-and-recreate.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, journalID string, req dto.UpdateTransactionRequest) (*domain.Journal, error) {
	journal, err := s.GetTransactionByID(ctx, userID, journalID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrDescriptionMissing)
		}
		journal.Description = *req.Description
		updated = true
	}
	if req.Notes != nil {
		journal.Notes = *req.Notes
		updated = true
	}

	if !updated {
		return journal, nil
	}

	journal.LastUpdatedAt = time.Now().UTC()
	journal.LastUpdatedBy = userID

	if err := s.journalRepo.UpdateJournal(ctx, *journal); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("journal_id", journalID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("journal_id", journalID))
	return s.GetTransactionByID(ctx, userID, journalID)
}

// DeleteTransaction reverses every split's balance effect and removes the
// journal with its splits in one atomic unit. Rollback on any failure leaves
// rows and balances exactly as before the call.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, journalID string) error {
	journal, err := s.GetTransactionByID(ctx, userID, journalID)
	if err != nil {
		return err
	}

	balanceChanges := accounting.ReversalChanges(journal.Splits)

	if err := s.journalRepo.DeleteJournal(ctx, *journal, journal.Splits, balanceChanges); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("journal_id", journalID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("journal_id", journalID))
	return nil
}

// GetTransactionSummary sums split amounts across journals by kind for the
// optional date range.
func (s *transactionService) GetTransactionSummary(ctx context.Context, userID string, startDate *time.Time, endDate *time.Time) (*domain.TransactionSummary, error) {
	totals, err := s.journalRepo.SummarizeJournals(ctx, userID, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize transactions")
		return nil, err
	}

	summary := &domain.TransactionSummary{
		TotalTransactions: totals.TotalTransactions,
		TotalIncome:       totals.TotalIncome,
		TotalExpenses:     totals.TotalExpenses,
		NetFlow:           totals.TotalIncome.Sub(totals.TotalExpenses),
	}
	if totals.TotalTransactions > 0 {
		summary.AverageTransaction = totals.TotalIncome.Add(totals.TotalExpenses).
			Div(decimal.NewFromInt(totals.TotalTransactions))
	} else {
		summary.AverageTransaction = decimal.Zero
	}

	return summary, nil
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
