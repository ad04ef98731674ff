package services

import (
	"context"
	"time"

	"github.com/trackmint/finance_tracker_app/internal/core/domain"
	"github.com/trackmint/finance_tracker_app/internal/dto"
)

// TransactionSvcFacade is the ledger core surface exposed to the API layer.
// Every operation is scoped to the owning user; a journal belonging to
// another user behaves exactly like a missing one.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Journal, error)
	GetTransactionByID(ctx context.Context, userID string, journalID string) (*domain.Journal, error)
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.PaginatedTransactionsResponse, error)
	UpdateTransaction(ctx context.Context, userID string, journalID string, req dto.UpdateTransactionRequest) (*domain.Journal, error)
	DeleteTransaction(ctx context.Context, userID string, journalID string) error
	GetTransactionSummary(ctx context.Context, userID string, startDate *time.Time, endDate *time.Time) (*domain.TransactionSummary, error)
}
