package services

import (
	"context"

	"github.com/trackmint/finance_tracker_app/internal/core/domain"
	"github.com/trackmint/finance_tracker_app/internal/dto"
)

// AccountSvcFacade is the Account collaborator surface.
// GetAccountByID and GetAccountsByIDs verify ownership and return
// apperrors.ErrNotFound for foreign or missing accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, userID string, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error)
}
