package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackmint/finance_tracker_app/internal/apperrors"
	"github.com/trackmint/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/trackmint/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/trackmint/finance_tracker_app/internal/core/ports/services"
	"github.com/trackmint/finance_tracker_app/internal/dto"
)

// accountService implements the Account collaborator: account management plus
// the ownership-checked reads the ledger core depends on.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates an account for the user. The opening balance seeds
// both currentBalance and virtualBalance.
func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now().UTC()

	opening := decimal.Zero
	if req.OpeningBalance != nil {
		opening = *req.OpeningBalance
	}

	account := domain.Account{
		AccountID:      uuid.NewString(),
		UserID:         userID,
		Name:           req.Name,
		AccountType:    domain.AccountType(req.AccountType),
		CurrencyCode:   req.CurrencyCode,
		CurrentBalance: opening,
		VirtualBalance: opening,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

// GetAccountByID retrieves an account, verifying ownership. An account owned
// by another user is reported as not found to obscure its existence.
func (s *accountService) GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}

	if account.UserID != userID {
		s.LogWarn(ctx, "Account belongs to a different user", slog.String("account_id", accountID))
		return nil, apperrors.ErrNotFound
	}

	return account, nil
}

// GetAccountsByIDs retrieves multiple accounts, verifying each belongs to the
// user. Foreign accounts abort the whole lookup with not found rather than
// being silently dropped.
func (s *accountService) GetAccountsByIDs(ctx context.Context, userID string, accountIDs []string) (map[string]domain.Account, error) {
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts by IDs")
		return nil, err
	}

	for id, account := range accountsMap {
		if account.UserID != userID {
			s.LogWarn(ctx, "Account belongs to a different user", slog.String("account_id", id))
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
	}

	return accountsMap, nil
}

// ListAccounts returns the user's active accounts.
func (s *accountService) ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}
