package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trackmint/finance_tracker_app/internal/core/domain"
)

// CreateAccountRequest is the wire shape for creating an account.
type CreateAccountRequest struct {
	Name           string           `json:"name" binding:"required"`
	AccountType    string           `json:"accountType" binding:"required,oneof=ASSET EXPENSE REVENUE LIABILITY INITIAL_BALANCE RECONCILIATION"`
	CurrencyCode   string           `json:"currencyCode" binding:"required,len=3"`
	OpeningBalance *decimal.Decimal `json:"openingBalance,omitempty"`
}

// AccountResponse is the wire shape of an account.
type AccountResponse struct {
	AccountID      string          `json:"accountId"`
	Name           string          `json:"name"`
	AccountType    string          `json:"accountType"`
	CurrencyCode   string          `json:"currencyCode"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	VirtualBalance decimal.Decimal `json:"virtualBalance"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ListAccountsParams are the parsed query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ToAccountResponse converts a domain account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		Name:           a.Name,
		AccountType:    string(a.AccountType),
		CurrencyCode:   a.CurrencyCode,
		CurrentBalance: a.CurrentBalance,
		VirtualBalance: a.VirtualBalance,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
