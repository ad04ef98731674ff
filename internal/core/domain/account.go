package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset          AccountType = "ASSET"
	Expense        AccountType = "EXPENSE"
	Revenue        AccountType = "REVENUE"
	Liability      AccountType = "LIABILITY"
	InitialBalance AccountType = "INITIAL_BALANCE"
	Reconciliation AccountType = "RECONCILIATION"
)

// Account represents a financial account owned by a single user.
// The ledger core reads only UserID and AccountType and mutates the two
// balance fields via relative deltas; everything else belongs to the
// account management surface.
type Account struct {
	AccountID      string          `json:"accountID"` // Primary key (UUID)
	UserID         string          `json:"userID"`    // Owning user
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	CurrencyCode   string          `json:"currencyCode"`
	CurrentBalance decimal.Decimal `json:"currentBalance"` // Settled balance
	VirtualBalance decimal.Decimal `json:"virtualBalance"` // Balance including pending ledger effects
	IsActive       bool            `json:"isActive"`
	AuditFields
}
