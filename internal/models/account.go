package models

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

// Account is the accounts table row. current_balance and virtual_balance are
// only ever mutated through relative increments, never read-modify-write.
type Account struct {
	AccountID      string          `db:"account_id"`
	UserID         string          `db:"user_id"`
	Name           string          `db:"name"`
	AccountType    AccountType     `db:"account_type"`
	CurrencyCode   string          `db:"currency_code"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	VirtualBalance decimal.Decimal `db:"virtual_balance"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
