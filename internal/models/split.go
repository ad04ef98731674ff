package models

import "github.com/shopspring/decimal"

// Split is the splits table row. Amount is stored positive; the
// source/destination columns carry the direction.
type Split struct {
	SplitID              string           `db:"split_id"`
	JournalID            string           `db:"journal_id"`
	SourceAccountID      string           `db:"source_account_id"`
	DestinationAccountID string           `db:"destination_account_id"`
	Amount               decimal.Decimal  `db:"amount"`
	CurrencyCode         string           `db:"currency_code"`
	Description          string           `db:"description"`
	CategoryID           *string          `db:"category_id"`
	ForeignAmount        *decimal.Decimal `db:"foreign_amount"`
	ForeignCurrencyCode  *string          `db:"foreign_currency_code"`
	Sequence             int              `db:"sequence"`
	AuditFields
}
