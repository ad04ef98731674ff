package domain

import "github.com/shopspring/decimal"

// Split is one source→destination money movement belonging to a Journal.
// Amount is always positive; direction is encoded by which account is
// source and which is destination, never by the sign of the amount.
type Split struct {
	SplitID              string           `json:"splitID"`   // Primary key (UUID)
	JournalID            string           `json:"journalID"` // FK -> Journal.journalID
	SourceAccountID      string           `json:"sourceAccountID"`
	DestinationAccountID string           `json:"destinationAccountID"`
	Amount               decimal.Decimal  `json:"amount"` // Always > 0
	CurrencyCode         string           `json:"currencyCode"`
	Description          string           `json:"description,omitempty"` // Overrides the journal description
	CategoryID           *string          `json:"categoryID,omitempty"`
	ForeignAmount        *decimal.Decimal `json:"foreignAmount,omitempty"`
	ForeignCurrencyCode  *string          `json:"foreignCurrencyCode,omitempty"`
	Sequence             int              `json:"sequence"` // 1-based position within the journal
	AuditFields
}
