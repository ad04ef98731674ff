package domain

import "time"

// TransactionKind indicates the semantic kind of a journal.
type TransactionKind string

const (
	Withdrawal     TransactionKind = "withdrawal"
	Deposit        TransactionKind = "deposit"
	Transfer       TransactionKind = "transfer"
	OpeningBalance TransactionKind = "opening-balance"
	ReconKind      TransactionKind = "reconciliation"
)

// Journal is the aggregate record of one user-visible transaction event.
// It owns one or more Splits which carry the actual money movement.
type Journal struct {
	JournalID         string          `json:"journalID"` // Primary key (UUID)
	UserID            string          `json:"userID"`    // Owning user
	TransactionKind   TransactionKind `json:"type"`
	Date              time.Time       `json:"date"`
	Description       string          `json:"description"` // Required, non-empty
	Notes             string          `json:"notes,omitempty"`
	Tags              []string        `json:"tags,omitempty"`
	ExternalReference *string         `json:"externalReference,omitempty"`
	InternalReference *string         `json:"internalReference,omitempty"`
	Reconciled        bool            `json:"reconciled"`
	OrderIndex        int             `json:"order"`
	Splits            []Split         `json:"splits,omitempty"` // Loaded eagerly on single reads
	AuditFields
}

// SortField is an allow-listed column for transaction listing.
type SortField string

const (
	SortByDate        SortField = "date"
	SortByAmount      SortField = "amount"
	SortByDescription SortField = "description"
)

// JournalFilter narrows a transaction listing. Nil fields are ignored.
type JournalFilter struct {
	Kind           *TransactionKind
	StartDate      *time.Time
	EndDate        *time.Time
	AccountID      *string // Matches splits by source or destination
	Search         *string // Case-insensitive substring match on description
	SortBy         SortField
	SortDescending bool
	Limit          int
	Offset         int
}
