package models

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

// Journal is the journals table row. Tags map to a text[] column.
type Journal struct {
	JournalID         string          `db:"journal_id"`
	UserID            string          `db:"user_id"`
	TransactionKind   TransactionKind `db:"transaction_kind"`
	Date              time.Time       `db:"journal_date"`
	Description       string          `db:"description"`
	Notes             string          `db:"notes"`
	Tags              []string        `db:"tags"`
	ExternalReference *string         `db:"external_reference"`
	InternalReference *string         `db:"internal_reference"`
	Reconciled        bool            `db:"reconciled"`
	OrderIndex        int             `db:"order_index"`
	AuditFields
}
