package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trackmint/finance_tracker_app/internal/core/domain"
)

// CreateSplitRequest is one leg of a new transaction.
type CreateSplitRequest struct {
	SourceAccountID      string           `json:"sourceAccountId" binding:"required"`
	DestinationAccountID string           `json:"destinationAccountId" binding:"required"`
	Amount               decimal.Decimal  `json:"amount" binding:"required"`
	Description          *string          `json:"description,omitempty"`
	CategoryID           *string          `json:"categoryId,omitempty"`
	CurrencyCode         *string          `json:"currencyCode,omitempty"`
	ForeignAmount        *decimal.Decimal `json:"foreignAmount,omitempty"`
	ForeignCurrencyCode  *string          `json:"foreignCurrencyCode,omitempty"`
}

// CreateTransactionRequest is the wire shape for creating a journal with its splits.
type CreateTransactionRequest struct {
	Type              string               `json:"type" binding:"required"`
	Description       string               `json:"description" binding:"required"`
	Date              time.Time            `json:"date" binding:"required"`
	Splits            []CreateSplitRequest `json:"splits" binding:"required,min=1,dive"`
	Notes             *string              `json:"notes,omitempty"`
	Tags              []string             `json:"tags,omitempty"`
	ExternalReference *string              `json:"externalReference,omitempty"`
	InternalReference *string              `json:"internalReference,omitempty"`
}

// UpdateTransactionRequest permits editing description and notes only.
// Amounts, accounts and kind are immutable after creation.
type UpdateTransactionRequest struct {
	Description *string `json:"description,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// ListTransactionsParams are the parsed query parameters for listing transactions.
type ListTransactionsParams struct {
	Page          int        `form:"page,default=1"`
	Limit         int        `form:"limit,default=20"`
	SortBy        string     `form:"sortBy,default=date"`
	SortDirection string     `form:"sortDirection,default=desc"`
	Type          *string    `form:"type"`
	StartDate     *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate       *time.Time `form:"endDate" time_format:"2006-01-02"`
	AccountID     *string    `form:"accountId"`
	Search        *string    `form:"search"`
}

// SummaryParams are the parsed query parameters for the transaction summary.
type SummaryParams struct {
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// SplitResponse is the wire shape of a split.
type SplitResponse struct {
	SplitID              string           `json:"splitId"`
	SourceAccountID      string           `json:"sourceAccountId"`
	DestinationAccountID string           `json:"destinationAccountId"`
	Amount               decimal.Decimal  `json:"amount"`
	CurrencyCode         string           `json:"currencyCode"`
	Description          string           `json:"description,omitempty"`
	CategoryID           *string          `json:"categoryId,omitempty"`
	ForeignAmount        *decimal.Decimal `json:"foreignAmount,omitempty"`
	ForeignCurrencyCode  *string          `json:"foreignCurrencyCode,omitempty"`
	Sequence             int              `json:"sequence"`
}

// TransactionResponse is the wire shape of a journal with its splits.
type TransactionResponse struct {
	JournalID         string          `json:"journalId"`
	Type              string          `json:"type"`
	Date              time.Time       `json:"date"`
	Description       string          `json:"description"`
	Notes             string          `json:"notes,omitempty"`
	Tags              []string        `json:"tags,omitempty"`
	ExternalReference *string         `json:"externalReference,omitempty"`
	InternalReference *string         `json:"internalReference,omitempty"`
	Reconciled        bool            `json:"reconciled"`
	Splits            []SplitResponse `json:"splits,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// PaginatedTransactionsResponse is the listing envelope.
type PaginatedTransactionsResponse struct {
	Items      []TransactionResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"totalPages"`
}

// TransactionSummaryResponse is the wire shape of the income/expense summary.
type TransactionSummaryResponse struct {
	TotalTransactions  int64           `json:"totalTransactions"`
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	NetFlow            decimal.Decimal `json:"netFlow"`
	AverageTransaction decimal.Decimal `json:"averageTransaction"`
}

// ToSplitResponse converts a domain split to its response DTO.
func ToSplitResponse(s *domain.Split) SplitResponse {
	return SplitResponse{
		SplitID:              s.SplitID,
		SourceAccountID:      s.SourceAccountID,
		DestinationAccountID: s.DestinationAccountID,
		Amount:               s.Amount,
		CurrencyCode:         s.CurrencyCode,
		Description:          s.Description,
		CategoryID:           s.CategoryID,
		ForeignAmount:        s.ForeignAmount,
		ForeignCurrencyCode:  s.ForeignCurrencyCode,
		Sequence:             s.Sequence,
	}
}

// ToTransactionResponse converts a domain journal to its response DTO.
func ToTransactionResponse(j *domain.Journal) TransactionResponse {
	splits := make([]SplitResponse, len(j.Splits))
	for i := range j.Splits {
		splits[i] = ToSplitResponse(&j.Splits[i])
	}
	return TransactionResponse{
		JournalID:         j.JournalID,
		Type:              string(j.TransactionKind),
		Date:              j.Date,
		Description:       j.Description,
		Notes:             j.Notes,
		Tags:              j.Tags,
		ExternalReference: j.ExternalReference,
		InternalReference: j.InternalReference,
		Reconciled:        j.Reconciled,
		Splits:            splits,
		CreatedAt:         j.CreatedAt,
	}
}

// ToTransactionSummaryResponse converts the domain summary to its response DTO.
func ToTransactionSummaryResponse(s *domain.TransactionSummary) TransactionSummaryResponse {
	return TransactionSummaryResponse{
		TotalTransactions:  s.TotalTransactions,
		TotalIncome:        s.TotalIncome,
		TotalExpenses:      s.TotalExpenses,
		NetFlow:            s.NetFlow,
		AverageTransaction: s.AverageTransaction,
	}
}

// NewPaginatedTransactionsResponse assembles the listing envelope, deriving
// totalPages from total and limit.
func NewPaginatedTransactionsResponse(journals []domain.Journal, total int64, page, limit int) *PaginatedTransactionsResponse {
	items := make([]TransactionResponse, len(journals))
	for i := range journals {
		items[i] = ToTransactionResponse(&journals[i])
	}
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &PaginatedTransactionsResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
