package domain

import "github.com/shopspring/decimal"

// JournalTotals holds the raw aggregates the summary is computed from.
type JournalTotals struct {
	TotalTransactions int64
	TotalIncome       decimal.Decimal // Sum of split amounts over deposit journals
	TotalExpenses     decimal.Decimal // Sum of split amounts over withdrawal journals
}

// TransactionSummary is the date-ranged income/expense summary.
type TransactionSummary struct {
	TotalTransactions  int64           `json:"totalTransactions"`
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	NetFlow            decimal.Decimal `json:"netFlow"`
	AverageTransaction decimal.Decimal `json:"averageTransaction"`
}

// DashboardSummary aggregates the read-only dashboard view.
type DashboardSummary struct {
	NetWorth     decimal.Decimal    `json:"netWorth"` // Sum of asset account current balances
	AccountCount int                `json:"accountCount"`
	Transactions TransactionSummary `json:"transactions"`
}
