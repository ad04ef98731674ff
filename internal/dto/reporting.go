package dto

import (
	"github.com/shopspring/decimal"

	"github.com/trackmint/finance_tracker_app/internal/core/domain"
)

// DashboardSummaryResponse is the wire shape of the dashboard aggregate.
type DashboardSummaryResponse struct {
	NetWorth     decimal.Decimal            `json:"netWorth"`
	AccountCount int                        `json:"accountCount"`
	Transactions TransactionSummaryResponse `json:"transactions"`
}

// ToDashboardSummaryResponse converts the domain dashboard summary.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		NetWorth:     s.NetWorth,
		AccountCount: s.AccountCount,
		Transactions: ToTransactionSummaryResponse(&s.Transactions),
	}
}
