package services

import (
	"context"
	"time"

	"github.com/trackmint/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/trackmint/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/trackmint/finance_tracker_app/internal/core/ports/services"
)

// reportingService assembles the read-only dashboard aggregate.
type reportingService struct {
	BaseService
	reportingRepo  portsrepo.ReportingRepository
	transactionSvc portssvc.TransactionSvcFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, transactionSvc portssvc.TransactionSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo:  reportingRepo,
		transactionSvc: transactionSvc,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDashboardSummary combines net worth, account count and the transaction
// summary for the optional date range.
func (s *reportingService) GetDashboardSummary(ctx context.Context, userID string, startDate *time.Time, endDate *time.Time) (*domain.DashboardSummary, error) {
	netWorth, err := s.reportingRepo.GetNetWorth(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute net worth")
		return nil, err
	}

	accountCount, err := s.reportingRepo.CountAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count accounts")
		return nil, err
	}

	txnSummary, err := s.transactionSvc.GetTransactionSummary(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardSummary{
		NetWorth:     netWorth,
		AccountCount: accountCount,
		Transactions: *txnSummary,
	}, nil
}
