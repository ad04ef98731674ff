package services

import (
	portsrepo "github.com/trackmint/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/trackmint/finance_tracker_app/internal/core/ports/services"
)

// NewServiceContainer wires all services from the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo)
	categorySvc := NewCategoryService(repos.CategoryRepo)
	transactionSvc := NewTransactionService(repos.JournalRepo, accountSvc)
	reportingSvc := NewReportingService(repos.ReportingRepo, transactionSvc)

	return &portssvc.ServiceContainer{
		Account:     accountSvc,
		Category:    categorySvc,
		Transaction: transactionSvc,
		Reporting:   reportingSvc,
	}
}
