package mapping

import (
	"github.com/trackmint/finance_tracker_app/internal/core/domain"
	"github.com/trackmint/finance_tracker_app/internal/models"
)

// ToModelAccount converts a domain account to its table row representation.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		UserID:         d.UserID,
		Name:           d.Name,
		AccountType:    models.AccountType(d.AccountType),
		CurrencyCode:   d.CurrencyCode,
		CurrentBalance: d.CurrentBalance,
		VirtualBalance: d.VirtualBalance,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts an accounts row back to the domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		UserID:         m.UserID,
		Name:           m.Name,
		AccountType:    domain.AccountType(m.AccountType),
		CurrencyCode:   m.CurrencyCode,
		CurrentBalance: m.CurrentBalance,
		VirtualBalance: m.VirtualBalance,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
