package mapping

import (
	"github.com/trackmint/finance_tracker_app/internal/core/domain"
	"github.com/trackmint/finance_tracker_app/internal/models"
)

// ToModelJournal converts a domain journal to its table row representation.
// Splits are persisted separately and are not carried over.
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:         d.JournalID,
		UserID:            d.UserID,
		TransactionKind:   models.TransactionKind(d.TransactionKind),
		Date:              d.Date,
		Description:       d.Description,
		Notes:             d.Notes,
		Tags:              d.Tags,
		ExternalReference: d.ExternalReference,
		InternalReference: d.InternalReference,
		Reconciled:        d.Reconciled,
		OrderIndex:        d.OrderIndex,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a journals row back to the domain representation.
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:         m.JournalID,
		UserID:            m.UserID,
		TransactionKind:   domain.TransactionKind(m.TransactionKind),
		Date:              m.Date,
		Description:       m.Description,
		Notes:             m.Notes,
		Tags:              m.Tags,
		ExternalReference: m.ExternalReference,
		InternalReference: m.InternalReference,
		Reconciled:        m.Reconciled,
		OrderIndex:        m.OrderIndex,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSplit converts a domain split to its table row representation.
func ToModelSplit(d domain.Split) models.Split {
	return models.Split{
		SplitID:              d.SplitID,
		JournalID:            d.JournalID,
		SourceAccountID:      d.SourceAccountID,
		DestinationAccountID: d.DestinationAccountID,
		Amount:               d.Amount,
		CurrencyCode:         d.CurrencyCode,
		Description:          d.Description,
		CategoryID:           d.CategoryID,
		ForeignAmount:        d.ForeignAmount,
		ForeignCurrencyCode:  d.ForeignCurrencyCode,
		Sequence:             d.Sequence,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSplit converts a splits row back to the domain representation.
func ToDomainSplit(m models.Split) domain.Split {
	return domain.Split{
		SplitID:              m.SplitID,
		JournalID:            m.JournalID,
		SourceAccountID:      m.SourceAccountID,
		DestinationAccountID: m.DestinationAccountID,
		Amount:               m.Amount,
		CurrencyCode:         m.CurrencyCode,
		Description:          m.Description,
		CategoryID:           m.CategoryID,
		ForeignAmount:        m.ForeignAmount,
		ForeignCurrencyCode:  m.ForeignCurrencyCode,
		Sequence:             m.Sequence,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSplitSlice converts a slice of split rows.
func ToDomainSplitSlice(ms []models.Split) []domain.Split {
	splits := make([]domain.Split, len(ms))
	for i, m := range ms {
		splits[i] = ToDomainSplit(m)
	}
	return splits
}
