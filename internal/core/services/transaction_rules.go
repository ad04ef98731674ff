package services

import (
	"fmt"

	"github.com/trackmint/finance_tracker_app/internal/apperrors"
	"github.com/trackmint/finance_tracker_app/internal/core/domain"
)

// splitTypeRule names the account types a transaction kind requires on each
// side of a split.
type splitTypeRule struct {
	sourceType      domain.AccountType
	destinationType domain.AccountType
	// distinctAccounts additionally forbids a split from moving money within
	// a single account.
	distinctAccounts bool
}

// splitTypeRules is the exhaustive kind rule table. Kinds absent from the
// table cannot be created through the API; there is no implicit fallback.
var splitTypeRules = map[domain.TransactionKind]splitTypeRule{
	domain.Withdrawal: {sourceType: domain.Asset, destinationType: domain.Expense},
	domain.Deposit:    {sourceType: domain.Revenue, destinationType: domain.Asset},
	domain.Transfer:   {sourceType: domain.Asset, destinationType: domain.Asset, distinctAccounts: true},
}

// validateSplitTypes checks one split's account types against the rule table
// for the journal's kind. It returns a wrapped apperrors.ErrValidation naming
// the violated rule, and nil when the split is acceptable.
func validateSplitTypes(kind domain.TransactionKind, sourceType, destinationType domain.AccountType, sourceID, destinationID string) error {
	rule, ok := splitTypeRules[kind]
	if !ok {
		return fmt.Errorf("%w: unsupported transaction type %q", apperrors.ErrValidation, kind)
	}

	if sourceType != rule.sourceType {
		return fmt.Errorf("%w: %s requires a %s source account, got %s (account %s)",
			apperrors.ErrValidation, kind, rule.sourceType, sourceType, sourceID)
	}
	if destinationType != rule.destinationType {
		return fmt.Errorf("%w: %s requires a %s destination account, got %s (account %s)",
			apperrors.ErrValidation, kind, rule.destinationType, destinationType, destinationID)
	}
	if rule.distinctAccounts && sourceID == destinationID {
		return fmt.Errorf("%w: %s source and destination must be different accounts (account %s)",
			apperrors.ErrValidation, kind, sourceID)
	}
	return nil
}
