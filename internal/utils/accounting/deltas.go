// Package accounting computes the relative balance deltas a set of splits
// applies to its accounts. Deltas are always expressed as increments so the
// database can apply them without a read-modify-write cycle.
package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/trackmint/finance_tracker_app/internal/core/domain"
)

// BalanceChanges returns the net per-account delta posting the given splits
// applies: each split decrements its source account and increments its
// destination account by the split amount. The same rule holds for every
// transaction kind, so a deposit decrements its revenue source just like a
// withdrawal decrements its asset source.
func BalanceChanges(splits []domain.Split) map[string]decimal.Decimal {
	changes := make(map[string]decimal.Decimal, len(splits)*2)
	for _, split := range splits {
		changes[split.SourceAccountID] = changes[split.SourceAccountID].Sub(split.Amount)
		changes[split.DestinationAccountID] = changes[split.DestinationAccountID].Add(split.Amount)
	}
	return changes
}

// ReversalChanges returns the exact inverse of BalanceChanges for the given
// splits: increment source, decrement destination. Applying both maps to the
// same accounts restores every balance to its prior value.
func ReversalChanges(splits []domain.Split) map[string]decimal.Decimal {
	changes := make(map[string]decimal.Decimal, len(splits)*2)
	for _, split := range splits {
		changes[split.SourceAccountID] = changes[split.SourceAccountID].Add(split.Amount)
		changes[split.DestinationAccountID] = changes[split.DestinationAccountID].Sub(split.Amount)
	}
	return changes
}
