package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single double-entry movement: amount leaves the
// source account and arrives at the destination account.
type Transaction struct {
	TransactionID        string          `json:"transactionID"` // Primary Key (UUID)
	Description          string          `json:"description"`
	Amount               decimal.Decimal `json:"amount"` // Positive value
	CurrencyCode         string          `json:"currencyCode"`
	TransactionDate      time.Time       `json:"transactionDate"`
	SourceAccountID      string          `json:"sourceAccountID"`      // FK -> accounts, != destination
	DestinationAccountID string          `json:"destinationAccountID"` // FK -> accounts
	CategoryID           *string         `json:"categoryID,omitempty"` // Optional FK -> categories
	MinistryID           *string         `json:"ministryID,omitempty"` // Optional FK -> ministries
	DeletedAt            *time.Time      `json:"deletedAt,omitempty"`  // Soft delete marker
	AuditFields
}

// IsDeleted reports whether the transaction is in the trash state.
func (t Transaction) IsDeleted() bool {
	return t.DeletedAt != nil
}

// BalanceEffect returns the per-account balance changes a live transaction
// applies: -amount on the source, +amount on the destination.
func (t Transaction) BalanceEffect() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		t.SourceAccountID:      t.Amount.Neg(),
		t.DestinationAccountID: t.Amount,
	}
}

// ReversedBalanceEffect returns the changes that undo BalanceEffect.
func (t Transaction) ReversedBalanceEffect() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		t.SourceAccountID:      t.Amount,
		t.DestinationAccountID: t.Amount.Neg(),
	}
}

// MergeBalanceChanges folds b into a, summing deltas that hit the same account.
// Used when an edit reverses the old effect and applies the new one in a
// single atomic unit.
func MergeBalanceChanges(a, b map[string]decimal.Decimal) map[string]decimal.Decimal {
	merged := make(map[string]decimal.Decimal, len(a)+len(b))
	for id, delta := range a {
		merged[id] = delta
	}
	for id, delta := range b {
		merged[id] = merged[id].Add(delta)
	}
	return merged
}
