package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
)

// ValidAccountType reports whether t is one of the known account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Asset, Income, Expense, Liability, Equity:
		return true
	}
	return false
}

// Account represents an account in the chart of accounts.
// Balance is derived from the ledger; it is only ever adjusted inside the
// same database transaction as the movement that caused the change.
type Account struct {
	AccountID    string          `json:"accountID"`    // Primary Key (UUID)
	Name         string          `json:"name"`         // User-defined name
	AccountType  AccountType     `json:"accountType"`  // ASSET, INCOME, etc.
	CurrencyCode string          `json:"currencyCode"` // FK -> currencies.currency_code
	Description  string          `json:"description"`  // Nullable user description
	IsActive     bool            `json:"isActive"`     // Deactivation flag
	AuditFields                  // Embed CreatedAt, CreatedBy, etc.
	Balance      decimal.Decimal `json:"balance"` // Persisted derived balance
}
