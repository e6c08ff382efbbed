package models

import "github.com/shopspring/decimal"

// Budget is the database representation of a per-year category budget.
type Budget struct {
	BudgetID    string          `db:"budget_id"`
	CategoryID  string          `db:"category_id"`
	MinistryID  *string         `db:"ministry_id"`
	Year        int             `db:"year"`
	AmountLimit decimal.Decimal `db:"amount_limit"`
	AuditFields
}
