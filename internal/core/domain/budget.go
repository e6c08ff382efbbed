package domain

import (
	"github.com/shopspring/decimal"
)

// Budget is a spending limit (expense categories) or collection estimate
// (income categories) for a category, optionally scoped to a ministry, for
// one calendar year. A nil MinistryID means church-wide. At most one budget
// exists per (category, ministry, year) tuple; redefining upserts in place.
type Budget struct {
	BudgetID    string          `json:"budgetID"` // Primary Key (UUID)
	CategoryID  string          `json:"categoryID"`
	MinistryID  *string         `json:"ministryID,omitempty"` // nil = church-wide
	Year        int             `json:"year"`
	AmountLimit decimal.Decimal `json:"amountLimit"`
	AuditFields
}

// IsOver reports overspend for an expense budget: strictly above the limit.
func (b Budget) IsOver(executed decimal.Decimal) bool {
	return executed.GreaterThan(b.AmountLimit)
}

// IsGoalMet reports a met collection goal for an income budget: reaching the
// estimate counts. The asymmetry with IsOver is intentional.
func (b Budget) IsGoalMet(executed decimal.Decimal) bool {
	return executed.GreaterThanOrEqual(b.AmountLimit)
}

// ConsumedPercent returns executed as a percentage of the limit, or zero when
// the limit is zero.
func (b Budget) ConsumedPercent(executed decimal.Decimal) decimal.Decimal {
	if b.AmountLimit.IsZero() {
		return decimal.Zero
	}
	return executed.Div(b.AmountLimit).Mul(decimal.NewFromInt(100))
}

// BudgetExecution pairs a budget with its live executed total.
type BudgetExecution struct {
	Budget          Budget          `json:"budget"`
	CategoryType    CategoryType    `json:"categoryType"`
	Executed        decimal.Decimal `json:"executed"`
	ConsumedPercent decimal.Decimal `json:"consumedPercent"`
	IsOver          bool            `json:"isOver"`    // expense budgets only
	IsGoalMet       bool            `json:"isGoalMet"` // income budgets only
}

// BudgetCoherence compares planned and actual flows for a year.
type BudgetCoherence struct {
	Year               int             `json:"year"`
	ProjectedBalance   decimal.Decimal `json:"projectedBalance"` // income limits - expense limits
	RealBalance        decimal.Decimal `json:"realBalance"`      // income executed - expense executed
	IsProjectedDeficit bool            `json:"isProjectedDeficit"`
	IsRealDeficit      bool            `json:"isRealDeficit"`
}
