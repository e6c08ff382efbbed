package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyCashflowRow is one month of the yearly trend report.
// Income counts movements from an INCOME account into an ASSET account,
// expense counts movements from an ASSET account into an EXPENSE account;
// asset-to-asset transfers land in neither bucket.
type MonthlyCashflowRow struct {
	Month   int             `json:"month"` // 1..12
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryTotal is one row of the category breakdown report.
type CategoryTotal struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Total      decimal.Decimal `json:"total"`
}
