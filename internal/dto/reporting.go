package dto

import (
	"github.com/parishkeep/church_treasury_app/internal/core/domain"
)

// MonthlyTrendResponse carries the 12-month cashflow series for a year.
type MonthlyTrendResponse struct {
	Year   int                         `json:"year"`
	Months []domain.MonthlyCashflowRow `json:"months"`
}

// MonthlyTrendParams defines query parameters for the monthly trend report.
type MonthlyTrendParams struct {
	Year int `form:"year" binding:"required"`
}

// CategoryBreakdownParams defines query parameters for the breakdown report.
type CategoryBreakdownParams struct {
	Year  int                 `form:"year" binding:"required"`
	Type  domain.CategoryType `form:"type" binding:"required,oneof=INCOME EXPENSE"`
	Limit int                 `form:"limit,default=10"`
}

// CategoryBreakdownResponse carries the top-N categories for a year and type.
type CategoryBreakdownResponse struct {
	Year       int                    `json:"year"`
	Type       domain.CategoryType    `json:"type"`
	Categories []domain.CategoryTotal `json:"categories"`
}
