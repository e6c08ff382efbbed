package services

import (
	"context"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// MonthlyTrend returns income and expense totals for all twelve months of
	// a year, zero-filled for months without activity.
	MonthlyTrend(ctx context.Context, year int) ([]domain.MonthlyCashflowRow, error)

	// CategoryBreakdown returns the top categories of a type by yearly total,
	// ordered total descending then name ascending.
	CategoryBreakdown(ctx context.Context, year int, categoryType domain.CategoryType, limit int) ([]domain.CategoryTotal, error)
}
