package repositories

import (
	"context"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
)

// ReportingRepository runs read-only aggregate queries over the live ledger.
// Soft-deleted transactions are always excluded.
type ReportingRepository interface {
	// GetMonthlyCashflow returns per-month income and expense totals for a
	// year. Months without activity are absent; callers fill the gaps.
	GetMonthlyCashflow(ctx context.Context, year int) ([]domain.MonthlyCashflowRow, error)

	// GetCategoryTotals returns per-category totals for a year, restricted to
	// categories of the given type, ordered total descending then name.
	GetCategoryTotals(ctx context.Context, year int, categoryType domain.CategoryType) ([]domain.CategoryTotal, error)
}
