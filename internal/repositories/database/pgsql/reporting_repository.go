package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	portsrepo "github.com/parishkeep/church_treasury_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates a read-only repository for report queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetMonthlyCashflow returns per-month income and expense totals for a year.
// A movement counts as income when it flows from an INCOME account into an
// ASSET account and as expense when it flows from an ASSET account into an
// EXPENSE account. Transfers between asset accounts fall in neither bucket.
// Months without activity are absent from the result.
func (r *PgxReportingRepository) GetMonthlyCashflow(ctx context.Context, year int) ([]domain.MonthlyCashflowRow, error) {
	query := `
		SELECT EXTRACT(MONTH FROM t.transaction_date)::int AS month,
		       COALESCE(SUM(t.amount) FILTER (WHERE src.account_type = 'INCOME' AND dst.account_type = 'ASSET'), 0) AS income,
		       COALESCE(SUM(t.amount) FILTER (WHERE src.account_type = 'ASSET' AND dst.account_type = 'EXPENSE'), 0) AS expense
		FROM transactions t
		JOIN accounts src ON t.source_account_id = src.account_id
		JOIN accounts dst ON t.destination_account_id = dst.account_id
		WHERE t.deleted_at IS NULL
		  AND EXTRACT(YEAR FROM t.transaction_date) = $1
		GROUP BY month
		ORDER BY month;
	`

	rows, err := r.pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly cashflow for year %d: %w", year, err)
	}
	defer rows.Close()

	result := []domain.MonthlyCashflowRow{}
	for rows.Next() {
		var row domain.MonthlyCashflowRow
		if err := rows.Scan(&row.Month, &row.Income, &row.Expense); err != nil {
			return nil, fmt.Errorf("failed to scan monthly cashflow row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly cashflow rows: %w", err)
	}

	return result, nil
}

// GetCategoryTotals returns per-category yearly totals for categories of the
// given type, largest total first with name as the tie-break.
func (r *PgxReportingRepository) GetCategoryTotals(ctx context.Context, year int, categoryType domain.CategoryType) ([]domain.CategoryTotal, error) {
	query := `
		SELECT c.category_id, c.name, COALESCE(SUM(t.amount), 0) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE t.deleted_at IS NULL
		  AND EXTRACT(YEAR FROM t.transaction_date) = $1
		  AND c.category_type = $2
		GROUP BY c.category_id, c.name
		ORDER BY total DESC, c.name ASC;
	`

	rows, err := r.pool.Query(ctx, query, year, string(categoryType))
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals for year %d: %w", year, err)
	}
	defer rows.Close()

	result := []domain.CategoryTotal{}
	for rows.Next() {
		var row domain.CategoryTotal
		if err := rows.Scan(&row.CategoryID, &row.Name, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category total row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category total rows: %w", err)
	}

	return result, nil
}
