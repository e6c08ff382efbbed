package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/parishkeep/church_treasury_app/internal/apperrors"
	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	portsrepo "github.com/parishkeep/church_treasury_app/internal/core/ports/repositories"
	"github.com/parishkeep/church_treasury_app/internal/models"
	"github.com/parishkeep/church_treasury_app/internal/utils/mapping"
)

const budgetColumns = `budget_id, category_id, ministry_id, year, amount_limit, created_at, created_by, last_updated_at, last_updated_by`

type PgxBudgetRepository struct {
	pool *pgxpool.Pool
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{pool: pool}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.CategoryID,
		&m.MinistryID,
		&m.Year,
		&m.AmountLimit,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// UpsertBudget inserts or replaces the budget for its (category, ministry,
// year) tuple. The conflict target matches the partial-free unique index with
// COALESCE so a NULL ministry collides with another NULL ministry.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	m := mapping.ToModelBudget(budget)

	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (category_id, COALESCE(ministry_id::text, ''), year)
		DO UPDATE SET amount_limit = EXCLUDED.amount_limit,
		              last_updated_at = EXCLUDED.last_updated_at,
		              last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + budgetColumns + `;
	`

	stored, err := scanBudget(r.pool.QueryRow(ctx, query,
		m.BudgetID,
		m.CategoryID,
		m.MinistryID,
		m.Year,
		m.AmountLimit,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fmt.Errorf("%w: budget references a missing category or ministry", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to upsert budget for category %s year %d: %w", m.CategoryID, m.Year, err)
	}

	d := mapping.ToDomainBudget(stored)
	return &d, nil
}

// FindBudgetByID retrieves a budget by its ID.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`

	m, err := scanBudget(r.pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget by ID %s: %w", budgetID, err)
	}

	d := mapping.ToDomainBudget(m)
	return &d, nil
}

// ListBudgetsByYear retrieves all budgets defined for a year.
func (r *PgxBudgetRepository) ListBudgetsByYear(ctx context.Context, year int) ([]domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE year = $1
		ORDER BY category_id, COALESCE(ministry_id::text, '');
	`

	rows, err := r.pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for year %d: %w", year, err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}

	return mapping.ToDomainBudgetSlice(budgets), nil
}

// ComputeExecutedTotal sums live transaction amounts for a category and year,
// optionally narrowed to one ministry. Always reads the ledger directly.
func (r *PgxBudgetRepository) ComputeExecutedTotal(ctx context.Context, categoryID string, ministryID *string, year int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE category_id = $1
		  AND deleted_at IS NULL
		  AND EXTRACT(YEAR FROM transaction_date) = $2
		  AND ($3::uuid IS NULL OR ministry_id = $3::uuid);
	`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, categoryID, year, ministryID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute executed total for category %s year %d: %w", categoryID, year, err)
	}
	return total, nil
}
