package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parishkeep/church_treasury_app/internal/apperrors"
	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	portsrepo "github.com/parishkeep/church_treasury_app/internal/core/ports/repositories"
	"github.com/parishkeep/church_treasury_app/internal/models"
	"github.com/parishkeep/church_treasury_app/internal/utils/mapping"
)

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{pool: pool}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (category_id, name, category_type, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.CategoryType,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: category %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, category_type, created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		WHERE category_id = $1;
	`

	var m models.Category
	err := r.pool.QueryRow(ctx, query, categoryID).Scan(
		&m.CategoryID,
		&m.Name,
		&m.CategoryType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	d := mapping.ToDomainCategory(m)
	return &d, nil
}

// ListCategories retrieves all categories ordered by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT category_id, name, category_type, created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		ORDER BY name;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var m models.Category
		err := rows.Scan(
			&m.CategoryID,
			&m.Name,
			&m.CategoryType,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return mapping.ToDomainCategorySlice(categories), nil
}

type PgxMinistryRepository struct {
	pool *pgxpool.Pool
}

// newPgxMinistryRepository creates a new repository for ministry data.
func newPgxMinistryRepository(pool *pgxpool.Pool) portsrepo.MinistryRepository {
	return &PgxMinistryRepository{pool: pool}
}

var _ portsrepo.MinistryRepository = (*PgxMinistryRepository)(nil)

// SaveMinistry inserts a new ministry.
func (r *PgxMinistryRepository) SaveMinistry(ctx context.Context, ministry domain.Ministry) error {
	m := mapping.ToModelMinistry(ministry)

	query := `
		INSERT INTO ministries (ministry_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		m.MinistryID,
		m.Name,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: ministry %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save ministry %s: %w", m.MinistryID, err)
	}
	return nil
}

// FindMinistryByID retrieves a ministry by its ID.
func (r *PgxMinistryRepository) FindMinistryByID(ctx context.Context, ministryID string) (*domain.Ministry, error) {
	query := `
		SELECT ministry_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM ministries
		WHERE ministry_id = $1;
	`

	var m models.Ministry
	err := r.pool.QueryRow(ctx, query, ministryID).Scan(
		&m.MinistryID,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ministry by ID %s: %w", ministryID, err)
	}

	d := mapping.ToDomainMinistry(m)
	return &d, nil
}

// ListMinistries retrieves all ministries ordered by name.
func (r *PgxMinistryRepository) ListMinistries(ctx context.Context) ([]domain.Ministry, error) {
	query := `
		SELECT ministry_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM ministries
		ORDER BY name;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ministries: %w", err)
	}
	defer rows.Close()

	ministries := []models.Ministry{}
	for rows.Next() {
		var m models.Ministry
		err := rows.Scan(
			&m.MinistryID,
			&m.Name,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ministry row: %w", err)
		}
		ministries = append(ministries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ministry rows: %w", err)
	}

	return mapping.ToDomainMinistrySlice(ministries), nil
}
