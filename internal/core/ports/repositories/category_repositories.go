package repositories

import (
	"context"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
)

// CategoryRepository persists transaction categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// MinistryRepository persists ministries (organizational sub-units).
type MinistryRepository interface {
	SaveMinistry(ctx context.Context, ministry domain.Ministry) error
	FindMinistryByID(ctx context.Context, ministryID string) (*domain.Ministry, error)
	ListMinistries(ctx context.Context) ([]domain.Ministry, error)
}

// CurrencyRepository persists currency definitions.
type CurrencyRepository interface {
	SaveCurrency(ctx context.Context, currency domain.Currency) error
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
