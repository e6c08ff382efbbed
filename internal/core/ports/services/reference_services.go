package services

import (
	"context"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	"github.com/parishkeep/church_treasury_app/internal/dto"
)

// CategorySvcFacade manages transaction categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// MinistrySvcFacade manages ministries.
type MinistrySvcFacade interface {
	CreateMinistry(ctx context.Context, req dto.CreateMinistryRequest, userID string) (*domain.Ministry, error)
	GetMinistryByID(ctx context.Context, ministryID string) (*domain.Ministry, error)
	ListMinistries(ctx context.Context) ([]domain.Ministry, error)
}

// CurrencySvcFacade manages currency definitions.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, userID string) (*domain.Currency, error)
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
