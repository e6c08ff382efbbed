package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/parishkeep/church_treasury_app/internal/apperrors"
	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	portsrepo "github.com/parishkeep/church_treasury_app/internal/core/ports/repositories"
	portssvc "github.com/parishkeep/church_treasury_app/internal/core/ports/services"
	"github.com/parishkeep/church_treasury_app/internal/dto"
)

// categoryService manages the category reference registry.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	if !domain.ValidCategoryType(req.CategoryType) {
		return nil, fmt.Errorf("%w: invalid category type %q", apperrors.ErrValidation, req.CategoryType)
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:   uuid.NewString(),
		Name:         req.Name,
		CategoryType: req.CategoryType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "failed to create category", slog.String("name", req.Name))
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx)
}

// ministryService manages the ministry reference registry.
type ministryService struct {
	BaseService
	ministryRepo portsrepo.MinistryRepository
}

// NewMinistryService creates a new ministry service.
func NewMinistryService(ministryRepo portsrepo.MinistryRepository) portssvc.MinistrySvcFacade {
	return &ministryService{ministryRepo: ministryRepo}
}

var _ portssvc.MinistrySvcFacade = (*ministryService)(nil)

func (s *ministryService) CreateMinistry(ctx context.Context, req dto.CreateMinistryRequest, userID string) (*domain.Ministry, error) {
	now := time.Now()
	ministry := domain.Ministry{
		MinistryID: uuid.NewString(),
		Name:       req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.ministryRepo.SaveMinistry(ctx, ministry); err != nil {
		s.LogError(ctx, err, "failed to create ministry", slog.String("name", req.Name))
		return nil, err
	}
	return &ministry, nil
}

func (s *ministryService) GetMinistryByID(ctx context.Context, ministryID string) (*domain.Ministry, error) {
	return s.ministryRepo.FindMinistryByID(ctx, ministryID)
}

func (s *ministryService) ListMinistries(ctx context.Context) ([]domain.Ministry, error) {
	return s.ministryRepo.ListMinistries(ctx)
}

// currencyService manages the currency reference registry.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepository
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, userID string) (*domain.Currency, error) {
	now := time.Now()
	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Symbol:       req.Symbol,
		Name:         req.Name,
		Precision:    req.Precision,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "failed to create currency", slog.String("code", req.CurrencyCode))
		return nil, err
	}
	return &currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	return s.currencyRepo.FindCurrencyByCode(ctx, code)
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.currencyRepo.ListCurrencies(ctx)
}
