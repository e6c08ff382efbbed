package dto

import (
	"github.com/parishkeep/church_treasury_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name         string              `json:"name" binding:"required"`
	CategoryType domain.CategoryType `json:"categoryType" binding:"required,oneof=INCOME EXPENSE"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID   string              `json:"categoryID"`
	Name         string              `json:"name"`
	CategoryType domain.CategoryType `json:"categoryType"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:   c.CategoryID,
		Name:         c.Name,
		CategoryType: c.CategoryType,
	}
}

// ToCategoryResponses converts a slice of domain categories.
func ToCategoryResponses(cats []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		responses[i] = ToCategoryResponse(&c)
	}
	return responses
}

// CreateMinistryRequest defines the data needed to create a ministry.
type CreateMinistryRequest struct {
	Name string `json:"name" binding:"required"`
}

// MinistryResponse defines the data returned for a ministry.
type MinistryResponse struct {
	MinistryID string `json:"ministryID"`
	Name       string `json:"name"`
}

// ToMinistryResponse converts a domain.Ministry to MinistryResponse.
func ToMinistryResponse(m *domain.Ministry) MinistryResponse {
	return MinistryResponse{MinistryID: m.MinistryID, Name: m.Name}
}

// ToMinistryResponses converts a slice of domain ministries.
func ToMinistryResponses(ms []domain.Ministry) []MinistryResponse {
	responses := make([]MinistryResponse, len(ms))
	for i, m := range ms {
		responses[i] = ToMinistryResponse(&m)
	}
	return responses
}

// CreateCurrencyRequest defines the data needed to register a currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,len=3"`
	Symbol       string `json:"symbol" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Precision    int    `json:"precision" binding:"min=0,max=8"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
		Precision:    c.Precision,
	}
}

// ToCurrencyResponses converts a slice of domain currencies.
func ToCurrencyResponses(cs []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(cs))
	for i, c := range cs {
		responses[i] = ToCurrencyResponse(&c)
	}
	return responses
}
