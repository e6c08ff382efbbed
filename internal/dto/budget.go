package dto

import (
	"time"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefineBudgetRequest upserts the budget for a (category, ministry, year) tuple.
type DefineBudgetRequest struct {
	CategoryID  string          `json:"categoryID" binding:"required"`
	MinistryID  *string         `json:"ministryID"` // nil = church-wide
	Year        int             `json:"year" binding:"required"`
	AmountLimit decimal.Decimal `json:"amountLimit" binding:"required"`
}

// BudgetResponse defines the data returned for a budget definition.
type BudgetResponse struct {
	BudgetID    string          `json:"budgetID"`
	CategoryID  string          `json:"categoryID"`
	MinistryID  *string         `json:"ministryID,omitempty"`
	Year        int             `json:"year"`
	AmountLimit decimal.Decimal `json:"amountLimit"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:    b.BudgetID,
		CategoryID:  b.CategoryID,
		MinistryID:  b.MinistryID,
		Year:        b.Year,
		AmountLimit: b.AmountLimit,
		CreatedAt:   b.CreatedAt,
		CreatedBy:   b.CreatedBy,
	}
}

// BudgetExecutionResponse pairs a budget with its live execution state.
type BudgetExecutionResponse struct {
	Budget          BudgetResponse      `json:"budget"`
	CategoryType    domain.CategoryType `json:"categoryType"`
	Executed        decimal.Decimal     `json:"executed"`
	ConsumedPercent decimal.Decimal     `json:"consumedPercent"`
	IsOver          bool                `json:"isOver"`
	IsGoalMet       bool                `json:"isGoalMet"`
}

// ToBudgetExecutionResponse converts a domain.BudgetExecution to its response DTO.
func ToBudgetExecutionResponse(e *domain.BudgetExecution) BudgetExecutionResponse {
	return BudgetExecutionResponse{
		Budget:          ToBudgetResponse(&e.Budget),
		CategoryType:    e.CategoryType,
		Executed:        e.Executed,
		ConsumedPercent: e.ConsumedPercent,
		IsOver:          e.IsOver,
		IsGoalMet:       e.IsGoalMet,
	}
}

// ToBudgetExecutionResponses converts a slice of domain budget executions.
func ToBudgetExecutionResponses(execs []domain.BudgetExecution) []BudgetExecutionResponse {
	responses := make([]BudgetExecutionResponse, len(execs))
	for i, e := range execs {
		responses[i] = ToBudgetExecutionResponse(&e)
	}
	return responses
}

// BudgetCoherenceResponse defines the planned-vs-actual comparison for a year.
type BudgetCoherenceResponse struct {
	Year               int             `json:"year"`
	ProjectedBalance   decimal.Decimal `json:"projectedBalance"`
	RealBalance        decimal.Decimal `json:"realBalance"`
	IsProjectedDeficit bool            `json:"isProjectedDeficit"`
	IsRealDeficit      bool            `json:"isRealDeficit"`
}

// ToBudgetCoherenceResponse converts a domain.BudgetCoherence to its response DTO.
func ToBudgetCoherenceResponse(c *domain.BudgetCoherence) BudgetCoherenceResponse {
	return BudgetCoherenceResponse{
		Year:               c.Year,
		ProjectedBalance:   c.ProjectedBalance,
		RealBalance:        c.RealBalance,
		IsProjectedDeficit: c.IsProjectedDeficit,
		IsRealDeficit:      c.IsRealDeficit,
	}
}

// ListBudgetsParams defines query parameters for listing budgets.
type ListBudgetsParams struct {
	Year int `form:"year" binding:"required"`
}
