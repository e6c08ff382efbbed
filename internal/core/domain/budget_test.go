package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
)

func TestIsOverStrictlyAboveLimit(t *testing.T) {
	budget := domain.Budget{AmountLimit: decimal.NewFromInt(1000)}

	assert.False(t, budget.IsOver(decimal.NewFromInt(999)))
	assert.False(t, budget.IsOver(decimal.NewFromInt(1000)))
	assert.True(t, budget.IsOver(decimal.NewFromFloat(1000.01)))
}

func TestIsGoalMetAtEstimate(t *testing.T) {
	budget := domain.Budget{AmountLimit: decimal.NewFromInt(1000)}

	assert.False(t, budget.IsGoalMet(decimal.NewFromInt(999)))
	assert.True(t, budget.IsGoalMet(decimal.NewFromInt(1000)))
	assert.True(t, budget.IsGoalMet(decimal.NewFromInt(1500)))
}

func TestConsumedPercent(t *testing.T) {
	budget := domain.Budget{AmountLimit: decimal.NewFromInt(400)}

	assert.True(t, budget.ConsumedPercent(decimal.NewFromInt(100)).Equal(decimal.NewFromInt(25)))
	assert.True(t, budget.ConsumedPercent(decimal.NewFromInt(500)).Equal(decimal.NewFromInt(125)))
}

func TestConsumedPercentZeroLimit(t *testing.T) {
	budget := domain.Budget{AmountLimit: decimal.Zero}

	assert.True(t, budget.ConsumedPercent(decimal.NewFromInt(100)).IsZero())
}
