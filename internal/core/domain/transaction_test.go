package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
)

func TestBalanceEffect(t *testing.T) {
	txn := domain.Transaction{
		SourceAccountID:      uuid.NewString(),
		DestinationAccountID: uuid.NewString(),
		Amount:               decimal.NewFromInt(250),
	}

	effect := txn.BalanceEffect()

	assert.Len(t, effect, 2)
	assert.True(t, effect[txn.SourceAccountID].Equal(decimal.NewFromInt(-250)))
	assert.True(t, effect[txn.DestinationAccountID].Equal(decimal.NewFromInt(250)))
}

func TestReversedBalanceEffectUndoesEffect(t *testing.T) {
	txn := domain.Transaction{
		SourceAccountID:      uuid.NewString(),
		DestinationAccountID: uuid.NewString(),
		Amount:               decimal.NewFromFloat(99.99),
	}

	net := domain.MergeBalanceChanges(txn.BalanceEffect(), txn.ReversedBalanceEffect())

	for id, delta := range net {
		assert.True(t, delta.IsZero(), "account %s should net to zero", id)
	}
}

func TestMergeBalanceChangesSumsSharedAccounts(t *testing.T) {
	shared := uuid.NewString()
	onlyA := uuid.NewString()
	onlyB := uuid.NewString()

	a := map[string]decimal.Decimal{
		shared: decimal.NewFromInt(100),
		onlyA:  decimal.NewFromInt(-100),
	}
	b := map[string]decimal.Decimal{
		shared: decimal.NewFromInt(-30),
		onlyB:  decimal.NewFromInt(30),
	}

	merged := domain.MergeBalanceChanges(a, b)

	assert.Len(t, merged, 3)
	assert.True(t, merged[shared].Equal(decimal.NewFromInt(70)))
	assert.True(t, merged[onlyA].Equal(decimal.NewFromInt(-100)))
	assert.True(t, merged[onlyB].Equal(decimal.NewFromInt(30)))
}

func TestIsDeleted(t *testing.T) {
	txn := domain.Transaction{}
	assert.False(t, txn.IsDeleted())

	now := time.Now()
	txn.DeletedAt = &now
	assert.True(t, txn.IsDeleted())
}
