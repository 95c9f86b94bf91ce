package domain_test

import (
	"testing"
	"time"

	"github.com/raissac/budget_management_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionFilter_AlwaysCarriesOwnerClause(t *testing.T) {
	filter := domain.NewTransactionFilter("owner-1", domain.FilterCriteria{})

	require.Len(t, filter.Clauses(), 1)
	owner, ok := filter.Clauses()[0].(domain.OwnerEquals)
	require.True(t, ok)
	assert.Equal(t, "owner-1", owner.OwnerID)
	assert.Equal(t, "owner-1", filter.OwnerID())
}

func TestNewTransactionFilter_OwnerClauseFirstWithCriteria(t *testing.T) {
	min := decimal.RequireFromString("10")
	txnType := domain.Expense
	filter := domain.NewTransactionFilter("owner-1", domain.FilterCriteria{
		MinAmount: &min,
		Type:      &txnType,
	})

	require.Len(t, filter.Clauses(), 3)
	_, ok := filter.Clauses()[0].(domain.OwnerEquals)
	assert.True(t, ok)
}

func TestNewTransactionFilter_NilFieldsContributeNoClause(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	max := decimal.RequireFromString("500")
	categoryID := "cat-1"

	filter := domain.NewTransactionFilter("owner-1", domain.FilterCriteria{
		MaxAmount:  &max,
		StartDate:  &start,
		EndDate:    &end,
		CategoryID: &categoryID,
	})

	require.Len(t, filter.Clauses(), 5)
	assert.Contains(t, filter.Clauses(), domain.AmountAtMost{Max: max})
	assert.Contains(t, filter.Clauses(), domain.DateAtLeast{Start: start})
	assert.Contains(t, filter.Clauses(), domain.DateAtMost{End: end})
	assert.Contains(t, filter.Clauses(), domain.CategoryEquals{CategoryID: categoryID})
}

func TestTransactionTypeIsValid(t *testing.T) {
	assert.True(t, domain.Income.IsValid())
	assert.True(t, domain.Expense.IsValid())
	assert.False(t, domain.TransactionType("TRANSFER").IsValid())
	assert.False(t, domain.TransactionType("income").IsValid())
	assert.False(t, domain.TransactionType("").IsValid())
}
