package pgsql

import (
	"testing"
	"time"

	"github.com/raissac/budget_management_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldFilter_OwnerOnly(t *testing.T) {
	filter := domain.NewTransactionFilter("owner-1", domain.FilterCriteria{})

	where, args := foldFilter(filter, 1)

	assert.Equal(t, "t.owner_id = $1", where)
	require.Len(t, args, 1)
	assert.Equal(t, "owner-1", args[0])
}

func TestFoldFilter_AllClauses(t *testing.T) {
	min := decimal.RequireFromString("10")
	max := decimal.RequireFromString("500")
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	txnType := domain.Expense
	categoryID := "cat-1"

	filter := domain.NewTransactionFilter("owner-1", domain.FilterCriteria{
		MinAmount:  &min,
		MaxAmount:  &max,
		StartDate:  &start,
		EndDate:    &end,
		Type:       &txnType,
		CategoryID: &categoryID,
	})

	where, args := foldFilter(filter, 1)

	assert.Equal(t,
		"t.owner_id = $1 AND t.amount >= $2 AND t.amount <= $3 AND t.date >= $4 AND t.date <= $5 AND t.type = $6 AND t.category_id = $7",
		where)
	require.Len(t, args, 7)
	assert.Equal(t, "owner-1", args[0])
	assert.Equal(t, "EXPENSE", args[5])
	assert.Equal(t, "cat-1", args[6])
}

func TestFoldFilter_PlaceholderOffset(t *testing.T) {
	txnType := domain.Income
	filter := domain.NewTransactionFilter("owner-1", domain.FilterCriteria{Type: &txnType})

	where, args := foldFilter(filter, 3)

	assert.Equal(t, "t.owner_id = $3 AND t.type = $4", where)
	assert.Len(t, args, 2)
}
