package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one row of a grouped-by-category expense sum.
type CategoryTotal struct {
	CategoryName string          `json:"categoryName"`
	TotalSpent   decimal.Decimal `json:"totalSpent"`
}

// MonthlyTotal is one row of a grouped-by-month income/expense sum.
// Only months with at least one transaction in the queried year are present.
type MonthlyTotal struct {
	Month    time.Month      `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// BalanceSummary holds the owner's overall income, expenses and net balance.
type BalanceSummary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`
}
