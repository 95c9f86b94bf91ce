package dto

import (
	"strings"

	"github.com/raissac/budget_management_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse reports the owner's overall income, expenses and net balance.
// All three fields are always present, zero-valued when no transactions exist.
type BalanceResponse struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// CategoryTotalResponse is one (categoryName, totalSpent) entry of the
// per-category expense report.
type CategoryTotalResponse struct {
	CategoryName string          `json:"categoryName"`
	TotalSpent   decimal.Decimal `json:"totalSpent"`
}

// MonthlySummaryResponse is one month's income/expense totals. Month is the
// upper-case English month name, e.g. JANUARY.
type MonthlySummaryResponse struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// ToBalanceResponse converts a domain.BalanceSummary to its DTO.
func ToBalanceResponse(summary *domain.BalanceSummary) BalanceResponse {
	return BalanceResponse{
		TotalIncome:   summary.TotalIncome,
		TotalExpenses: summary.TotalExpenses,
		Balance:       summary.Balance,
	}
}

// ToCategoryTotalResponses converts grouped category totals to DTOs.
func ToCategoryTotalResponses(totals []domain.CategoryTotal) []CategoryTotalResponse {
	res := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		res[i] = CategoryTotalResponse{CategoryName: t.CategoryName, TotalSpent: t.TotalSpent}
	}
	return res
}

// ToMonthlySummaryResponses converts grouped monthly totals to DTOs.
func ToMonthlySummaryResponses(totals []domain.MonthlyTotal) []MonthlySummaryResponse {
	res := make([]MonthlySummaryResponse, len(totals))
	for i, t := range totals {
		res[i] = MonthlySummaryResponse{
			Month:    strings.ToUpper(t.Month.String()),
			Income:   t.Income,
			Expenses: t.Expenses,
		}
	}
	return res
}
