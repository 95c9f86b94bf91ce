package services

import (
	"context"
	"fmt"

	"github.com/raissac/budget_management_backend/internal/core/domain"
	portsrepo "github.com/raissac/budget_management_backend/internal/core/ports/repositories"
	portssvc "github.com/raissac/budget_management_backend/internal/core/ports/services"
)

// topCategoryCount is the number of entries in the top spending report.
const topCategoryCount = 3

type ReportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
}

func NewReportingService(transactionRepo portsrepo.TransactionRepository) *ReportingService {
	return &ReportingService{transactionRepo: transactionRepo}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

func (s *ReportingService) Balance(ctx context.Context, ownerID string) (*domain.BalanceSummary, error) {
	income, err := s.transactionRepo.SumByType(ctx, ownerID, domain.Income)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}
	expenses, err := s.transactionRepo.SumByType(ctx, ownerID, domain.Expense)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return &domain.BalanceSummary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}, nil
}

func (s *ReportingService) TotalSpentPerCategory(ctx context.Context, ownerID string) ([]domain.CategoryTotal, error) {
	totals, err := s.transactionRepo.SumExpensesByCategory(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}
	if totals == nil {
		return []domain.CategoryTotal{}, nil
	}
	return totals, nil
}

func (s *ReportingService) TopSpendingCategories(ctx context.Context, ownerID string) ([]domain.CategoryTotal, error) {
	totals, err := s.TotalSpentPerCategory(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(totals) > topCategoryCount {
		totals = totals[:topCategoryCount]
	}
	return totals, nil
}

func (s *ReportingService) MonthlySummary(ctx context.Context, ownerID string, year int) ([]domain.MonthlyTotal, error) {
	totals, err := s.transactionRepo.SumByMonth(ctx, ownerID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions by month: %w", err)
	}
	if totals == nil {
		return []domain.MonthlyTotal{}, nil
	}
	return totals, nil
}
