package services

import (
	"context"
	"io"

	"github.com/raissac/budget_management_backend/internal/core/domain"
)

// ReportingSvcFacade derives analytics views for one owner from the store's
// grouped-sum primitives. Absence of data yields zero totals or empty lists,
// never an error.
type ReportingSvcFacade interface {
	Balance(ctx context.Context, ownerID string) (*domain.BalanceSummary, error)
	TotalSpentPerCategory(ctx context.Context, ownerID string) ([]domain.CategoryTotal, error)
	TopSpendingCategories(ctx context.Context, ownerID string) ([]domain.CategoryTotal, error)
	MonthlySummary(ctx context.Context, ownerID string, year int) ([]domain.MonthlyTotal, error)
}

// ExportSvcFacade serializes an owner's full ledger to a tabular text stream.
type ExportSvcFacade interface {
	// ExportTransactionsCSV writes the CSV document to w. Any write fault is
	// reported as apperrors.ErrExport.
	ExportTransactionsCSV(ctx context.Context, ownerID string, w io.Writer) error
}
