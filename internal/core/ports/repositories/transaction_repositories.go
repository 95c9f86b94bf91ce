package repositories

import (
	"context"

	"github.com/raissac/budget_management_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionRepository defines the query surface of the transaction store.
// Every read here is owner-scoped: either through an explicit ownerID argument
// or through the OwnerEquals clause a domain.TransactionFilter always carries.
type TransactionRepository interface {
	// SaveTransaction persists a new transaction under its pre-assigned ID.
	// It never overwrites an existing row.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionByID returns apperrors.ErrTransactionNotFound when no row matches.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsPage returns one page of transactions matching the filter,
	// ordered by date ascending with transaction_id as a deterministic tiebreak,
	// plus the total number of matching rows. page is 0-based.
	FindTransactionsPage(ctx context.Context, filter domain.TransactionFilter, page, size int) ([]domain.Transaction, int64, error)

	// DeleteTransactionByID hard-deletes a transaction. A second delete of the
	// same ID fails with apperrors.ErrTransactionNotFound, not an unrelated fault.
	DeleteTransactionByID(ctx context.Context, transactionID string) error

	// SumByType returns the sum of amounts of the owner's transactions of the
	// given type, decimal.Zero when no rows match.
	SumByType(ctx context.Context, ownerID string, txnType domain.TransactionType) (decimal.Decimal, error)

	// SumExpensesByCategory returns the owner's expense totals grouped by
	// category name, ordered by total descending then name ascending.
	SumExpensesByCategory(ctx context.Context, ownerID string) ([]domain.CategoryTotal, error)

	// SumByMonth returns income/expense totals per month of the given year for
	// months that have at least one transaction, ordered by month ascending.
	// Months without activity are omitted, not zero-filled.
	SumByMonth(ctx context.Context, ownerID string, year int) ([]domain.MonthlyTotal, error)

	// FindAllByOwner returns the owner's entire transaction set with category
	// names populated, in date-ascending order, for export.
	FindAllByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error)
}
