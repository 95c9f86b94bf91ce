package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/raissac/budget_management_backend/internal/apperrors"
	"github.com/raissac/budget_management_backend/internal/core/domain"
	portsrepo "github.com/raissac/budget_management_backend/internal/core/ports/repositories"
	"github.com/raissac/budget_management_backend/internal/models"
	"github.com/raissac/budget_management_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a new repository for transaction data.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// foldFilter translates a compiled filter into SQL conditions and arguments.
// Placeholders are numbered starting at startArg. The OwnerEquals clause is
// always present in the filter, so the result never matches across owners.
func foldFilter(filter domain.TransactionFilter, startArg int) (string, []interface{}) {
	conditions := make([]string, 0, len(filter.Clauses()))
	args := make([]interface{}, 0, len(filter.Clauses()))

	next := func() string {
		return "$" + strconv.Itoa(startArg+len(args))
	}

	for _, clause := range filter.Clauses() {
		switch c := clause.(type) {
		case domain.OwnerEquals:
			conditions = append(conditions, "t.owner_id = "+next())
			args = append(args, c.OwnerID)
		case domain.AmountAtLeast:
			conditions = append(conditions, "t.amount >= "+next())
			args = append(args, c.Min)
		case domain.AmountAtMost:
			conditions = append(conditions, "t.amount <= "+next())
			args = append(args, c.Max)
		case domain.DateAtLeast:
			conditions = append(conditions, "t.date >= "+next())
			args = append(args, c.Start)
		case domain.DateAtMost:
			conditions = append(conditions, "t.date <= "+next())
			args = append(args, c.End)
		case domain.TypeEquals:
			conditions = append(conditions, "t.type = "+next())
			args = append(args, string(c.Type))
		case domain.CategoryEquals:
			conditions = append(conditions, "t.category_id = "+next())
			args = append(args, c.CategoryID)
		}
	}

	return strings.Join(conditions, " AND "), args
}

// SaveTransaction inserts a new transaction row. The ID is pre-assigned by the
// service; a collision surfaces as a unique violation rather than an overwrite.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (
			transaction_id, owner_id, category_id, amount, date, description, type,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.OwnerID,
		modelTxn.CategoryID,
		modelTxn.Amount,
		modelTxn.Date,
		modelTxn.Description,
		modelTxn.Type,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+modelTxn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID with the category name joined in.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT t.transaction_id, t.owner_id, t.category_id, t.amount, t.date, t.description, t.type,
		       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by, c.name
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE t.transaction_id = $1;
	`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.OwnerID,
		&m.CategoryID,
		&m.Amount,
		&m.Date,
		&m.Description,
		&m.Type,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(m)
	return &domainTxn, nil
}

// FindTransactionsPage retrieves one page of transactions matching the filter,
// ordered by date ascending with transaction_id as a deterministic tiebreak,
// plus the total number of matching rows.
func (r *PgxTransactionRepository) FindTransactionsPage(ctx context.Context, filter domain.TransactionFilter, page, size int) ([]domain.Transaction, int64, error) {
	where, args := foldFilter(filter, 1)

	countQuery := "SELECT COUNT(*) FROM transactions t WHERE " + where + ";"
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}

	limitArg := "$" + strconv.Itoa(len(args)+1)
	offsetArg := "$" + strconv.Itoa(len(args)+2)
	query := `
		SELECT t.transaction_id, t.owner_id, t.category_id, t.amount, t.date, t.description, t.type,
		       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by, c.name
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE ` + where + `
		ORDER BY t.date ASC, t.transaction_id ASC
		LIMIT ` + limitArg + ` OFFSET ` + offsetArg + `;`
	args = append(args, size, page*size)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query transactions page", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.OwnerID,
			&m.CategoryID,
			&m.Amount,
			&m.Date,
			&m.Description,
			&m.Type,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.CategoryName,
		)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		transactions = append(transactions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	return mapping.ToDomainTransactionSlice(transactions), total, nil
}

// DeleteTransactionByID hard-deletes a transaction row.
func (r *PgxTransactionRepository) DeleteTransactionByID(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// SumByType returns the total amount of the owner's transactions of one type,
// zero when no rows match.
func (r *PgxTransactionRepository) SumByType(ctx context.Context, ownerID string, txnType domain.TransactionType) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE owner_id = $1 AND type = $2;
	`
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, ownerID, string(txnType)).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, fmt.Sprintf("failed to sum %s transactions", txnType), err)
	}
	return sum, nil
}

// SumExpensesByCategory returns the owner's expense totals grouped by category
// name, largest first, name ascending on equal totals.
func (r *PgxTransactionRepository) SumExpensesByCategory(ctx context.Context, ownerID string) ([]domain.CategoryTotal, error) {
	query := `
		SELECT c.name, SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE t.owner_id = $1 AND t.type = 'EXPENSE'
		GROUP BY c.name
		ORDER BY total DESC, c.name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expense totals per category", err)
	}
	defer rows.Close()

	result := []domain.CategoryTotal{}
	for rows.Next() {
		var row domain.CategoryTotal
		if err := rows.Scan(&row.CategoryName, &row.TotalSpent); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category total row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category total rows", err)
	}

	return result, nil
}

// SumByMonth returns income/expense totals for each month of the year that has
// at least one transaction. Months without activity produce no row.
func (r *PgxTransactionRepository) SumByMonth(ctx context.Context, ownerID string, year int) ([]domain.MonthlyTotal, error) {
	query := `
		SELECT EXTRACT(MONTH FROM date)::int AS month,
		       SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END) AS income,
		       SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END) AS expenses
		FROM transactions
		WHERE owner_id = $1 AND EXTRACT(YEAR FROM date) = $2
		GROUP BY month
		ORDER BY month ASC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, year)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query monthly totals", err)
	}
	defer rows.Close()

	result := []domain.MonthlyTotal{}
	for rows.Next() {
		var month int
		var income, expenses decimal.Decimal
		if err := rows.Scan(&month, &income, &expenses); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan monthly total row", err)
		}
		result = append(result, domain.MonthlyTotal{
			Month:    time.Month(month),
			Income:   income,
			Expenses: expenses,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating monthly total rows", err)
	}

	return result, nil
}

// FindAllByOwner returns the owner's entire transaction set with category names,
// date ascending, for export.
func (r *PgxTransactionRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	query := `
		SELECT t.transaction_id, t.owner_id, t.category_id, t.amount, t.date, t.description, t.type,
		       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by, c.name
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE t.owner_id = $1
		ORDER BY t.date ASC, t.transaction_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for owner", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.OwnerID,
			&m.CategoryID,
			&m.Amount,
			&m.Date,
			&m.Description,
			&m.Type,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.CategoryName,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row for owner", err)
		}
		transactions = append(transactions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows for owner", err)
	}

	return mapping.ToDomainTransactionSlice(transactions), nil
}
