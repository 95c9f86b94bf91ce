package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the INCOME/EXPENSE enum stored in the type column.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction represents a row in the transactions table.
// Note: Amount uses github.com/shopspring/decimal against a NUMERIC column.
type Transaction struct {
	TransactionID string          `json:"transactionID" db:"transaction_id"`
	OwnerID       string          `json:"ownerID" db:"owner_id"`       // FK -> users, immutable after insert
	CategoryID    string          `json:"categoryID" db:"category_id"` // FK -> categories
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Date          time.Time       `json:"date" db:"date"`
	Description   string          `json:"description" db:"description"`
	Type          TransactionType `json:"type" db:"type"`
	AuditFields
	CategoryName string `json:"categoryName" db:"-"` // joined from categories on reads
}
