package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// IsValid reports whether the type is one of the known enum values.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction represents a single money movement recorded by a user.
// OwnerID is set once at creation from the authenticated caller and never changes.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	OwnerID       string          `json:"ownerID"`       // FK -> User.userID (Not Null, immutable)
	CategoryID    string          `json:"categoryID"`    // FK -> Category.categoryID (Not Null)
	Amount        decimal.Decimal `json:"amount"`        // Positive value; precise decimal type
	Date          time.Time       `json:"date"`          // Calendar date, no time component
	Description   string          `json:"description"`   // Nullable
	Type          TransactionType `json:"type"`          // INCOME or EXPENSE (Not Null)
	CategoryName  string          `json:"categoryName"`  // Populated on reads that join categories
	AuditFields
}
