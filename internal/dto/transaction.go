package dto

import (
	"github.com/raissac/budget_management_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Fields are deliberately loose here; the service validates them as a set and
// reports every failure at once, the way the API contract promises.
type CreateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Date        string           `json:"date"` // YYYY-MM-DD
	Description string           `json:"description"`
	Type        string           `json:"type"` // INCOME or EXPENSE
	CategoryID  string           `json:"categoryId"`
}

// TransactionResponse is the listing/read view of a transaction. The category
// is rendered by name, never by id.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Date         string          `json:"date"`
	Type         string          `json:"type"`
	CategoryName string          `json:"categoryName"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           txn.TransactionID,
		Amount:       txn.Amount,
		Description:  txn.Description,
		Date:         txn.Date.Format("2006-01-02"),
		Type:         string(txn.Type),
		CategoryName: txn.CategoryName,
	}
}

// ToTransactionResponseSlice converts a slice of domain transactions.
func ToTransactionResponseSlice(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
