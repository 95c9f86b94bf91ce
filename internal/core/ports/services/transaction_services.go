package services

import (
	"context"

	"github.com/raissac/budget_management_backend/internal/core/domain"
	"github.com/raissac/budget_management_backend/internal/dto"
)

// TransactionSvcFacade defines the transaction ledger operations. The ownerID
// argument is the caller identity resolved once at the HTTP boundary; services
// never re-derive it from ambient state.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, ownerID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, ownerID string, criteria domain.FilterCriteria, page, size int) (*dto.PageResponse[dto.TransactionResponse], error)
	DeleteTransaction(ctx context.Context, transactionID, ownerID string) error
}
