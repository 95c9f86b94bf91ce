package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/raissac/budget_management_backend/internal/apperrors"
	"github.com/raissac/budget_management_backend/internal/core/domain"
	portsrepo "github.com/raissac/budget_management_backend/internal/core/ports/repositories"
	portssvc "github.com/raissac/budget_management_backend/internal/core/ports/services"
	"github.com/raissac/budget_management_backend/internal/dto"
	"github.com/raissac/budget_management_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type TransactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	categoryRepo    portsrepo.CategoryRepository
	userRepo        portsrepo.UserRepository
}

func NewTransactionService(
	transactionRepo portsrepo.TransactionRepository,
	categoryRepo portsrepo.CategoryRepository,
	userRepo portsrepo.UserRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		userRepo:        userRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// validateCreateRequest checks the request as a whole and returns every
// failure at once, so a caller fixing a form sees the full picture.
func validateCreateRequest(req dto.CreateTransactionRequest) (time.Time, error) {
	var messages []string
	var date time.Time

	if req.Amount == nil {
		messages = append(messages, "Amount is required")
	} else if !req.Amount.IsPositive() {
		messages = append(messages, "Amount must be greater than 0")
	}

	if req.Date == "" {
		messages = append(messages, "Date is required")
	} else {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			messages = append(messages, "Date must be in format YYYY-MM-DD")
		} else {
			date = parsed
		}
	}

	if req.Type == "" {
		messages = append(messages, "Type is required")
	} else if !domain.TransactionType(req.Type).IsValid() {
		messages = append(messages, "Type must be INCOME or EXPENSE")
	}

	if req.CategoryID == "" {
		messages = append(messages, "Category is required")
	}

	if len(messages) > 0 {
		return time.Time{}, apperrors.NewValidationError(messages...)
	}
	return date, nil
}

func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, ownerID string) (*domain.Transaction, error) {
	if _, err := s.userRepo.FindUserByID(ctx, ownerID); err != nil {
		return nil, err
	}

	date, err := validateCreateRequest(req)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		OwnerID:       ownerID,
		CategoryID:    category.CategoryID,
		Amount:        *req.Amount,
		Date:          date,
		Description:   req.Description,
		Type:          domain.TransactionType(req.Type),
		CategoryName:  category.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to save transaction", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, ownerID string, criteria domain.FilterCriteria, page, size int) (*dto.PageResponse[dto.TransactionResponse], error) {
	if _, err := s.userRepo.FindUserByID(ctx, ownerID); err != nil {
		return nil, err
	}

	page, size = pagination.Clamp(page, size, defaultPageSize, maxPageSize)
	filter := domain.NewTransactionFilter(ownerID, criteria)

	txns, total, err := s.transactionRepo.FindTransactionsPage(ctx, filter, page, size)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	meta := pagination.NewPageMeta(page, size, len(txns), total)
	return &dto.PageResponse[dto.TransactionResponse]{
		Content:       dto.ToTransactionResponseSlice(txns),
		Page:          meta.Page,
		TotalElements: meta.Count,
		TotalPages:    meta.TotalPages,
		First:         meta.First,
		Last:          meta.Last,
	}, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID, ownerID string) error {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}

	if txn.OwnerID != ownerID {
		s.LogInfo(ctx, "delete denied for foreign transaction",
			slog.String("transaction_id", transactionID),
			slog.String("owner_id", ownerID))
		return apperrors.ErrForbidden
	}

	if err := s.transactionRepo.DeleteTransactionByID(ctx, transactionID); err != nil {
		return err
	}

	s.LogInfo(ctx, "transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
