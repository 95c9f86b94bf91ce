package services

import (
	"context"
	"errors"
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

type CategoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

func NewCategoryService(categoryRepo portsrepo.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	existing, err := s.categoryRepo.FindCategoryByName(ctx, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if existing != nil {
		if existing.Active {
			return nil, apperrors.NewValidationError("Category with name " + req.Name + " already exists")
		}
		return nil, apperrors.NewValidationError("Category with name " + req.Name + " exists but is inactive")
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Active:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewValidationError("Category with name " + req.Name + " already exists")
		}
		s.LogError(ctx, err, "failed to create category", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.LogInfo(ctx, "category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	if req.Active != nil {
		category.Active = *req.Active
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = updaterUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewValidationError("Category with name " + req.Name + " already exists")
		}
		s.LogError(ctx, err, "failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *CategoryService) ListCategories(ctx context.Context, page, size int) (*dto.PageResponse[dto.CategoryResponse], error) {
	page, size = pagination.Clamp(page, size, 20, 100)

	categories, total, err := s.categoryRepo.FindCategories(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	meta := pagination.NewPageMeta(page, size, len(categories), total)
	return &dto.PageResponse[dto.CategoryResponse]{
		Content:       dto.ToCategoryResponseSlice(categories),
		Page:          meta.Page,
		TotalElements: meta.Count,
		TotalPages:    meta.TotalPages,
		First:         meta.First,
		Last:          meta.Last,
	}, nil
}

func (s *CategoryService) ListActiveCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindActiveCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}
