package services

import (
	"context"

	"github.com/raissac/budget_management_backend/internal/core/domain"
	"github.com/raissac/budget_management_backend/internal/dto"
)

// CategorySvcFacade defines category management operations.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, page, size int) (*dto.PageResponse[dto.CategoryResponse], error)
	ListActiveCategories(ctx context.Context) ([]domain.Category, error)
}
