package repositories

import (
	"context"

	"github.com/raissac/budget_management_backend/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// SaveCategory persists a new category. Returns apperrors.ErrDuplicate when
	// the unique name constraint is violated.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates name and active flag of an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// FindCategoryByID returns apperrors.ErrCategoryNotFound when no row matches.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategoryByName returns apperrors.ErrCategoryNotFound when no row matches.
	FindCategoryByName(ctx context.Context, name string) (*domain.Category, error)

	// FindCategories returns one page of categories ordered by name ascending,
	// plus the total number of categories.
	FindCategories(ctx context.Context, page, size int) ([]domain.Category, int64, error)

	// FindActiveCategories returns all active categories ordered by name ascending.
	FindActiveCategories(ctx context.Context) ([]domain.Category, error)
}
