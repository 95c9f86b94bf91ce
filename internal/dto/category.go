package dto

import (
	"time"

	"github.com/raissac/budget_management_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Active uses a pointer to distinguish an explicit false from an omitted field.
type UpdateCategoryRequest struct {
	Name   string `json:"name" binding:"required"`
	Active *bool  `json:"active" binding:"required"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActiveCategoryResponse is the slim view used when picking a category for a
// new transaction.
type ActiveCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.CategoryID,
		Name:      category.Name,
		Active:    category.Active,
		CreatedAt: category.CreatedAt,
	}
}

// ToCategoryResponseSlice converts a slice of domain categories.
func ToCategoryResponseSlice(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}

// ToActiveCategoryResponses converts active categories to their slim view.
func ToActiveCategoryResponses(categories []domain.Category) []ActiveCategoryResponse {
	res := make([]ActiveCategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = ActiveCategoryResponse{ID: c.CategoryID, Name: c.Name}
	}
	return res
}
