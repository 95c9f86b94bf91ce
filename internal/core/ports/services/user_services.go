package services

import (
	"context"

	"github.com/raissac/budget_management_backend/internal/core/domain"
	"github.com/raissac/budget_management_backend/internal/dto"
)

// UserSvcFacade defines user management operations.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetOrCreateGoogleUser resolves the local user for a Google-authenticated
	// email, creating one on first login.
	GetOrCreateGoogleUser(ctx context.Context, email, name string) (*domain.User, error)
}
