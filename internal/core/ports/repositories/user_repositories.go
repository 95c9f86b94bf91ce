package repositories

import (
	"context"

	"github.com/raissac/budget_management_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// email is already registered.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID returns apperrors.ErrUserNotFound when no row matches.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail returns apperrors.ErrUserNotFound when no row matches.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
