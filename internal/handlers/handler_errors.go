package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/raissac/budget_management_backend/internal/apperrors"
	"github.com/raissac/budget_management_backend/internal/dto"
	"github.com/raissac/budget_management_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError translates a service error into the stable error response shape.
// Internal details never leak to the client; they are logged instead.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			ErrorCode:        http.StatusBadRequest,
			ErrorDescription: "Validation failed",
			ValidationErrors: validationErr.Messages,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			ErrorCode:        http.StatusNotFound,
			ErrorDescription: "User not found",
		})
	case errors.Is(err, apperrors.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			ErrorCode:        http.StatusNotFound,
			ErrorDescription: "Category not found",
		})
	case errors.Is(err, apperrors.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			ErrorCode:        http.StatusNotFound,
			ErrorDescription: "Transaction not found",
		})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			ErrorCode:        http.StatusNotFound,
			ErrorDescription: "Resource not found",
		})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			ErrorCode:        http.StatusForbidden,
			ErrorDescription: "Access denied",
		})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			ErrorCode:        http.StatusUnauthorized,
			ErrorDescription: "Unauthorized",
		})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			ErrorCode:        http.StatusConflict,
			ErrorDescription: "Resource already exists",
		})
	case errors.Is(err, apperrors.ErrExport):
		logger.Error("export failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			ErrorCode:        http.StatusInternalServerError,
			ErrorDescription: "Failed to export transactions",
		})
	default:
		logger.Error("unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			ErrorCode:        http.StatusInternalServerError,
			ErrorDescription: "Internal server error",
		})
	}
}

// respondBadRequest reports a malformed request body or query parameter.
func respondBadRequest(c *gin.Context, description string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		ErrorCode:        http.StatusBadRequest,
		ErrorDescription: description,
	})
}
