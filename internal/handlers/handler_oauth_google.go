package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/raissac/budget_management_backend/internal/core/ports/services"
	"github.com/raissac/budget_management_backend/internal/dto"
	"github.com/raissac/budget_management_backend/internal/middleware"
	"github.com/raissac/budget_management_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// GoogleOAuthHandler handles Google OAuth related requests.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
	}
}

// ExchangeCodeRequest is the JSON body for the /google/exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

func registerGoogleOAuthRoutes(rg *gin.RouterGroup, _ *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token)
	rg.POST("/google/exchange-code", h.ExchangeCodeGoogle)
}

// ExchangeCodeGoogle godoc
// @Summary Exchange Google authorization code for access token
// @Description Exchanges the authorization code from the frontend for Google tokens, validates the ID token, resolves the local user and returns an application JWT.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Authorization code is required")
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("failed to exchange authorization code with Google", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			ErrorCode:        http.StatusBadGateway,
			ErrorDescription: "Failed to communicate with Google OAuth service",
		})
		return
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		logger.Error("id_token missing from Google token response")
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			ErrorCode:        http.StatusBadGateway,
			ErrorDescription: "Google did not return an identity token",
		})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		logger.Error("failed to validate Google id token", slog.String("error", err.Error()))
		respondBadRequest(c, "Invalid identity token")
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		respondBadRequest(c, "Identity token is missing the email claim")
		return
	}

	user, err := h.userService.GetOrCreateGoogleUser(ctx, email, name)
	if err != nil {
		respondError(c, err)
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("failed to sign access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			ErrorCode:        http.StatusInternalServerError,
			ErrorDescription: "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
