package services

import (
	portsrepo "github.com/raissac/budget_management_backend/internal/core/ports/repositories"
	portssvc "github.com/raissac/budget_management_backend/internal/core/ports/services"
	"github.com/raissac/budget_management_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CategoryRepo, repos.UserRepo)
	container.Reporting = NewReportingService(repos.TransactionRepo)
	container.Export = NewExportService(repos.TransactionRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
