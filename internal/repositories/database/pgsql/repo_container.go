package pgsql

import (
	portsrepo "github.com/raissac/budget_management_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        NewPgxUserRepository(pool),
		CategoryRepo:    NewPgxCategoryRepository(pool),
		TransactionRepo: NewPgxTransactionRepository(pool),
	}
}
