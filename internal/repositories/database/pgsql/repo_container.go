package pgsql

import (
	portsrepo "github.com/TraceKeep/custody_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all PostgreSQL repositories over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo: newPgxProductRepository(pool),
		JournalRepo: newPgxJournalRepository(pool),
		UserRepo:    newPgxUserRepository(pool),
	}
}
