package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories over one shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	accountRepo := NewPgxAccountRepository(pool)
	ledgerRepo := NewPgxLedgerRepository(pool)
	entryRepo := NewPgxEntryRepository(pool, accountRepo, ledgerRepo)

	return &portsrepo.RepositoryProvider{
		Account: accountRepo,
		Entry:   entryRepo,
		Ledger:  ledgerRepo,
		User:    NewPgxUserRepository(pool),
		Event:   NewPgxEventRepository(pool),
	}
}
