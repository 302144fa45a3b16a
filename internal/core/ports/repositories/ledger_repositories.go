package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

// LedgerRepositoryFacade defines access to the append-only ledger.
// Rows are only ever inserted, never updated or deleted.
type LedgerRepositoryFacade interface {
	// FindRowsByAccountNumber returns the account's audit trail in posting order.
	FindRowsByAccountNumber(ctx context.Context, accountNumber string) ([]domain.LedgerRow, error)
	FindRowsByEntryID(ctx context.Context, entryID string) ([]domain.LedgerRow, error)
	// HasRowsForEntry reports whether the entry has already been posted.
	HasRowsForEntry(ctx context.Context, entryID string) (bool, error)
	// InsertRowsInTx appends rows inside an existing transaction.
	InsertRowsInTx(ctx context.Context, tx pgx.Tx, rows []domain.LedgerRow) error
}
