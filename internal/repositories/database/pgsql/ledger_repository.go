package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbooks/bookkeeping_app/internal/apperrors"
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/openbooks/bookkeeping_app/internal/models"
	"github.com/openbooks/bookkeeping_app/internal/utils/mapping"
)

const ledgerColumns = `row_id, entry_id, account_number, account_name, date, description, debit, credit, balance, created_at`

// PgxLedgerRepository reads and appends the immutable ledger. There is no
// update or delete path on purpose.
type PgxLedgerRepository struct {
	BaseRepository
}

// NewPgxLedgerRepository creates a new repository for ledger data.
func NewPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func collectLedgerRows(rows pgx.Rows) ([]domain.LedgerRow, error) {
	defer rows.Close()

	var rowModels []models.LedgerRow
	for rows.Next() {
		var m models.LedgerRow
		err := rows.Scan(&m.RowID, &m.EntryID, &m.AccountNumber, &m.AccountName, &m.Date, &m.Description, &m.Debit, &m.Credit, &m.Balance, &m.CreatedAt)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger row", err)
		}
		rowModels = append(rowModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger rows", err)
	}
	return mapping.ToDomainLedgerRowSlice(rowModels), nil
}

// FindRowsByAccountNumber returns the account's rows in posting order, oldest
// first, so the running balance column reads top to bottom.
func (r *PgxLedgerRepository) FindRowsByAccountNumber(ctx context.Context, accountNumber string) ([]domain.LedgerRow, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger WHERE account_number = $1 ORDER BY created_at, row_id;`

	rows, err := r.Pool.Query(ctx, query, accountNumber)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger for account "+accountNumber, err)
	}
	return collectLedgerRows(rows)
}

// FindRowsByEntryID returns the rows one posted entry produced.
func (r *PgxLedgerRepository) FindRowsByEntryID(ctx context.Context, entryID string) ([]domain.LedgerRow, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger WHERE entry_id = $1 ORDER BY created_at, row_id;`

	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger for entry "+entryID, err)
	}
	return collectLedgerRows(rows)
}

// HasRowsForEntry reports whether the entry has already been posted.
func (r *PgxLedgerRepository) HasRowsForEntry(ctx context.Context, entryID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ledger WHERE entry_id = $1);`, entryID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check ledger rows for entry "+entryID, err)
	}
	return exists, nil
}

// InsertRowsInTx appends rows inside an existing transaction.
func (r *PgxLedgerRepository) InsertRowsInTx(ctx context.Context, tx pgx.Tx, rows []domain.LedgerRow) error {
	query := `
		INSERT INTO ledger (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	batch := &pgx.Batch{}
	for _, row := range rows {
		m := mapping.ToModelLedgerRow(row)
		batch.Queue(query, m.RowID, m.EntryID, m.AccountNumber, m.AccountName, m.Date, m.Description, m.Debit, m.Credit, m.Balance, m.CreatedAt)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert ledger rows", err)
	}
	return nil
}
