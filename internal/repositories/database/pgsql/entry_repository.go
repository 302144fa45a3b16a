package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbooks/bookkeeping_app/internal/apperrors"
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/openbooks/bookkeeping_app/internal/models"
	"github.com/openbooks/bookkeeping_app/internal/utils/accounting"
	"github.com/openbooks/bookkeeping_app/internal/utils/mapping"
	"github.com/openbooks/bookkeeping_app/internal/utils/pagination"
)

const entryColumns = `entry_id, entry_date, status, total_debit, total_credit, description, created_at, created_by, last_updated_at, last_updated_by`

// PgxEntryRepository persists journal entries and drives the posting
// transition. It collaborates with the account and ledger repositories for
// the pieces of a posting transaction that live in their tables.
type PgxEntryRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
}

// NewPgxEntryRepository creates a new repository for journal entry data.
func NewPgxEntryRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
		ledgerRepo:     ledgerRepo,
	}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

func scanEntry(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryDate,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveEntry persists the entry header and all its lines in one transaction.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelJournalEntry(entry)
	headerQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.EntryID,
		m.EntryDate,
		m.Status,
		m.TotalDebit,
		m.TotalCredit,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save entry header "+m.EntryID, err)
	}

	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, account_id, debit, credit, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		lm := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery, lm.LineID, lm.EntryID, lm.AccountID, lm.Debit, lm.Credit, lm.Description, lm.CreatedAt)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to save entry lines for "+m.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves an entry header by its ID.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(*m)
	return &entry, nil
}

const lineColumns = `l.line_id, l.entry_id, l.account_id, l.debit, l.credit, l.description, l.created_at, a.account_name`

func collectLines(rows pgx.Rows) ([]domain.JournalLine, error) {
	defer rows.Close()

	var lines []domain.JournalLine
	for rows.Next() {
		var m models.JournalLine
		var accountName string
		err := rows.Scan(&m.LineID, &m.EntryID, &m.AccountID, &m.Debit, &m.Credit, &m.Description, &m.CreatedAt, &accountName)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		line := mapping.ToDomainJournalLine(m)
		line.AccountName = accountName
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return lines, nil
}

// FindLinesByEntryID returns the entry's lines in insertion order.
func (r *PgxEntryRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM journal_lines l
		JOIN accounts a ON a.account_id = l.account_id
		WHERE l.entry_id = $1
		ORDER BY l.created_at, l.line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	return collectLines(rows)
}

// FindLinesByEntryIDs returns lines for multiple entries, grouped by entry ID.
func (r *PgxEntryRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.JournalLine{}, nil
	}

	query := `
		SELECT ` + lineColumns + `
		FROM journal_lines l
		JOIN accounts a ON a.account_id = l.account_id
		WHERE l.entry_id = ANY($1)
		ORDER BY l.created_at, l.line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entries", err)
	}
	lines, err := collectLines(rows)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]domain.JournalLine, len(entryIDs))
	for _, line := range lines {
		grouped[line.EntryID] = append(grouped[line.EntryID], line)
	}
	return grouped, nil
}

// ListEntries returns entries matching filter, newest first, using keyset
// pagination on (entry_date, created_at).
func (r *PgxEntryRepository) ListEntries(ctx context.Context, filter portsrepo.ListEntriesFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE 1=1`
	args := []any{}
	argPos := 1

	addArg := func(v any) string {
		args = append(args, v)
		placeholder := fmt.Sprintf("$%d", argPos)
		argPos++
		return placeholder
	}

	if filter.Status != nil {
		query += ` AND status = ` + addArg(string(*filter.Status))
	}
	if filter.From != nil {
		query += ` AND entry_date >= ` + addArg(*filter.From)
	}
	if filter.To != nil {
		query += ` AND entry_date <= ` + addArg(*filter.To)
	}
	if filter.Search != "" {
		pattern := addArg("%" + filter.Search + "%")
		query += ` AND (description ILIKE ` + pattern +
			` OR EXISTS (SELECT 1 FROM journal_lines l WHERE l.entry_id = journal_entries.entry_id AND l.description ILIKE ` + pattern + `))`
	}

	if nextToken != nil && *nextToken != "" {
		entryDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		dateArg := addArg(entryDate)
		createdArg := addArg(createdAt)
		query += ` AND (entry_date, created_at) < (` + dateArg + `, ` + createdArg + `)`
	}

	query += ` ORDER BY entry_date DESC, created_at DESC LIMIT ` + addArg(limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list entries", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		token = &t
	}
	return entries, token, nil
}

// ApproveAndPost flips the entry from pending to approved and posts it to the
// ledger in one transaction. The status flip is a compare-and-swap: of two
// concurrent approvals, exactly one sees a pending row and wins; the loser
// gets ErrConflict. Posting failures roll the whole transaction back, so the
// entry is never left approved without its ledger rows.
func (r *PgxEntryRepository) ApproveAndPost(ctx context.Context, entryID string, approverID string, now time.Time) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	casQuery := `
		UPDATE journal_entries
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $1 AND status = $5
		RETURNING ` + entryColumns + `;
	`
	m, err := scanEntry(tx.QueryRow(ctx, casQuery, entryID, models.StatusApproved, now, approverID, models.StatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveCASMiss(ctx, entryID, "approve")
		}
		return nil, apperrors.NewAppError(500, "failed to approve entry "+entryID, err)
	}
	entry := mapping.ToDomainJournalEntry(*m)

	// The CAS guarantees single posting; this guards against an entry that
	// somehow has ledger rows while still marked pending.
	posted, err := r.hasLedgerRowsInTx(ctx, tx, entryID)
	if err != nil {
		return nil, err
	}
	if posted {
		return nil, fmt.Errorf("%w: entry %s already has ledger rows", apperrors.ErrConflict, entryID)
	}

	lines, err := r.findLinesInTx(ctx, tx, entryID)
	if err != nil {
		return nil, err
	}

	accountIDs := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if !seen[line.AccountID] {
			seen[line.AccountID] = true
			accountIDs = append(accountIDs, line.AccountID)
		}
	}

	accounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrPosting, err.Error())
	}

	plan, err := accounting.BuildPostingPlan(entry, lines, accounts, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrPosting, err.Error())
	}

	if err := r.ledgerRepo.InsertRowsInTx(ctx, tx, plan.Rows); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrPosting, err.Error())
	}
	if err := r.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, plan.Deltas, approverID, now); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrPosting, err.Error())
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrPosting, err.Error())
	}

	entry.Lines = lines
	return &entry, nil
}

// RejectEntry flips the entry from pending to rejected, storing the rejection
// note in the description. Same compare-and-swap discipline as approval.
func (r *PgxEntryRepository) RejectEntry(ctx context.Context, entryID string, description string, rejecterID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $2, description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1 AND status = $6;
	`
	tag, err := r.Pool.Exec(ctx, query, entryID, models.StatusRejected, description, now, rejecterID, models.StatusPending)
	if err != nil {
		return apperrors.NewAppError(500, "failed to reject entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.resolveCASMiss(ctx, entryID, "reject")
	}
	return nil
}

// resolveCASMiss distinguishes "entry does not exist" from "entry is no
// longer pending" after a zero-row compare-and-swap.
func (r *PgxEntryRepository) resolveCASMiss(ctx context.Context, entryID string, action string) error {
	var status models.EntryStatus
	err := r.Pool.QueryRow(ctx, `SELECT status FROM journal_entries WHERE entry_id = $1;`, entryID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to resolve status of entry "+entryID, err)
	}
	return fmt.Errorf("%w: cannot %s entry %s in status %s", apperrors.ErrConflict, action, entryID, status)
}

func (r *PgxEntryRepository) hasLedgerRowsInTx(ctx context.Context, tx pgx.Tx, entryID string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ledger WHERE entry_id = $1);`, entryID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check ledger rows for entry "+entryID, err)
	}
	return exists, nil
}

func (r *PgxEntryRepository) findLinesInTx(ctx context.Context, tx pgx.Tx, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM journal_lines l
		JOIN accounts a ON a.account_id = l.account_id
		WHERE l.entry_id = $1
		ORDER BY l.created_at, l.line_id;
	`
	rows, err := tx.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	return collectLines(rows)
}
