package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbooks/bookkeeping_app/internal/apperrors"
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
)

// PgxEventRepository persists the audit event log.
type PgxEventRepository struct {
	BaseRepository
}

// NewPgxEventRepository creates a new repository for audit events.
func NewPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

// SaveEvent inserts one audit record.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	query := `
		INSERT INTO event_log (event_id, user_id, action, before, after, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, event.EventID, event.UserID, event.Action, event.Before, event.After, event.Timestamp)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save audit event", err)
	}
	return nil
}

// ListEvents returns audit records newest first.
func (r *PgxEventRepository) ListEvents(ctx context.Context, limit int, offset int) ([]domain.Event, error) {
	query := `
		SELECT event_id, user_id, action, before, after, timestamp
		FROM event_log
		ORDER BY timestamp DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list audit events", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.EventID, &e.UserID, &e.Action, &e.Before, &e.After, &e.Timestamp); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit event row", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit event rows", err)
	}
	return events, nil
}
