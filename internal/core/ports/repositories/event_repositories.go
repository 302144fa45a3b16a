package repositories

import (
	"context"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

// EventRepositoryFacade defines persistence for the best-effort audit log.
type EventRepositoryFacade interface {
	SaveEvent(ctx context.Context, event domain.Event) error
	ListEvents(ctx context.Context, limit int, offset int) ([]domain.Event, error)
}
