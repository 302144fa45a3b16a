package services

import (
	"context"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

// EventSvcFacade extends the recorder with read access for audit review.
type EventSvcFacade interface {
	EventRecorderFacade
	ListEvents(ctx context.Context, limit int, offset int) ([]domain.Event, error)
}

// ServiceContainer bundles every service facade for dependency injection
// into the HTTP layer.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Entry     EntrySvcFacade
	Reporting ReportingSvcFacade
	User      UserSvcFacade
	Events    EventSvcFacade
}
