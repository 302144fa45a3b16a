package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/openbooks/bookkeeping_app/internal/middleware"
)

// eventRecorder writes audit log records. Recording is best-effort: a failed
// write is logged and swallowed so it never rolls back the operation it
// describes.
type eventRecorder struct {
	eventRepo portsrepo.EventRepositoryFacade
}

// NewEventRecorder creates a new audit event recorder.
func NewEventRecorder(eventRepo portsrepo.EventRepositoryFacade) portssvc.EventSvcFacade {
	return &eventRecorder{eventRepo: eventRepo}
}

var _ portssvc.EventSvcFacade = (*eventRecorder)(nil)

// Record persists one audit record with JSON snapshots of the state before
// and after the change. Nil snapshots are stored as empty strings.
func (s *eventRecorder) Record(ctx context.Context, userID string, action string, before any, after any) {
	logger := middleware.GetLoggerFromCtx(ctx)

	event := domain.Event{
		EventID:   uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Before:    marshalSnapshot(before),
		After:     marshalSnapshot(after),
		Timestamp: time.Now().UTC(),
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		logger.Warn("Failed to record audit event", slog.String("action", action), slog.String("error", err.Error()))
	}
}

// ListEvents returns audit records newest first.
func (s *eventRecorder) ListEvents(ctx context.Context, limit int, offset int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.eventRepo.ListEvents(ctx, limit, offset)
}

func marshalSnapshot(v any) string {
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
