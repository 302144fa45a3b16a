package services

import (
	"context"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/openbooks/bookkeeping_app/internal/dto"
)

// EntrySvcFacade owns the journal entry lifecycle: creation, approval,
// rejection, and read access.
type EntrySvcFacade interface {
	// CreateEntry validates and persists a new entry. Entries start pending;
	// creators with posting authority may be auto-approved and posted,
	// depending on configuration.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error)
	// ApproveEntry transitions pending -> approved and posts to the ledger.
	ApproveEntry(ctx context.Context, entryID string, actorUserID string) (*domain.JournalEntry, error)
	// RejectEntry transitions pending -> rejected, recording the reason.
	RejectEntry(ctx context.Context, entryID string, reason string, actorUserID string) error
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// ActorResolver resolves an authenticated user id into the user record whose
// role authorizes lifecycle transitions. Authentication itself happens at the
// transport layer; the entry service only checks permissions.
type ActorResolver interface {
	ResolveActor(ctx context.Context, userID string) (*domain.User, error)
}

// EventRecorderFacade records audit events after successful state changes.
// Recording is best-effort: implementations log failures and never return
// them into the business flow.
type EventRecorderFacade interface {
	Record(ctx context.Context, userID string, action string, before any, after any)
}
