package repositories

import (
	"context"
	"time"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

// ListEntriesFilter narrows an entry listing. Zero values mean "no filter".
type ListEntriesFilter struct {
	Status *domain.EntryStatus
	From   *time.Time
	To     *time.Time
	// Search matches case-insensitively against entry and line descriptions.
	Search string
}

// EntryRepositoryFacade defines persistence operations for journal entries,
// their lines, and the posting transition.
type EntryRepositoryFacade interface {
	// SaveEntry persists the entry header and all its lines in one transaction.
	// No partial entry is ever persisted.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	// FindLinesByEntryID returns the entry's lines in insertion order.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)
	FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error)

	// ListEntries returns entries matching filter, newest first, with a keyset
	// pagination token for the next page.
	ListEntries(ctx context.Context, filter ListEntriesFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// ApproveAndPost atomically flips the entry from pending to approved and
	// posts it: compare-and-swap on status, account row locks, ledger row
	// appends, and balance increments all commit or roll back together.
	// A CAS miss (entry no longer pending) returns ErrConflict; a posting
	// failure rolls everything back and returns ErrPosting, leaving the entry
	// pending. Returns the posted entry on success.
	ApproveAndPost(ctx context.Context, entryID string, approverID string, now time.Time) (*domain.JournalEntry, error)

	// RejectEntry atomically flips the entry from pending to rejected and
	// stores the rejection description. A CAS miss returns ErrConflict.
	RejectEntry(ctx context.Context, entryID string, description string, rejecterID string, now time.Time) error
}
