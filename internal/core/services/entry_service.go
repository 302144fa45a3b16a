package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks/bookkeeping_app/internal/apperrors"
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/openbooks/bookkeeping_app/internal/dto"
	"github.com/openbooks/bookkeeping_app/internal/middleware"
	"github.com/openbooks/bookkeeping_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// entryService owns the journal entry lifecycle.
type entryService struct {
	entryRepo  portsrepo.EntryRepositoryFacade
	accountSvc portssvc.AccountSvcFacade
	actors     portssvc.ActorResolver
	events     portssvc.EventRecorderFacade
	// autoPostOnCreate lets entries created by a user with posting authority
	// skip the pending queue: they are approved and posted in the same call.
	autoPostOnCreate bool
}

// NewEntryService creates a new EntryService.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, accountSvc portssvc.AccountSvcFacade, actors portssvc.ActorResolver, events portssvc.EventRecorderFacade, autoPostOnCreate bool) portssvc.EntrySvcFacade {
	return &entryService{
		entryRepo:        entryRepo,
		accountSvc:       accountSvc,
		actors:           actors,
		events:           events,
		autoPostOnCreate: autoPostOnCreate,
	}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// CreateEntry validates and persists a new journal entry. Validation collects
// every violation before reporting, so the caller can fix all of them at once.
// Nothing is persisted unless every rule passes.
func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	entryDate := now
	if req.Date != nil {
		entryDate = req.Date.UTC()
	}
	entryID := uuid.NewString()

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   lineReq.AccountID,
			Debit:       lineReq.Debit.Round(2),
			Credit:      lineReq.Credit.Round(2),
			Description: lineReq.Description,
			CreatedAt:   now,
		}
	}

	result := accounting.ValidateLines(lines)
	if !result.OK {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(result.Errors, "; "))
	}

	accountIDs := make([]string, len(lines))
	for i, line := range lines {
		accountIDs[i] = line.AccountID
	}
	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, accountIDs)
	if err != nil {
		logger.Error("Failed to fetch accounts for entry creation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	var accountErrors []string
	for _, id := range accountIDs {
		acc, found := accounts[id]
		if !found {
			accountErrors = append(accountErrors, fmt.Sprintf("account %s does not exist", id))
			continue
		}
		if !acc.IsActive {
			accountErrors = append(accountErrors, fmt.Sprintf("account %s (%s) is inactive", acc.AccountNumber, acc.Name))
		}
	}
	if len(accountErrors) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(accountErrors, "; "))
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   entryDate,
		Status:      domain.StatusPending,
		TotalDebit:  totalDebit.Round(2),
		TotalCredit: totalCredit.Round(2),
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry, lines); err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	s.events.Record(ctx, creatorUserID, "entry.create", nil, entry)
	logger.Info("Journal entry created", slog.String("entry_id", entryID), slog.String("status", string(entry.Status)))

	if s.autoPostOnCreate {
		creator, err := s.actors.ResolveActor(ctx, creatorUserID)
		if err != nil {
			logger.Warn("Could not resolve creator for auto-post, entry stays pending", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			entry.Lines = lines
			return &entry, nil
		}
		if creator.Role.HasPostingAuthority() {
			posted, err := s.approveAndPost(ctx, entryID, creator)
			if err != nil {
				// The entry is saved and pending; the creator can retry the
				// approval or hand it to another manager.
				logger.Warn("Auto-post failed, entry stays pending", slog.String("error", err.Error()), slog.String("entry_id", entryID))
				entry.Lines = lines
				return &entry, nil
			}
			return posted, nil
		}
	}

	entry.Lines = lines
	return &entry, nil
}

// ApproveEntry transitions a pending entry to approved and posts it.
// Only users with posting authority may approve.
func (s *entryService) ApproveEntry(ctx context.Context, entryID string, actorUserID string) (*domain.JournalEntry, error) {
	actor, err := s.resolveAuthorizedActor(ctx, actorUserID, "approve")
	if err != nil {
		return nil, err
	}
	return s.approveAndPost(ctx, entryID, actor)
}

func (s *entryService) approveAndPost(ctx context.Context, entryID string, actor *domain.User) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	posted, err := s.entryRepo.ApproveAndPost(ctx, entryID, actor.UserID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Approval not applicable", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		default:
			logger.Error("Posting failed", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	s.events.Record(ctx, actor.UserID, "entry.approve", nil, posted)
	logger.Info("Journal entry approved and posted", slog.String("entry_id", entryID), slog.String("approved_by", actor.UserID))
	return posted, nil
}

// RejectEntry transitions a pending entry to rejected, tagging the entry's
// description with who rejected it and why.
func (s *entryService) RejectEntry(ctx context.Context, entryID string, reason string, actorUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: a rejection reason is required", apperrors.ErrValidation)
	}

	actor, err := s.resolveAuthorizedActor(ctx, actorUserID, "reject")
	if err != nil {
		return err
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}

	description := fmt.Sprintf("Rejected by %s: %s", actor.Username, strings.TrimSpace(reason))
	now := time.Now().UTC()
	if err := s.entryRepo.RejectEntry(ctx, entryID, description, actor.UserID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Rejection lost to a concurrent transition", slog.String("entry_id", entryID))
		}
		return err
	}

	s.events.Record(ctx, actor.UserID, "entry.reject", entry, nil)
	logger.Info("Journal entry rejected", slog.String("entry_id", entryID), slog.String("rejected_by", actor.UserID))
	return nil
}

// GetEntryByID retrieves an entry with its lines.
func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.entryRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to fetch lines for entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, apperrors.ErrInternal)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries returns a page of entries, with lines, newest first.
// Status defaults to pending; "all" lifts the status filter.
func (s *entryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	filter := portsrepo.ListEntriesFilter{
		From:   params.From,
		To:     params.To,
		Search: params.Search,
	}
	switch params.Status {
	case "", string(domain.StatusPending):
		status := domain.StatusPending
		filter.Status = &status
	case string(domain.StatusApproved):
		status := domain.StatusApproved
		filter.Status = &status
	case string(domain.StatusRejected):
		status := domain.StatusRejected
		filter.Status = &status
	case "all":
		// no status filter
	default:
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	entries, nextToken, err := s.entryRepo.ListEntries(ctx, filter, limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to list entries", slog.String("error", err.Error()))
		}
		return nil, err
	}

	if len(entries) > 0 {
		entryIDs := make([]string, len(entries))
		for i, entry := range entries {
			entryIDs[i] = entry.EntryID
		}
		linesByEntry, err := s.entryRepo.FindLinesByEntryIDs(ctx, entryIDs)
		if err != nil {
			// The page is still useful without line detail.
			logger.Warn("Failed to fetch lines for listed entries", slog.String("error", err.Error()))
		} else {
			for i := range entries {
				entries[i].Lines = linesByEntry[entries[i].EntryID]
			}
		}
	}

	responses := make([]dto.EntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToEntryResponse(&entries[i])
	}
	return &dto.ListEntriesResponse{Entries: responses, NextToken: nextToken}, nil
}

func (s *entryService) resolveAuthorizedActor(ctx context.Context, actorUserID string, action string) (*domain.User, error) {
	actor, err := s.actors.ResolveActor(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.HasPostingAuthority() {
		return nil, fmt.Errorf("%w: role %s may not %s entries", apperrors.ErrForbidden, actor.Role, action)
	}
	return actor, nil
}
