package services

import (
	"context"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/openbooks/bookkeeping_app/internal/dto"
)

// AccountSvcFacade defines the account registry operations exposed to handlers
// and to the journal entry workflow.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListActiveAccounts(ctx context.Context, search string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	// DeactivateAccount soft-deletes; accounts with a non-zero balance are refused.
	DeactivateAccount(ctx context.Context, accountID string, userID string) error
	// GetAccountLedger returns the account's posted audit trail in order.
	GetAccountLedger(ctx context.Context, accountID string) ([]domain.LedgerRow, error)
}
