package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRepositoryFacade defines persistence operations for the account registry.
// No accounting validation happens here; that is the callers' responsibility.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	// ListActiveAccounts returns active accounts ordered by account number.
	// A non-empty search term filters on account number or name.
	ListActiveAccounts(ctx context.Context, search string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error

	// ApplyBalanceDelta atomically adds delta to the account's balance in a
	// single UPDATE and returns the new balance. It must never be implemented
	// as a read followed by a separate write.
	ApplyBalanceDelta(ctx context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error)

	// FindAccountsByIDsForUpdate locks the account rows inside tx and returns
	// their current state. Missing accounts surface as ErrNotFound.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)
	// ApplyBalanceDeltasInTx applies the given per-account increments inside tx.
	ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error
}
