package services

import (
	"context"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/openbooks/bookkeeping_app/internal/dto"
)

// UserSvcFacade defines user management and credential checks. It embeds
// ActorResolver so the entry lifecycle can authorize transitions against the
// same user records.
type UserSvcFacade interface {
	ActorResolver
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
	// AuthenticateUser verifies credentials and returns the user, or
	// ErrUnauthorized on any mismatch.
	AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error)
}
