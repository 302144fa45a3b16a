package dto

import (
	"time"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// The account number is the natural key and must be digits only.
type CreateAccountRequest struct {
	AccountNumber  string                 `json:"accountNumber" binding:"required,numeric"`
	Name           string                 `json:"name" binding:"required"`
	Category       domain.AccountCategory `json:"category" binding:"required,oneof=asset liability equity revenue expense"`
	Description    string                 `json:"description"`
	InitialBalance decimal.Decimal        `json:"initialBalance"` // Optional opening balance on the normal side
}

// UpdateAccountRequest defines the fields allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AccountResponse mirrors domain.Account for API output.
type AccountResponse struct {
	AccountID     string                 `json:"accountID"`
	AccountNumber string                 `json:"accountNumber"`
	Name          string                 `json:"name"`
	Category      domain.AccountCategory `json:"category"`
	NormalSide    domain.NormalSide      `json:"normalSide"`
	Description   string                 `json:"description"`
	IsActive      bool                   `json:"isActive"`
	Balance       decimal.Decimal        `json:"balance"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     string                 `json:"createdBy"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Search string `form:"search"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		AccountNumber: acc.AccountNumber,
		Name:          acc.Name,
		Category:      acc.Category,
		NormalSide:    acc.NormalSide,
		Description:   acc.Description,
		IsActive:      acc.IsActive,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
	}
}

// ToAccountResponses converts a slice of domain.Account to AccountResponse DTOs.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
