package services

import (
	"context"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/openbooks/bookkeeping_app/internal/dto"
)

// ReportingSvcFacade exposes read-only folds over current account balances.
// Reports contain no business logic beyond arranging balances; presentation
// is the clients' concern.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context) (*domain.TrialBalance, error)
	IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error)
	BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error)
	RetainedEarnings(ctx context.Context) (*dto.RetainedEarningsResponse, error)
}
