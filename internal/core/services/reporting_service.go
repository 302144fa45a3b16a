package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/openbooks/bookkeeping_app/internal/dto"
	"github.com/openbooks/bookkeeping_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// reportingService derives all reports from current account balances.
// Because the poster keeps balances in lockstep with the ledger, no report
// ever re-walks ledger rows.
type reportingService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{accountRepo: accountRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) activeAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx, "")
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list accounts for reporting", slog.String("error", err.Error()))
		return nil, err
	}
	return accounts, nil
}

// TrialBalance lists every active account with its balance in the normal-side
// column. An abnormal (negative) balance flips into the opposite column, so
// both columns always read as positive amounts.
func (s *reportingService) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	accounts, err := s.activeAccounts(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.TrialBalance{
		AsOf:        time.Now().UTC(),
		Rows:        make([]domain.TrialBalanceRow, 0, len(accounts)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, acc := range accounts {
		row := domain.TrialBalanceRow{
			AccountNumber: acc.AccountNumber,
			AccountName:   acc.Name,
			Debit:         decimal.Zero,
			Credit:        decimal.Zero,
		}

		amount := acc.Balance
		side := acc.NormalSide
		if amount.IsNegative() {
			amount = amount.Neg()
			if side == domain.NormalDebit {
				side = domain.NormalCredit
			} else {
				side = domain.NormalDebit
			}
		}

		if side == domain.NormalDebit {
			row.Debit = amount
			report.TotalDebit = report.TotalDebit.Add(amount)
		} else {
			row.Credit = amount
			report.TotalCredit = report.TotalCredit.Add(amount)
		}
		report.Rows = append(report.Rows, row)
	}

	report.TotalDebit = report.TotalDebit.Round(2)
	report.TotalCredit = report.TotalCredit.Round(2)
	report.InBalance = report.TotalDebit.Equal(report.TotalCredit)
	return report, nil
}

// IncomeStatement folds revenue and expense balances into net income for the
// life of the books (periods are never closed).
func (s *reportingService) IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error) {
	accounts, err := s.activeAccounts(ctx)
	if err != nil {
		return nil, err
	}
	return buildIncomeStatement(accounts), nil
}

func buildIncomeStatement(accounts []domain.Account) *domain.IncomeStatement {
	report := &domain.IncomeStatement{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, acc := range accounts {
		line := domain.StatementLine{
			AccountNumber: acc.AccountNumber,
			AccountName:   acc.Name,
			Amount:        acc.Balance,
		}
		switch acc.Category {
		case domain.Revenue:
			report.Revenues = append(report.Revenues, line)
			report.TotalRevenue = report.TotalRevenue.Add(acc.Balance)
		case domain.Expense:
			report.Expenses = append(report.Expenses, line)
			report.TotalExpenses = report.TotalExpenses.Add(acc.Balance)
		}
	}

	report.TotalRevenue = report.TotalRevenue.Round(2)
	report.TotalExpenses = report.TotalExpenses.Round(2)
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpenses)
	return report
}

// BalanceSheet folds asset, liability, and equity balances. Net income from
// the income statement is carried into equity as retained earnings, which is
// what makes assets equal liabilities plus equity.
func (s *reportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error) {
	accounts, err := s.activeAccounts(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheet{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}

	for _, acc := range accounts {
		line := domain.StatementLine{
			AccountNumber: acc.AccountNumber,
			AccountName:   acc.Name,
			Amount:        acc.Balance,
		}
		switch acc.Category {
		case domain.Asset:
			report.Assets = append(report.Assets, line)
			report.TotalAssets = report.TotalAssets.Add(acc.Balance)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, line)
			report.TotalLiabilities = report.TotalLiabilities.Add(acc.Balance)
		case domain.Equity:
			report.Equity = append(report.Equity, line)
			report.TotalEquity = report.TotalEquity.Add(acc.Balance)
		}
	}

	report.RetainedEarnings = buildIncomeStatement(accounts).NetIncome
	report.TotalAssets = report.TotalAssets.Round(2)
	report.TotalLiabilities = report.TotalLiabilities.Round(2)
	report.TotalEquity = report.TotalEquity.Add(report.RetainedEarnings).Round(2)
	return report, nil
}

// RetainedEarnings reports the retained earnings roll-forward: the balance
// held in retained-earnings equity accounts plus net income to date.
func (s *reportingService) RetainedEarnings(ctx context.Context) (*dto.RetainedEarningsResponse, error) {
	accounts, err := s.activeAccounts(ctx)
	if err != nil {
		return nil, err
	}

	beginning := decimal.Zero
	for _, acc := range accounts {
		if acc.Category == domain.Equity && strings.Contains(strings.ToLower(acc.Name), "retained earnings") {
			beginning = beginning.Add(acc.Balance)
		}
	}
	beginning = beginning.Round(2)

	netIncome := buildIncomeStatement(accounts).NetIncome
	return &dto.RetainedEarningsResponse{
		BeginningBalance: beginning,
		NetIncome:        netIncome,
		EndingBalance:    beginning.Add(netIncome).Round(2),
	}, nil
}
