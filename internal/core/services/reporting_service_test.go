package services_test

import (
	"context"
	"testing"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/openbooks/bookkeeping_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewReportingService(suite.mockAccountRepo)
}

func account(number, name string, category domain.AccountCategory, balance float64) domain.Account {
	return domain.Account{
		AccountID:     number,
		AccountNumber: number,
		Name:          name,
		Category:      category,
		NormalSide:    domain.NormalSideFor(category),
		IsActive:      true,
		Balance:       decimal.NewFromFloat(balance),
	}
}

// A small but complete set of books: 1000 cash sale plus 400 of expenses paid
// in cash leaves 600 in cash against 1000 revenue and 400 expenses.
func (suite *ReportingServiceTestSuite) postedBooks() []domain.Account {
	return []domain.Account{
		account("1000", "Cash", domain.Asset, 600),
		account("2000", "Accounts Payable", domain.Liability, 0),
		account("3000", "Owner Equity", domain.Equity, 0),
		account("4000", "Sales Revenue", domain.Revenue, 1000),
		account("5000", "Rent Expense", domain.Expense, 400),
	}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_ColumnsAndTotals() {
	ctx := context.Background()
	suite.mockAccountRepo.On("ListActiveAccounts", ctx, "").Return(suite.postedBooks(), nil).Once()

	report, err := suite.service.TrialBalance(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 5)

	byNumber := make(map[string]domain.TrialBalanceRow, len(report.Rows))
	for _, row := range report.Rows {
		byNumber[row.AccountNumber] = row
	}
	suite.True(byNumber["1000"].Debit.Equal(decimal.NewFromInt(600)))
	suite.True(byNumber["1000"].Credit.IsZero())
	suite.True(byNumber["4000"].Credit.Equal(decimal.NewFromInt(1000)))
	suite.True(byNumber["5000"].Debit.Equal(decimal.NewFromInt(400)))

	suite.True(report.TotalDebit.Equal(decimal.NewFromInt(1000)))
	suite.True(report.TotalCredit.Equal(decimal.NewFromInt(1000)))
	suite.True(report.InBalance)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_AbnormalBalanceFlipsColumn() {
	ctx := context.Background()
	// Cash overdrawn: a debit-normal account holding a negative balance must
	// report on the credit side, keeping both columns positive.
	accounts := []domain.Account{
		account("1000", "Cash", domain.Asset, -50),
		account("4000", "Sales Revenue", domain.Revenue, -50),
	}
	suite.mockAccountRepo.On("ListActiveAccounts", ctx, "").Return(accounts, nil).Once()

	report, err := suite.service.TrialBalance(ctx)

	suite.Require().NoError(err)
	suite.True(report.Rows[0].Debit.IsZero())
	suite.True(report.Rows[0].Credit.Equal(decimal.NewFromInt(50)))
	suite.True(report.Rows[1].Debit.Equal(decimal.NewFromInt(50)))
	suite.True(report.Rows[1].Credit.IsZero())
	suite.True(report.InBalance)
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_NetIncome() {
	ctx := context.Background()
	suite.mockAccountRepo.On("ListActiveAccounts", ctx, "").Return(suite.postedBooks(), nil).Once()

	report, err := suite.service.IncomeStatement(ctx)

	suite.Require().NoError(err)
	suite.Len(report.Revenues, 1)
	suite.Len(report.Expenses, 1)
	suite.True(report.TotalRevenue.Equal(decimal.NewFromInt(1000)))
	suite.True(report.TotalExpenses.Equal(decimal.NewFromInt(400)))
	suite.True(report.NetIncome.Equal(decimal.NewFromInt(600)))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_BalancesViaRetainedEarnings() {
	ctx := context.Background()
	suite.mockAccountRepo.On("ListActiveAccounts", ctx, "").Return(suite.postedBooks(), nil).Once()

	report, err := suite.service.BalanceSheet(ctx)

	suite.Require().NoError(err)
	suite.True(report.TotalAssets.Equal(decimal.NewFromInt(600)))
	suite.True(report.TotalLiabilities.IsZero())
	suite.True(report.RetainedEarnings.Equal(decimal.NewFromInt(600)))
	suite.True(report.TotalEquity.Equal(decimal.NewFromInt(600)))
	suite.True(report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity)))
}

func (suite *ReportingServiceTestSuite) TestRetainedEarnings_RollForward() {
	ctx := context.Background()
	accounts := append(suite.postedBooks(),
		account("3100", "Retained Earnings", domain.Equity, 250),
	)
	suite.mockAccountRepo.On("ListActiveAccounts", ctx, "").Return(accounts, nil).Once()

	report, err := suite.service.RetainedEarnings(ctx)

	suite.Require().NoError(err)
	suite.True(report.BeginningBalance.Equal(decimal.NewFromInt(250)))
	suite.True(report.NetIncome.Equal(decimal.NewFromInt(600)))
	suite.True(report.EndingBalance.Equal(decimal.NewFromInt(850)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
