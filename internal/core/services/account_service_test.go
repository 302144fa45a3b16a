package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/openbooks/bookkeeping_app/internal/apperrors"
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/openbooks/bookkeeping_app/internal/core/services"
	"github.com/openbooks/bookkeeping_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.AccountSvcFacade

	managerID string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockLedgerRepo, noopEvents{})
	suite.managerID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DerivesNormalSide() {
	ctx := context.Background()

	cases := []struct {
		number   string
		category domain.AccountCategory
		side     domain.NormalSide
	}{
		{"1000", domain.Asset, domain.NormalDebit},
		{"5000", domain.Expense, domain.NormalDebit},
		{"2000", domain.Liability, domain.NormalCredit},
		{"3000", domain.Equity, domain.NormalCredit},
		{"4000", domain.Revenue, domain.NormalCredit},
	}

	for _, tc := range cases {
		req := dto.CreateAccountRequest{
			AccountNumber: tc.number,
			Name:          "Test " + string(tc.category),
			Category:      tc.category,
		}
		suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
			return a.Category == tc.category && a.NormalSide == tc.side
		})).Return(nil).Once()

		account, err := suite.service.CreateAccount(ctx, req, suite.managerID)

		suite.Require().NoError(err)
		suite.Equal(tc.side, account.NormalSide)
		suite.True(account.IsActive)
	}
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NegativeInitialBalanceRejected() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		AccountNumber:  "1000",
		Name:           "Cash",
		Category:       domain.Asset,
		InitialBalance: decimal.NewFromInt(-5),
	}

	_, err := suite.service.CreateAccount(ctx, req, suite.managerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicatePassthrough() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{AccountNumber: "1000", Name: "Cash", Category: domain.Asset}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(ctx, req, suite.managerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoChangeSkipsWrite() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), Name: "Cash", Description: "On hand"}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	same := "Cash"
	updated, err := suite.service.UpdateAccount(ctx, account.AccountID, dto.UpdateAccountRequest{Name: &same}, suite.managerID)

	suite.Require().NoError(err)
	suite.Equal("Cash", updated.Name)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_RenamePersisted() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), Name: "Cash"}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == "Petty Cash" && a.LastUpdatedBy == suite.managerID
	})).Return(nil).Once()

	newName := "Petty Cash"
	updated, err := suite.service.UpdateAccount(ctx, account.AccountID, dto.UpdateAccountRequest{Name: &newName}, suite.managerID)

	suite.Require().NoError(err)
	suite.Equal("Petty Cash", updated.Name)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_RefusedWithBalance() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID: uuid.NewString(),
		Name:      "Cash",
		Balance:   decimal.NewFromFloat(120.50),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	err := suite.service.DeactivateAccount(ctx, account.AccountID, suite.managerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountHasBalance)
	suite.Contains(err.Error(), "120.50")
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeactivateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_ZeroBalanceSucceeds() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), Name: "Old Equipment", Balance: decimal.Zero}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockAccountRepo.On("DeactivateAccount", ctx, account.AccountID, suite.managerID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, account.AccountID, suite.managerID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountLedger_ResolvesAccountNumber() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), AccountNumber: "1000", Name: "Cash"}
	rows := []domain.LedgerRow{{RowID: uuid.NewString(), AccountNumber: "1000"}}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockLedgerRepo.On("FindRowsByAccountNumber", ctx, "1000").Return(rows, nil).Once()

	got, err := suite.service.GetAccountLedger(ctx, account.AccountID)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountLedger_UnknownAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountLedger(ctx, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "FindRowsByAccountNumber", mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
