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
	"github.com/openbooks/bookkeeping_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, noopEvents{})
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "arjun", Password: "s3cret-pass", Role: domain.RoleAccountant}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "arjun" &&
			u.Role == domain.RoleAccountant &&
			u.IsActive &&
			u.PasswordHash != "" &&
			u.PasswordHash != "s3cret-pass" &&
			utils.CheckPasswordHash("s3cret-pass", u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, "system")

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "arjun", Password: "s3cret-pass", Role: domain.RoleAccountant}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, req, "system")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "meredith", PasswordHash: hash, Role: domain.RoleManager, IsActive: true}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "meredith").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "meredith", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_IndistinguishableFailures() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	inactive := &domain.User{UserID: uuid.NewString(), Username: "former", PasswordHash: hash, IsActive: false}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "former").Return(inactive, nil).Once()
	active := &domain.User{UserID: uuid.NewString(), Username: "meredith", PasswordHash: hash, IsActive: true}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "meredith").Return(active, nil).Once()

	// Unknown username, deactivated user, and wrong password all produce the
	// same error.
	_, err = suite.service.AuthenticateUser(ctx, "nobody", "correct-horse")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(ctx, "former", "correct-horse")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(ctx, "meredith", "wrong-password")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestResolveActor_InactiveForbidden() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Username: "former", IsActive: false}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	_, err := suite.service.ResolveActor(ctx, user.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestListUsers_DefaultsLimit() {
	ctx := context.Background()
	users := []domain.User{{UserID: uuid.NewString(), Username: "arjun"}}

	suite.mockUserRepo.On("ListUsers", ctx, 20, 0).Return(users, nil).Once()

	got, err := suite.service.ListUsers(ctx, 0, -3)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
