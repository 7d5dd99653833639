package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/price_tracker_app/internal/apperrors"
	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/price_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/price_tracker_app/internal/core/services"
	"github.com/SscSPs/price_tracker_app/internal/dto"
	"github.com/SscSPs/price_tracker_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockRepo  *MockUserRepository
	mockToken *MockTokenService
	service   portssvc.UserSvcFacade
	expiresAt time.Time
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockUserRepository)
	suite.mockToken = new(MockTokenService)
	suite.service = services.NewUserService(suite.mockRepo, suite.mockToken)
	suite.expiresAt = time.Now().Add(time.Hour)
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{Username: "alice", Password: "s3cret", Email: "alice@example.com"}
	saved := &domain.User{UserID: 1, Username: "alice", Email: "alice@example.com"}

	suite.mockRepo.On("FindUserByUsername", suite.ctx, "alice").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "alice" &&
			u.Email == "alice@example.com" &&
			u.PasswordHash != "s3cret" &&
			utils.CheckPasswordHash("s3cret", u.PasswordHash)
	})).Return(saved, nil).Once()
	suite.mockToken.On("GenerateAccessToken", suite.ctx, saved).Return("signed-token", suite.expiresAt, nil).Once()

	res, err := suite.service.Register(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(res)
	suite.Equal(saved, res.User)
	suite.Equal("signed-token", res.AccessToken)
	suite.Equal(suite.expiresAt, res.ExpiresAt)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockToken.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_MissingFields() {
	for _, req := range []dto.RegisterRequest{
		{Username: "", Password: "x"},
		{Username: "bob", Password: ""},
		{Username: "   ", Password: "x"},
	} {
		res, err := suite.service.Register(suite.ctx, req)
		suite.Nil(res)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByUsername", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_UsernameTaken() {
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "alice").Return(&domain.User{UserID: 1, Username: "alice"}, nil).Once()

	res, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "alice", Password: "pw"})

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_UniqueViolationOnSave() {
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "alice").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.AnythingOfType("domain.User")).Return(nil, apperrors.ErrDuplicate).Once()

	_, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "alice", Password: "pw"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal("Username is already taken", apperrors.MessageOf(err, ""))
}

func (suite *UserServiceTestSuite) TestRegister_PasswordTooLong() {
	// 25 three-byte runes fit a rune count limit but exceed 72 bytes.
	for _, password := range []string{strings.Repeat("x", 73), strings.Repeat("€", 25)} {
		suite.mockRepo.On("FindUserByUsername", suite.ctx, "bob").Return(nil, apperrors.ErrNotFound).Once()

		res, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "bob", Password: password})

		suite.Nil(res)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Equal("Password must be at most 72 bytes", apperrors.MessageOf(err, ""))
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_LookupError() {
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "alice").Return(nil, assert.AnError).Once()

	_, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "alice", Password: "pw"})

	suite.ErrorIs(err, assert.AnError)
}

func (suite *UserServiceTestSuite) TestLogin_Success() {
	hash, err := utils.HashPassword("s3cret")
	suite.Require().NoError(err)
	user := &domain.User{UserID: 5, Username: "alice", PasswordHash: hash}

	suite.mockRepo.On("FindUserByUsername", suite.ctx, "alice").Return(user, nil).Once()
	suite.mockToken.On("GenerateAccessToken", suite.ctx, user).Return("signed-token", suite.expiresAt, nil).Once()

	res, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "alice", Password: "s3cret"})

	suite.Require().NoError(err)
	suite.Equal(int64(5), res.User.UserID)
	suite.Equal("signed-token", res.AccessToken)
}

func (suite *UserServiceTestSuite) TestLogin_WrongPassword() {
	hash, err := utils.HashPassword("s3cret")
	suite.Require().NoError(err)
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "alice").
		Return(&domain.User{UserID: 5, Username: "alice", PasswordHash: hash}, nil).Once()

	res, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "alice", Password: "nope"})

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockToken.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestLogin_UnknownUser() {
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "ghost", Password: "pw"})

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Equal("Invalid username or password", apperrors.MessageOf(err, ""))
}

func (suite *UserServiceTestSuite) TestLogin_BlankCredentials() {
	_, err := suite.service.Login(suite.ctx, dto.LoginRequest{})

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByUsername", mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
