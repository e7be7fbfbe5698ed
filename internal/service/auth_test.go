package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"organisation-api/internal/auth"
	"organisation-api/internal/database/models"
	apperrors "organisation-api/internal/errors"
	"organisation-api/internal/metrics"
	"organisation-api/internal/mocks"
	"organisation-api/internal/repository"
	"organisation-api/internal/service"

	"github.com/google/uuid"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	ctrl           *gomock.Controller
	mockTransactor *mocks.MockTransactorInterface
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockOrgRepo    *mocks.MockOrganisationRepositoryInterface
	mockMemberRepo *mocks.MockMembershipRepositoryInterface
	mockTokens     *mocks.MockTokenIssuer
	hasher         *auth.BcryptHasher
	metrics        *metrics.Metrics
	authService    *service.AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTransactor = mocks.NewMockTransactorInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganisationRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockTokens = mocks.NewMockTokenIssuer(suite.ctrl)
	suite.hasher = auth.NewBcryptHasher(bcrypt.MinCost)
	suite.metrics = metrics.Noop()

	suite.authService = service.NewAuthService(
		suite.mockTransactor,
		suite.mockUserRepo,
		suite.hasher,
		suite.mockTokens,
		service.NewValidator(),
		suite.metrics.AccountEvents,
	)
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectTransaction runs the unit of work against the mock repositories
func (suite *AuthServiceTestSuite) expectTransaction() {
	repos := repository.Repositories{
		Users:         suite.mockUserRepo,
		Organisations: suite.mockOrgRepo,
		Memberships:   suite.mockMemberRepo,
	}
	suite.mockTransactor.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repository.Repositories) error) error {
			return fn(repos)
		}).
		Times(1)
}

func (suite *AuthServiceTestSuite) eventCount(operation, outcome string) float64 {
	var m io_prometheus_client.Metric
	suite.Require().NoError(suite.metrics.AccountEvents.WithLabelValues(operation, outcome).Write(&m))
	return m.GetCounter().GetValue()
}

func validRegisterRequest() *service.RegisterRequest {
	phone := "+1-555-0100"
	return &service.RegisterRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "s3cret",
		Phone:     &phone,
	}
}

// TestRegister tests the full registration unit of work
func (suite *AuthServiceTestSuite) TestRegister() {
	req := validRegisterRequest()
	userID := uuid.New()
	orgID := uuid.New()

	suite.expectTransaction()
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			suite.Equal("john@example.com", user.Email)
			suite.NotEqual("s3cret", user.Password)
			suite.True(suite.hasher.Verify("s3cret", user.Password))
			user.UserID = userID
			return nil
		}).
		Times(1)
	suite.mockOrgRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, org *models.Organisation) error {
			suite.Equal("John's Organisation", org.Name)
			org.OrgID = orgID
			return nil
		}).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any(), &models.Membership{UserID: userID, OrgID: orgID}).
		Return(nil).
		Times(1)
	suite.mockTokens.EXPECT().
		Issue(userID).
		Return("signed-token", nil).
		Times(1)

	response, err := suite.authService.Register(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("signed-token", response.AccessToken)
	suite.Equal(userID, response.User.UserID)
	suite.Equal("John", response.User.FirstName)
	suite.Equal("Doe", response.User.LastName)
	suite.Equal("john@example.com", response.User.Email)
	suite.Equal(req.Phone, response.User.Phone)
	suite.Equal(float64(1), suite.eventCount("register", metrics.OutcomeSuccess))
}

// TestRegisterValidationCollectsAllFields tests that every missing field is reported, in order
func (suite *AuthServiceTestSuite) TestRegisterValidationCollectsAllFields() {
	response, err := suite.authService.Register(suite.ctx, &service.RegisterRequest{})

	suite.Nil(response)
	fieldErrs, ok := apperrors.AsValidation(err)
	suite.Require().True(ok)
	suite.Equal(apperrors.ValidationErrors{
		{Field: "firstName", Message: "First name is required"},
		{Field: "lastName", Message: "Last name is required"},
		{Field: "email", Message: "Email is required"},
		{Field: "password", Message: "Password is required"},
	}, fieldErrs)
	suite.Equal(float64(1), suite.eventCount("register", metrics.OutcomeFailure))
}

// TestRegisterValidationSingleField tests that only the missing field is reported
func (suite *AuthServiceTestSuite) TestRegisterValidationSingleField() {
	req := validRegisterRequest()
	req.LastName = ""

	_, err := suite.authService.Register(suite.ctx, req)

	fieldErrs, ok := apperrors.AsValidation(err)
	suite.Require().True(ok)
	suite.Equal([]string{"lastName"}, fieldErrs.Fields())
}

// TestRegisterAcceptsAnyEmailText tests that email is checked for presence only
func (suite *AuthServiceTestSuite) TestRegisterAcceptsAnyEmailText() {
	req := validRegisterRequest()
	req.Email = "john"

	suite.expectTransaction()
	suite.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockOrgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockMemberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockTokens.EXPECT().Issue(gomock.Any()).Return("token", nil).Times(1)

	response, err := suite.authService.Register(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("john", response.User.Email)
}

// TestRegisterDuplicateEmail tests that a taken email fails the whole registration
func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	suite.expectTransaction()
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(apperrors.ErrUserExists).
		Times(1)

	response, err := suite.authService.Register(suite.ctx, validRegisterRequest())

	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrRegistrationFailed)
	suite.True(apperrors.IsPersistence(err))
	suite.Equal(float64(1), suite.eventCount("register", metrics.OutcomeFailure))
}

// TestRegisterOrganisationFailure tests that a failing second write aborts registration
func (suite *AuthServiceTestSuite) TestRegisterOrganisationFailure() {
	suite.expectTransaction()
	suite.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockOrgRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset")).
		Times(1)

	_, err := suite.authService.Register(suite.ctx, validRegisterRequest())

	suite.ErrorIs(err, apperrors.ErrRegistrationFailed)
	suite.NotContains(err.Error(), "connection reset")
}

// TestRegisterMembershipFailure tests that a failing membership write aborts registration
func (suite *AuthServiceTestSuite) TestRegisterMembershipFailure() {
	suite.expectTransaction()
	suite.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockOrgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("constraint violation")).
		Times(1)

	_, err := suite.authService.Register(suite.ctx, validRegisterRequest())

	suite.ErrorIs(err, apperrors.ErrRegistrationFailed)
}

// TestRegisterHashFailure tests that a hashing failure is an internal error, not a persistence one
func (suite *AuthServiceTestSuite) TestRegisterHashFailure() {
	req := validRegisterRequest()
	req.Password = strings.Repeat("x", 73)

	response, err := suite.authService.Register(suite.ctx, req)

	suite.Nil(response)
	suite.Error(err)
	suite.False(apperrors.IsPersistence(err))
	suite.False(apperrors.IsValidation(err))
}

// TestRegisterTokenFailure tests that a signing failure after commit surfaces as an internal error
func (suite *AuthServiceTestSuite) TestRegisterTokenFailure() {
	suite.expectTransaction()
	suite.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockOrgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockMemberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockTokens.EXPECT().Issue(gomock.Any()).Return("", errors.New("signing failed")).Times(1)

	_, err := suite.authService.Register(suite.ctx, validRegisterRequest())

	suite.Error(err)
	suite.False(apperrors.IsPersistence(err))
}

// TestLogin tests a successful login
func (suite *AuthServiceTestSuite) TestLogin() {
	digest, err := suite.hasher.Hash("s3cret")
	suite.Require().NoError(err)
	user := &models.User{
		UserID:    uuid.New(),
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  digest,
	}

	suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "john@example.com").Return(user, nil).Times(1)
	suite.mockTokens.EXPECT().Issue(user.UserID).Return("signed-token", nil).Times(1)

	response, err := suite.authService.Login(suite.ctx, &service.LoginRequest{Email: "john@example.com", Password: "s3cret"})

	suite.Require().NoError(err)
	suite.Equal("signed-token", response.AccessToken)
	suite.Equal(user.UserID, response.User.UserID)
	suite.Nil(response.User.Phone)
	suite.Equal(float64(1), suite.eventCount("login", metrics.OutcomeSuccess))
}

// TestLoginWrongPassword tests that a wrong password fails authentication
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	digest, err := suite.hasher.Hash("s3cret")
	suite.Require().NoError(err)

	suite.mockUserRepo.EXPECT().
		GetByEmail(gomock.Any(), "john@example.com").
		Return(&models.User{UserID: uuid.New(), Password: digest}, nil).
		Times(1)

	response, err := suite.authService.Login(suite.ctx, &service.LoginRequest{Email: "john@example.com", Password: "wrong"})

	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
}

// TestLoginUnknownEmail tests that an unknown email is indistinguishable from a wrong password
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, err := suite.authService.Login(suite.ctx, &service.LoginRequest{Email: "nobody@example.com", Password: "s3cret"})

	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
	suite.Equal(apperrors.ErrAuthenticationFailed.Error(), err.Error())
	suite.Equal(float64(1), suite.eventCount("login", metrics.OutcomeFailure))
}

// TestLoginLookupFailure tests that storage errors are not reported as bad credentials
func (suite *AuthServiceTestSuite) TestLoginLookupFailure() {
	suite.mockUserRepo.EXPECT().
		GetByEmail(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database is down")).
		Times(1)

	_, err := suite.authService.Login(suite.ctx, &service.LoginRequest{Email: "john@example.com", Password: "s3cret"})

	suite.Error(err)
	suite.False(apperrors.IsAuthentication(err))
}

// TestLoginMissingCredentials tests that absent credentials fail authentication without a lookup
func (suite *AuthServiceTestSuite) TestLoginMissingCredentials() {
	for _, req := range []*service.LoginRequest{
		{},
		{Email: "john@example.com"},
		{Password: "s3cret"},
	} {
		response, err := suite.authService.Login(suite.ctx, req)

		suite.Nil(response)
		suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
		suite.False(apperrors.IsValidation(err))
	}
	suite.Equal(float64(3), suite.eventCount("login", metrics.OutcomeFailure))
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
