package service

import (
	"context"
	"errors"
	"fmt"

	"organisation-api/internal/auth"
	"organisation-api/internal/database/models"
	apperrors "organisation-api/internal/errors"
	"organisation-api/internal/logger"
	"organisation-api/internal/metrics"
	"organisation-api/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// AuthService handles registration and login
type AuthService struct {
	transactor repository.TransactorInterface
	users      repository.UserRepositoryInterface
	hasher     auth.PasswordHasher
	tokens     TokenIssuer
	validator  *validator.Validate
	events     *prometheus.CounterVec
}

// NewAuthService creates a new auth service. events may be nil; when set it is
// labelled by operation and outcome.
func NewAuthService(
	transactor repository.TransactorInterface,
	users repository.UserRepositoryInterface,
	hasher auth.PasswordHasher,
	tokens TokenIssuer,
	validator *validator.Validate,
	events *prometheus.CounterVec,
) *AuthService {
	return &AuthService{
		transactor: transactor,
		users:      users,
		hasher:     hasher,
		tokens:     tokens,
		validator:  validator,
		events:     events,
	}
}

// RegisterRequest represents the request to register a new account
type RegisterRequest struct {
	FirstName string  `json:"firstName" validate:"required" example:"John"`
	LastName  string  `json:"lastName" validate:"required" example:"Doe"`
	Email     string  `json:"email" validate:"required" example:"john@example.com"`
	Password  string  `json:"password" validate:"required" example:"s3cret"`
	Phone     *string `json:"phone,omitempty" example:"+1-555-0100"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"john@example.com"`
	Password string `json:"password" validate:"required" example:"s3cret"`
}

// AuthResponse carries a fresh access token and the public user
type AuthResponse struct {
	AccessToken string       `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User        UserResponse `json:"user"`
}

// DefaultOrganisationName names the organisation created alongside a new account
func DefaultOrganisationName(firstName string) string {
	return firstName + "'s Organisation"
}

// Register creates the user, their default organisation and the membership
// linking them in one transaction, then issues an access token.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	log := logger.WithContext(ctx).WithField("operation", "register")

	if err := validateRequest(s.validator, req); err != nil {
		s.record("register", metrics.OutcomeFailure)
		return nil, err
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.record("register", metrics.OutcomeFailure)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  digest,
		Phone:     req.Phone,
	}

	err = s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		if err := repos.Users.Create(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		org := &models.Organisation{Name: DefaultOrganisationName(req.FirstName)}
		if err := repos.Organisations.Create(ctx, org); err != nil {
			return fmt.Errorf("create default organisation: %w", err)
		}

		membership := &models.Membership{UserID: user.UserID, OrgID: org.OrgID}
		if err := repos.Memberships.Create(ctx, membership); err != nil {
			return fmt.Errorf("create membership: %w", err)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Registration rolled back")
		s.record("register", metrics.OutcomeFailure)
		return nil, apperrors.ErrRegistrationFailed
	}

	token, err := s.tokens.Issue(user.UserID)
	if err != nil {
		s.record("register", metrics.OutcomeFailure)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.WithField("registered_user", user.UserID.String()).Info("User registered")
	s.record("register", metrics.OutcomeSuccess)

	return &AuthResponse{AccessToken: token, User: *toUserResponse(user)}, nil
}

// Login checks the credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	log := logger.WithContext(ctx).WithField("operation", "login")

	// Missing credentials fail like wrong ones
	if err := validateRequest(s.validator, req); err != nil {
		log.Debug("Login with missing credentials")
		s.record("login", metrics.OutcomeFailure)
		return nil, apperrors.ErrAuthenticationFailed
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		s.record("login", metrics.OutcomeFailure)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Debug("Login for unknown email")
			return nil, apperrors.ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		log.Debug("Login with wrong password")
		s.record("login", metrics.OutcomeFailure)
		return nil, apperrors.ErrAuthenticationFailed
	}

	token, err := s.tokens.Issue(user.UserID)
	if err != nil {
		s.record("login", metrics.OutcomeFailure)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.record("login", metrics.OutcomeSuccess)
	return &AuthResponse{AccessToken: token, User: *toUserResponse(user)}, nil
}

func (s *AuthService) record(operation, outcome string) {
	if s.events != nil {
		s.events.WithLabelValues(operation, outcome).Inc()
	}
}
