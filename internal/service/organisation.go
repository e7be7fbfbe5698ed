package service

import (
	"context"
	"errors"
	"fmt"

	"organisation-api/internal/database/models"
	apperrors "organisation-api/internal/errors"
	"organisation-api/internal/logger"
	"organisation-api/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganisationService handles business logic for organisations and their members
type OrganisationService struct {
	transactor    repository.TransactorInterface
	organisations repository.OrganisationRepositoryInterface
	users         repository.UserRepositoryInterface
	memberships   repository.MembershipRepositoryInterface
	validator     *validator.Validate
}

// NewOrganisationService creates a new organisation service
func NewOrganisationService(
	transactor repository.TransactorInterface,
	repos repository.Repositories,
	validator *validator.Validate,
) *OrganisationService {
	return &OrganisationService{
		transactor:    transactor,
		organisations: repos.Organisations,
		users:         repos.Users,
		memberships:   repos.Memberships,
		validator:     validator,
	}
}

// CreateOrganisationRequest represents the request to create an organisation
type CreateOrganisationRequest struct {
	Name        string  `json:"name" validate:"required" example:"Acme"`
	Description *string `json:"description,omitempty" example:"Rockets and anvils"`
}

// AddUserRequest represents the request to add a user to an organisation
type AddUserRequest struct {
	UserID string `json:"userId" validate:"required" example:"6b0c5d2e-1f5c-4a57-9d1f-2f4b3c1e8a90"`
}

// OrganisationResponse is the public view of an organisation
type OrganisationResponse struct {
	OrgID       uuid.UUID `json:"orgId" example:"0d6f7f9e-3c0b-4f0e-9a53-7f2a1f1c2b11"`
	Name        string    `json:"name" example:"John's Organisation"`
	Description *string   `json:"description"`
}

// OrganisationListResponse wraps the organisations a user belongs to
type OrganisationListResponse struct {
	Organisations []OrganisationResponse `json:"organisations"`
}

// ListForMember returns the organisations requesterID belongs to, oldest first
func (s *OrganisationService) ListForMember(ctx context.Context, requesterID uuid.UUID) ([]OrganisationResponse, error) {
	orgs, err := s.organisations.GetByMember(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organisations: %w", err)
	}

	responses := make([]OrganisationResponse, 0, len(orgs))
	for i := range orgs {
		responses = append(responses, *toOrganisationResponse(&orgs[i]))
	}
	return responses, nil
}

// GetByID retrieves an organisation by ID
func (s *OrganisationService) GetByID(ctx context.Context, id uuid.UUID) (*OrganisationResponse, error) {
	org, err := s.organisations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("failed to get organisation: %w", err)
	}

	return toOrganisationResponse(org), nil
}

// Create creates an organisation and makes requesterID its first member
func (s *OrganisationService) Create(ctx context.Context, requesterID uuid.UUID, req *CreateOrganisationRequest) (*OrganisationResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	org := &models.Organisation{
		Name:        req.Name,
		Description: req.Description,
	}

	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		if err := repos.Organisations.Create(ctx, org); err != nil {
			return fmt.Errorf("create organisation: %w", err)
		}
		return repos.Memberships.Create(ctx, &models.Membership{UserID: requesterID, OrgID: org.OrgID})
	})
	if err != nil {
		// The token outlived the account it names
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.ErrAccountMissing
		}
		return nil, fmt.Errorf("failed to create organisation: %w", err)
	}

	logger.WithContext(ctx).WithField("org_id", org.OrgID.String()).Info("Organisation created")
	return toOrganisationResponse(org), nil
}

// AddUser makes the user in req a member of orgID. Adding an existing member is a no-op.
func (s *OrganisationService) AddUser(ctx context.Context, orgID uuid.UUID, req *AddUserRequest) error {
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}

	if _, err := s.organisations.GetByID(ctx, orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganisationNotFound
		}
		return fmt.Errorf("failed to get organisation: %w", err)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.memberships.Create(ctx, &models.Membership{UserID: userID, OrgID: orgID}); err != nil {
		return fmt.Errorf("failed to add user to organisation: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"org_id":   orgID.String(),
		"added_id": userID.String(),
	}).Info("User added to organisation")
	return nil
}

func toOrganisationResponse(org *models.Organisation) *OrganisationResponse {
	return &OrganisationResponse{
		OrgID:       org.OrgID,
		Name:        org.Name,
		Description: org.Description,
	}
}
