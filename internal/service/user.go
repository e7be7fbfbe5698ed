package service

import (
	"context"
	"errors"
	"fmt"

	"organisation-api/internal/database/models"
	apperrors "organisation-api/internal/errors"
	"organisation-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for user lookups
type UserService struct {
	users repository.UserRepositoryInterface
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepositoryInterface) *UserService {
	return &UserService{users: users}
}

// UserResponse is the public view of a user. The password digest is never part of it.
type UserResponse struct {
	UserID    uuid.UUID `json:"userId" example:"6b0c5d2e-1f5c-4a57-9d1f-2f4b3c1e8a90"`
	FirstName string    `json:"firstName" example:"John"`
	LastName  string    `json:"lastName" example:"Doe"`
	Email     string    `json:"email" example:"john@example.com"`
	Phone     *string   `json:"phone" example:"+1-555-0100"`
}

// GetUser returns user id as seen by requesterID. Users are visible to themselves and to
// anyone sharing an organisation with them; everyone else gets ErrUserNotFound.
func (s *UserService) GetUser(ctx context.Context, requesterID, id uuid.UUID) (*UserResponse, error) {
	if id != requesterID {
		shares, err := s.users.SharesOrganisation(ctx, requesterID, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check shared organisations: %w", err)
		}
		if !shares {
			return nil, apperrors.ErrUserNotFound
		}
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserResponse(user), nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		UserID:    user.UserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
	}
}
