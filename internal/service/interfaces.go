package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthServiceInterface defines the interface for registration and login
type AuthServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetUser(ctx context.Context, requesterID, id uuid.UUID) (*UserResponse, error)
}

// OrganisationServiceInterface defines the interface for organisation service
type OrganisationServiceInterface interface {
	ListForMember(ctx context.Context, requesterID uuid.UUID) ([]OrganisationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OrganisationResponse, error)
	Create(ctx context.Context, requesterID uuid.UUID, req *CreateOrganisationRequest) (*OrganisationResponse, error)
	AddUser(ctx context.Context, orgID uuid.UUID, req *AddUserRequest) error
}

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}
