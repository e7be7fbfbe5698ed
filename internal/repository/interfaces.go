package repository

import (
	"context"

	"organisation-api/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SharesOrganisation(ctx context.Context, userID, otherID uuid.UUID) (bool, error)
}

// OrganisationRepositoryInterface defines the interface for organisation repository operations
type OrganisationRepositoryInterface interface {
	Create(ctx context.Context, org *models.Organisation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organisation, error)
	GetByMember(ctx context.Context, userID uuid.UUID) ([]models.Organisation, error)
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(ctx context.Context, membership *models.Membership) error
	Exists(ctx context.Context, userID, orgID uuid.UUID) (bool, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// TransactorInterface runs a unit of work against repositories bound to one transaction
type TransactorInterface interface {
	WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error
}

// Repositories groups the repositories that share one database handle
type Repositories struct {
	Users         UserRepositoryInterface
	Organisations OrganisationRepositoryInterface
	Memberships   MembershipRepositoryInterface
}
