package repository

import (
	"context"
	"errors"

	"organisation-api/internal/database/models"
	apperrors "organisation-api/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. A duplicate email yields apperrors.ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Omit("Memberships").Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrUserExists
	}
	return err
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "user_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by exact email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SharesOrganisation reports whether both users are members of at least one common organisation
func (r *UserRepository) SharesOrganisation(ctx context.Context, userID, otherID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("memberships AS m1").
		Joins("JOIN memberships AS m2 ON m1.org_id = m2.org_id").
		Where("m1.user_id = ? AND m2.user_id = ?", userID, otherID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
