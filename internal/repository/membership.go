package repository

import (
	"context"

	"organisation-api/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository handles database operations for user/organisation links
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create links a user to an organisation. Linking an existing pair is a no-op.
func (r *MembershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(membership).Error
}

// Exists reports whether the user is a member of the organisation
func (r *MembershipRepository) Exists(ctx context.Context, userID, orgID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("user_id = ? AND org_id = ?", userID, orgID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByUser returns how many organisations the user belongs to
func (r *MembershipRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
