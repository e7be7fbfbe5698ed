package repository

import (
	"context"

	"organisation-api/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganisationRepository handles database operations for organisations
type OrganisationRepository struct {
	db *gorm.DB
}

// NewOrganisationRepository creates a new organisation repository
func NewOrganisationRepository(db *gorm.DB) *OrganisationRepository {
	return &OrganisationRepository{db: db}
}

// Create creates a new organisation
func (r *OrganisationRepository) Create(ctx context.Context, org *models.Organisation) error {
	return r.db.WithContext(ctx).Omit("Memberships").Create(org).Error
}

// GetByID retrieves an organisation by ID
func (r *OrganisationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organisation, error) {
	var org models.Organisation
	err := r.db.WithContext(ctx).First(&org, "org_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByMember retrieves the organisations a user belongs to, oldest first
func (r *OrganisationRepository) GetByMember(ctx context.Context, userID uuid.UUID) ([]models.Organisation, error) {
	var orgs []models.Organisation
	err := r.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.org_id = organisations.org_id").
		Where("memberships.user_id = ?", userID).
		Order("organisations.created_at ASC").
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}
