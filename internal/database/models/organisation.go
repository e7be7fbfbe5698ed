package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organisation is the tenant entity users are grouped into
type Organisation struct {
	OrgID       uuid.UUID `json:"orgId" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Description *string   `json:"description" gorm:"type:text"`
	Timestamps

	// Relationships
	Memberships []Membership `json:"-" gorm:"foreignKey:OrgID;references:OrgID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organisation
func (Organisation) TableName() string {
	return "organisations"
}

// BeforeCreate sets the UUID if not already set
func (o *Organisation) BeforeCreate(tx *gorm.DB) error {
	ensureID(&o.OrgID)
	return nil
}
