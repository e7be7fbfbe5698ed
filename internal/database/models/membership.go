package models

import (
	"time"

	"github.com/google/uuid"
)

// Membership links one user to one organisation. The composite key makes a
// (user, organisation) pair unique.
type Membership struct {
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;primaryKey"`
	OrgID     uuid.UUID `json:"orgId" gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
