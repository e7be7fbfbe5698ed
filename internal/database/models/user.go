package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered account. Password holds the bcrypt digest, never the plaintext.
type User struct {
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;primaryKey"`
	FirstName string    `json:"firstName" gorm:"not null;size:100"`
	LastName  string    `json:"lastName" gorm:"not null;size:100"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	Phone     *string   `json:"phone" gorm:"size:32"`
	Timestamps

	// Relationships
	Memberships []Membership `json:"-" gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate sets the UUID if not already set
func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.UserID)
	return nil
}
