package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor opens gorm transactions and hands out repositories bound to them
type Transactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// NewRepositories builds the repository set on top of db (a pool or a transaction)
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:         NewUserRepository(db),
		Organisations: NewOrganisationRepository(db),
		Memberships:   NewMembershipRepository(db),
	}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise, including on panic
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
