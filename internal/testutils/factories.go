package testutils

import (
	"fmt"
	"time"

	"organisation-api/internal/database/models"

	"github.com/google/uuid"
)

// fakeDigest is shaped like a bcrypt digest; repository tests never verify it
const fakeDigest = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3PMFyuHY3F3f6jXcHRkUaMS"

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	phone := "+1-555-0123"
	return &models.User{
		UserID:    id,
		FirstName: "John",
		LastName:  "Doe",
		Email:     fmt.Sprintf("john.%s@example.com", id.String()[:8]),
		Password:  fakeDigest,
		Phone:     &phone,
		Timestamps: models.Timestamps{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithName sets a custom first and last name for the user
func (f *UserFactory) WithName(firstName, lastName string) *models.User {
	user := f.Create()
	user.FirstName = firstName
	user.LastName = lastName
	return user
}

// OrganisationFactory provides methods to create test Organisation data
type OrganisationFactory struct{}

// NewOrganisationFactory creates a new OrganisationFactory
func NewOrganisationFactory() *OrganisationFactory {
	return &OrganisationFactory{}
}

// Create creates a test Organisation with default values
func (f *OrganisationFactory) Create() *models.Organisation {
	description := "A test organisation for testing purposes"
	return &models.Organisation{
		OrgID:       uuid.New(),
		Name:        "Test Organisation",
		Description: &description,
		Timestamps: models.Timestamps{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

// WithName sets a custom name for the organisation
func (f *OrganisationFactory) WithName(name string) *models.Organisation {
	org := f.Create()
	org.Name = name
	return org
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organisation *OrganisationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organisation: NewOrganisationFactory(),
	}
}

// Membership links the given user and organisation
func (fs *FactorySet) Membership(user *models.User, org *models.Organisation) *models.Membership {
	return &models.Membership{
		UserID:    user.UserID,
		OrgID:     org.OrgID,
		CreatedAt: time.Now(),
	}
}
