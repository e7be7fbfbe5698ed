package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganisationRepositoryTestSuite tests the OrganisationRepository
type OrganisationRepositoryTestSuite struct {
	dbSuite
	repo *OrganisationRepository
}

// SetupTest runs before each test
func (suite *OrganisationRepositoryTestSuite) SetupTest() {
	suite.dbSuite.SetupTest()
	suite.repo = NewOrganisationRepository(suite.db)
}

// TestCreate tests creating a new organisation
func (suite *OrganisationRepositoryTestSuite) TestCreate() {
	org := suite.factories.Organisation.Create()
	org.OrgID = uuid.Nil

	err := suite.repo.Create(suite.ctx, org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.OrgID)
	suite.NotZero(org.CreatedAt)
}

// TestCreateDuplicateName tests that organisation names are not unique
func (suite *OrganisationRepositoryTestSuite) TestCreateDuplicateName() {
	suite.NoError(suite.repo.Create(suite.ctx, suite.factories.Organisation.WithName("Acme")))
	suite.NoError(suite.repo.Create(suite.ctx, suite.factories.Organisation.WithName("Acme")))
}

// TestCreateWithoutDescription tests that the description column accepts null
func (suite *OrganisationRepositoryTestSuite) TestCreateWithoutDescription() {
	org := suite.factories.Organisation.Create()
	org.Description = nil
	suite.Require().NoError(suite.repo.Create(suite.ctx, org))

	retrieved, err := suite.repo.GetByID(suite.ctx, org.OrgID)
	suite.NoError(err)
	suite.Nil(retrieved.Description)
}

// TestGetByID tests retrieving an organisation by ID
func (suite *OrganisationRepositoryTestSuite) TestGetByID() {
	org := suite.createOrganisation(suite.factories.Organisation.WithName("Globex"))

	retrieved, err := suite.repo.GetByID(suite.ctx, org.OrgID)

	suite.NoError(err)
	suite.Equal(org.OrgID, retrieved.OrgID)
	suite.Equal("Globex", retrieved.Name)
	suite.Require().NotNil(retrieved.Description)
	suite.Equal(*org.Description, *retrieved.Description)
}

// TestGetByIDNotFound tests retrieving a non-existent organisation
func (suite *OrganisationRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(suite.ctx, uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(retrieved)
}

// TestGetByMember tests that only the member's organisations are returned, oldest first
func (suite *OrganisationRepositoryTestSuite) TestGetByMember() {
	user := suite.createUser(suite.factories.User.Create())
	other := suite.createUser(suite.factories.User.Create())

	first := suite.factories.Organisation.WithName("First")
	first.CreatedAt = time.Now().Add(-2 * time.Hour)
	second := suite.factories.Organisation.WithName("Second")
	second.CreatedAt = time.Now().Add(-1 * time.Hour)
	foreign := suite.factories.Organisation.WithName("Foreign")

	// Insert out of order to prove the ordering comes from created_at
	suite.createOrganisation(second)
	suite.createOrganisation(first)
	suite.createOrganisation(foreign)

	suite.join(user, first)
	suite.join(user, second)
	suite.join(other, foreign)

	orgs, err := suite.repo.GetByMember(suite.ctx, user.UserID)

	suite.NoError(err)
	suite.Require().Len(orgs, 2)
	suite.Equal("First", orgs[0].Name)
	suite.Equal("Second", orgs[1].Name)
}

// TestGetByMemberNone tests a user without memberships
func (suite *OrganisationRepositoryTestSuite) TestGetByMemberNone() {
	user := suite.createUser(suite.factories.User.Create())

	orgs, err := suite.repo.GetByMember(suite.ctx, user.UserID)

	suite.NoError(err)
	suite.Empty(orgs)
}

// TestOrganisationRepositoryTestSuite runs the test suite
func TestOrganisationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganisationRepositoryTestSuite))
}
