package repository

import (
	"testing"

	"organisation-api/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	dbSuite
	repo *MembershipRepository
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.dbSuite.SetupTest()
	suite.repo = NewMembershipRepository(suite.db)
}

// TestCreate tests linking a user to an organisation
func (suite *MembershipRepositoryTestSuite) TestCreate() {
	user := suite.createUser(suite.factories.User.Create())
	org := suite.createOrganisation(suite.factories.Organisation.Create())

	err := suite.repo.Create(suite.ctx, &models.Membership{UserID: user.UserID, OrgID: org.OrgID})
	suite.NoError(err)

	exists, err := suite.repo.Exists(suite.ctx, user.UserID, org.OrgID)
	suite.NoError(err)
	suite.True(exists)
}

// TestCreateIsIdempotent tests that linking the same pair twice keeps one row
func (suite *MembershipRepositoryTestSuite) TestCreateIsIdempotent() {
	user := suite.createUser(suite.factories.User.Create())
	org := suite.createOrganisation(suite.factories.Organisation.Create())

	suite.NoError(suite.repo.Create(suite.ctx, &models.Membership{UserID: user.UserID, OrgID: org.OrgID}))
	suite.NoError(suite.repo.Create(suite.ctx, &models.Membership{UserID: user.UserID, OrgID: org.OrgID}))

	count, err := suite.repo.CountByUser(suite.ctx, user.UserID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestCreateUnknownUser tests that the foreign key rejects a dangling user
func (suite *MembershipRepositoryTestSuite) TestCreateUnknownUser() {
	org := suite.createOrganisation(suite.factories.Organisation.Create())

	err := suite.repo.Create(suite.ctx, &models.Membership{UserID: uuid.New(), OrgID: org.OrgID})
	suite.Error(err)
}

// TestExistsFalse tests a pair that was never linked
func (suite *MembershipRepositoryTestSuite) TestExistsFalse() {
	user := suite.createUser(suite.factories.User.Create())
	org := suite.createOrganisation(suite.factories.Organisation.Create())

	exists, err := suite.repo.Exists(suite.ctx, user.UserID, org.OrgID)
	suite.NoError(err)
	suite.False(exists)
}

// TestCountByUser tests counting a user's organisations
func (suite *MembershipRepositoryTestSuite) TestCountByUser() {
	user := suite.createUser(suite.factories.User.Create())
	for i := 0; i < 3; i++ {
		suite.join(user, suite.createOrganisation(suite.factories.Organisation.Create()))
	}

	count, err := suite.repo.CountByUser(suite.ctx, user.UserID)
	suite.NoError(err)
	suite.Equal(int64(3), count)
}

// TestDeletingUserRemovesMemberships tests the cascade from users to memberships
func (suite *MembershipRepositoryTestSuite) TestDeletingUserRemovesMemberships() {
	user := suite.createUser(suite.factories.User.Create())
	org := suite.createOrganisation(suite.factories.Organisation.Create())
	suite.join(user, org)

	suite.Require().NoError(suite.db.Delete(&models.User{}, "user_id = ?", user.UserID).Error)

	exists, err := suite.repo.Exists(suite.ctx, user.UserID, org.OrgID)
	suite.NoError(err)
	suite.False(exists)
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
