package repository

import (
	"context"

	"organisation-api/internal/database/models"
	"organisation-api/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// dbSuite hands every test a freshly migrated database. openTestDB decides
// which engine backs it (SQLite by default, Postgres under the integration tag).
type dbSuite struct {
	suite.Suite
	db        *gorm.DB
	ctx       context.Context
	factories *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *dbSuite) SetupSuite() {
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// SetupTest runs before each test
func (suite *dbSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
}

func (suite *dbSuite) createUser(user *models.User) *models.User {
	suite.Require().NoError(suite.db.Omit("Memberships").Create(user).Error)
	return user
}

func (suite *dbSuite) createOrganisation(org *models.Organisation) *models.Organisation {
	suite.Require().NoError(suite.db.Omit("Memberships").Create(org).Error)
	return org
}

func (suite *dbSuite) join(user *models.User, org *models.Organisation) {
	suite.Require().NoError(suite.db.Create(suite.factories.Membership(user, org)).Error)
}
