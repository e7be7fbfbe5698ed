//go:build integration

package repository

import (
	"testing"

	"organisation-api/internal/testutils"

	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	base := testutils.SetupTestSuite(t)
	base.CleanTestDB()
	t.Cleanup(base.CleanTestDB)
	return base.DB
}
