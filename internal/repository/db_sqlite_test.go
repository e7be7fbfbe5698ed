//go:build !integration

package repository

import (
	"testing"

	"organisation-api/internal/testutils"

	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	return testutils.NewSQLiteDB(t)
}
