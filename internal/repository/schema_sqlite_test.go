//go:build !integration

package repository

import (
	"testing"

	"organisation-api/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableSQL returns the CREATE TABLE statement SQLite stored for table
func tableSQL(t *testing.T, table string) string {
	t.Helper()

	db := testutils.NewSQLiteDB(t)
	var ddl string
	require.NoError(t, db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&ddl).Error)
	require.NotEmpty(t, ddl)
	return ddl
}

func TestMigratedForeignKeys(t *testing.T) {
	t.Run("users reference nothing", func(t *testing.T) {
		assert.NotContains(t, tableSQL(t, "users"), "REFERENCES")
	})

	t.Run("organisations reference nothing", func(t *testing.T) {
		assert.NotContains(t, tableSQL(t, "organisations"), "REFERENCES")
	})

	t.Run("memberships reference both sides", func(t *testing.T) {
		ddl := tableSQL(t, "memberships")
		assert.Contains(t, ddl, "REFERENCES `users`")
		assert.Contains(t, ddl, "REFERENCES `organisations`")
	})
}
