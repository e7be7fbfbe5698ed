package testutils

import (
	"net/http"
	"testing"

	"organisation-api/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteDBIsolation(t *testing.T) {
	first := NewSQLiteDB(t)
	second := NewSQLiteDB(t)

	require.NoError(t, first.Create(NewUserFactory().Create()).Error)

	var count int64
	require.NoError(t, first.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, second.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestFactories(t *testing.T) {
	factories := NewFactorySet()

	a, b := factories.User.Create(), factories.User.Create()
	assert.NotEqual(t, a.UserID, b.UserID)
	assert.NotEqual(t, a.Email, b.Email)
	assert.Equal(t, "jane@example.com", factories.User.WithEmail("jane@example.com").Email)

	org := factories.Organisation.WithName("Acme")
	membership := factories.Membership(a, org)
	assert.Equal(t, a.UserID, membership.UserID)
	assert.Equal(t, org.OrgID, membership.OrgID)
}

func TestHTTPHelpers(t *testing.T) {
	httpSuite := SetupHTTPTest()
	httpSuite.Router.POST("/echo", func(c *gin.Context) {
		var body map[string]interface{}
		_ = c.ShouldBindJSON(&body)
		c.JSON(http.StatusOK, gin.H{"authorization": c.GetHeader("Authorization"), "body": body})
	})

	recorder := httpSuite.MakeAuthorizedRequest(http.MethodPost, "/echo", map[string]string{"name": "Acme"}, "tok")

	var response map[string]interface{}
	AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, "Bearer tok", response["authorization"])
	assert.Equal(t, map[string]interface{}{"name": "Acme"}, response["body"])
}
