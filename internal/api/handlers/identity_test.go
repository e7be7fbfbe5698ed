package handlers

import (
	"testing"

	"organisation-api/internal/auth"
	"organisation-api/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret"

// authedRouter returns an HTTP test suite whose /api group sits behind a real guard,
// plus a bearer token for userID.
func authedRouter(t *testing.T, userID uuid.UUID) (*testutils.HTTPTestSuite, *gin.RouterGroup, string) {
	t.Helper()

	codec, err := auth.NewTokenCodec([]byte(testSecret), auth.DefaultTokenTTL)
	require.NoError(t, err)
	token, err := codec.Issue(userID)
	require.NoError(t, err)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.ContextWithFallback = true
	api := httpSuite.Router.Group("/api")
	api.Use(auth.NewGuard(codec, nil).RequireIdentity())

	return httpSuite, api, token
}
