package auth

import (
	"net/http"
	"strings"

	apperrors "organisation-api/internal/errors"
	"organisation-api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

const identityKey = "identity"

// IdentityState is the outcome of resolving a request's credential
type IdentityState int

const (
	IdentityMissing IdentityState = iota
	IdentityInvalid
	IdentityValid
)

func (s IdentityState) String() string {
	switch s {
	case IdentityMissing:
		return "missing"
	case IdentityInvalid:
		return "invalid"
	case IdentityValid:
		return "valid"
	default:
		return "unknown"
	}
}

// Identity is the resolved caller. UserID is set only when State is IdentityValid.
type Identity struct {
	State  IdentityState
	UserID uuid.UUID
}

// TokenVerifier validates an access token and returns its subject
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// Guard resolves bearer credentials and protects routes
type Guard struct {
	verifier  TokenVerifier
	decisions *prometheus.CounterVec
}

// NewGuard creates a guard. decisions may be nil; when set it must carry a single "outcome" label.
func NewGuard(verifier TokenVerifier, decisions *prometheus.CounterVec) *Guard {
	return &Guard{verifier: verifier, decisions: decisions}
}

// Resolve classifies an Authorization header value. It has no side effects.
func (g *Guard) Resolve(header string) Identity {
	if strings.TrimSpace(header) == "" {
		return Identity{State: IdentityMissing}
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Identity{State: IdentityInvalid}
	}

	userID, err := g.verifier.Verify(parts[1])
	if err != nil {
		return Identity{State: IdentityInvalid}
	}
	return Identity{State: IdentityValid, UserID: userID}
}

// RequireIdentity rejects requests without a valid bearer token with 403 and
// stores the Identity for downstream handlers otherwise.
func (g *Guard) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := g.Resolve(c.GetHeader("Authorization"))
		if g.decisions != nil {
			g.decisions.WithLabelValues(identity.State.String()).Inc()
		}

		switch identity.State {
		case IdentityMissing:
			abortForbidden(c, apperrors.ErrMissingCredential)
			return
		case IdentityInvalid:
			logger.WithContext(c).Debug("rejected invalid bearer credential")
			abortForbidden(c, apperrors.ErrInvalidCredential)
			return
		}

		c.Set(identityKey, identity)
		c.Set(logger.UserIDKey, identity.UserID.String())
		c.Next()
	}
}

func abortForbidden(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"status":     "Forbidden",
		"message":    err.Error(),
		"statusCode": http.StatusForbidden,
	})
}

// IdentityFrom returns the Identity stored by RequireIdentity
func IdentityFrom(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}

	identity, ok := value.(Identity)
	if !ok || identity.State != IdentityValid {
		return Identity{}, false
	}
	return identity, true
}
