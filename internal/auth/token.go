package auth

import (
	"errors"
	"fmt"
	"time"

	apperrors "organisation-api/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// DefaultTokenTTL is the lifetime of an access token
	DefaultTokenTTL = time.Hour
	// DefaultIssuer is written to the iss claim
	DefaultIssuer = "organisation-api"
)

// ErrTokenInvalid is returned for any token that must not be trusted
var ErrTokenInvalid = errors.New("invalid token")

// Claims represents the JWT claims of an access token
type Claims struct {
	UserID string `json:"userId" example:"6b0c5d2e-1f5c-4a57-9d1f-2f4b3c1e8a90"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HS256 access tokens
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// Option customises a TokenCodec
type Option func(*TokenCodec)

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(c *TokenCodec) { c.now = now }
}

// WithIssuer overrides DefaultIssuer
func WithIssuer(issuer string) Option {
	return func(c *TokenCodec) { c.issuer = issuer }
}

// NewTokenCodec creates a codec signing with secret. A non-positive ttl selects DefaultTokenTTL.
func NewTokenCodec(secret []byte, ttl time.Duration, opts ...Option) (*TokenCodec, error) {
	if len(secret) == 0 {
		return nil, apperrors.NewConfigurationError("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	c := &TokenCodec{
		secret: secret,
		ttl:    ttl,
		issuer: DefaultIssuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// TTL returns the token lifetime
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for userID
func (c *TokenCodec) Issue(userID uuid.UUID) (string, error) {
	now := c.now()
	claims := &Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    c.issuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the user id the token was issued for.
// Every failure wraps ErrTokenInvalid.
func (c *TokenCodec) Verify(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(c.issuer),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: userId claim: %v", ErrTokenInvalid, err)
	}
	return userID, nil
}
