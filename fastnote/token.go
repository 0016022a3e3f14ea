package fastnote

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken is returned by token introspection when the client holds no
// token.
var ErrNoToken = errors.New("no token set")

// SetToken stores a bearer token for subsequent requests. The token may be
// passed raw or already carrying the "Bearer " prefix; the stored value
// always carries exactly one prefix. Idempotent.
func (c *Client) SetToken(token string) {
	if token != "" && !strings.HasPrefix(token, bearerPrefix) {
		token = bearerPrefix + token
	}
	c.token = token
}

// Token returns the stored Authorization header value, "" when
// unauthenticated.
func (c *Client) Token() string { return c.token }

// TokenClaims parses the stored bearer token as a JWT and returns its
// claims without verifying the signature. The signing key never leaves the
// server, so this is introspection only, not validation.
func (c *Client) TokenClaims() (jwt.MapClaims, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}
	raw := strings.TrimPrefix(c.token, bearerPrefix)
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return claims, nil
}

// TokenExpiresAt reports the exp claim of the stored token, so sync loops
// can re-login before the server starts answering with code 508. A zero
// time with a nil error means the token carries no expiry.
func (c *Client) TokenExpiresAt() (time.Time, error) {
	claims, err := c.TokenClaims()
	if err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}
