package fastnote

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetToken(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"raw token gets prefix", "abc", "Bearer abc"},
		{"prefixed token kept as is", "Bearer abc", "Bearer abc"},
		{"empty token stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("")
			c.SetToken(tt.in)
			assert.Equal(t, tt.want, c.Token())

			// Idempotent: setting the stored value back changes nothing.
			c.SetToken(c.Token())
			assert.Equal(t, tt.want, c.Token())
		})
	}
}

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenClaims(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		c := New("")
		_, err := c.TokenClaims()
		assert.True(t, errors.Is(err, ErrNoToken))
	})

	t.Run("not a jwt", func(t *testing.T) {
		c := New("", WithToken("opaque-token"))
		_, err := c.TokenClaims()
		assert.Error(t, err)
	})

	t.Run("claims readable without the signing key", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"uid": "7"})
		c := New("", WithToken(tok))

		claims, err := c.TokenClaims()
		require.NoError(t, err)
		assert.Equal(t, "7", claims["uid"])
	})
}

func TestTokenExpiresAt(t *testing.T) {
	t.Run("with expiry", func(t *testing.T) {
		exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		tok := signedToken(t, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		})
		c := New("", WithToken(tok))

		got, err := c.TokenExpiresAt()
		require.NoError(t, err)
		assert.True(t, got.Equal(exp), "expiry = %v, want %v", got, exp)
	})

	t.Run("without expiry", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"uid": "7"})
		c := New("", WithToken(tok))

		got, err := c.TokenExpiresAt()
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})
}
