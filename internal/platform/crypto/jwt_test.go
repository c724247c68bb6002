package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	secret := "test-secret-key"
	userID := "user-123"

	t.Run("valid token", func(t *testing.T) {
		token, err := GenerateToken(secret, userID, time.Hour)
		require.NoError(t, err)

		claims, err := ParseToken(secret, token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.Sub)
		assert.NotEmpty(t, claims.ID)
		assert.Equal(t, Issuer, claims.Issuer)
	})

	t.Run("unique token ids", func(t *testing.T) {
		t1, err := GenerateToken(secret, userID, time.Hour)
		require.NoError(t, err)
		t2, err := GenerateToken(secret, userID, time.Hour)
		require.NoError(t, err)

		assert.NotEqual(t, t1, t2)
	})

	t.Run("invalid signature", func(t *testing.T) {
		token, err := GenerateToken("wrong-secret", userID, time.Hour)
		require.NoError(t, err)

		claims, err := ParseToken(secret, token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("expired token", func(t *testing.T) {
		c := Claims{
			Sub: userID,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    Issuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
		require.NoError(t, err)

		claims, err := ParseToken(secret, token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		c := Claims{
			Sub: userID,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = ParseToken(secret, token)
		assert.Error(t, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		claims, err := ParseToken(secret, "not.a.valid.token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
