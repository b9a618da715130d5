package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "noteshare/internal/noteshare/adapters/services"
	"noteshare/internal/noteshare/ports/services"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := adapter.NewJWT(testSecret)

	t.Run("valid token yields the subject", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.RegisteredClaims{
			Subject:   "auth0|abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		authID, err := svc.ValidateAccessToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "auth0|abc", authID)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.RegisteredClaims{
			Subject:   "auth0|abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})

		_, err := svc.ValidateAccessToken(ctx, token)
		require.ErrorIs(t, err, services.ErrExpiredToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.RegisteredClaims{
			Subject:   "auth0|abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		_, err := svc.ValidateAccessToken(ctx, token)
		require.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("empty subject claim", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		_, err := svc.ValidateAccessToken(ctx, token)
		require.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(ctx, "not-a-jwt")
		require.ErrorIs(t, err, services.ErrInvalidToken)
	})
}
