package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestJWTIdentity(t *testing.T) {
	id := NewJWTIdentity("secret", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		tok, err := id.GenerateToken(7, "PROVEEDOR")
		require.NoError(t, err)

		claims, err := id.Verify(tok)
		require.NoError(t, err)
		require.Equal(t, uint(7), claims.UserID)
		require.Equal(t, "PROVEEDOR", claims.Role)
		require.Equal(t, "7", claims.Subject)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := NewJWTIdentity("other", time.Hour).GenerateToken(7, "CLIENTE")
		require.NoError(t, err)
		_, err = id.Verify(tok)
		require.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("expired", func(t *testing.T) {
		past := NewJWTIdentity("secret", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		tok, err := past.GenerateToken(7, "CLIENTE")
		require.NoError(t, err)

		_, err = id.Verify(tok)
		require.True(t, errors.Is(err, ErrInvalidToken))
		require.True(t, errors.Is(err, jwt.ErrTokenExpired))
	})

	t.Run("unsigned token is rejected", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 7}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = id.Verify(tok)
		require.Error(t, err)
	})

	t.Run("token without user id", func(t *testing.T) {
		tok, err := id.GenerateToken(0, "CLIENTE")
		require.NoError(t, err)
		_, err = id.Verify(tok)
		require.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := id.Verify("not-a-token")
		require.True(t, errors.Is(err, ErrInvalidToken))
	})
}
