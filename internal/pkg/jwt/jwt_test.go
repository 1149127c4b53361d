//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"inkslot/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ValidateToken(t *testing.T) {
	svc := jwt.NewService("secret")
	artistID := uuid.New()

	t.Run("success: artist token round-trips", func(t *testing.T) {
		token, err := svc.GenerateToken(artistID, time.Hour)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, artistID, claims.ArtistID)
		assert.Equal(t, jwt.RoleArtist, claims.Role)
	})

	t.Run("error: expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(artistID, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other").GenerateToken(artistID, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: non-artist role", func(t *testing.T) {
		claims := jwt.Claims{
			ArtistID: artistID,
			Role:     "client",
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrNotAnArtist)
	})
}
