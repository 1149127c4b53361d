//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"inkslot/internal/pkg/config"
	"inkslot/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) ArtistToken(t *testing.T, artistID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(artistID, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ExpiredArtistToken(t *testing.T, artistID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(artistID, -time.Minute)
	require.NoError(t, err)
	return token
}

// TokenWithRole signs claims the way the auth service would for a
// non-artist account.
func (h *JWTHelper) TokenWithRole(t *testing.T, artistID uuid.UUID, role string) string {
	t.Helper()
	claims := jwt.Claims{
		ArtistID: artistID,
		Role:     role,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return token
}
