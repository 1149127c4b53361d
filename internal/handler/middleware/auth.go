package middleware

import (
	"log/slog"
	"net/http"

	"inkslot/internal/handler/httperr"
	"inkslot/internal/pkg/cookie"
	"inkslot/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenValidator verifies dashboard tokens issued by the auth service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxArtistIDKey = "artist_id"
	ctxClaimsKey   = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireArtist admits only tokens that carry the artist role.
func (m *AuthMiddleware) RequireArtist() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.BearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, nil, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxArtistIDKey, claims.ArtistID)
		c.Set(ctxClaimsKey, map[string]any{
			"artist_id": claims.ArtistID.String(),
			"role":      claims.Role,
		})
		c.Next()
	}
}

func GetArtistID(c *gin.Context) (uuid.UUID, bool) {
	artistID, exists := c.Get(ctxArtistIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := artistID.(uuid.UUID)
	return id, ok
}

// SetArtistID is used by handler tests that skip token verification.
func SetArtistID(c *gin.Context, id uuid.UUID) {
	c.Set(ctxArtistIDKey, id)
}
