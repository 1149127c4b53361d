package cookie

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName is set by the external auth service on the dashboard domain.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// BearerToken prefers the cookie and falls back to the Authorization header.
func BearerToken(c *gin.Context) string {
	if token := GetAccessToken(c); token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return ""
}
