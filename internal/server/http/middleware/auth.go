package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/canteen/internal/domain/model"
	pkgAuth "github.com/polkiloo/canteen/internal/pkg/auth"
	"github.com/polkiloo/canteen/internal/server/http/dto"
)

const (
	// IdentityContextKey is a gin context key for authenticated caller.
	IdentityContextKey = "identity"
	authCookieName     = "canteen_token"
)

// TokenParser decodes bearer credentials into caller identity.
type TokenParser interface {
	ParseToken(token string) (model.Identity, error)
}

// AuthRequired ensures caller is authenticated before accessing handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Token is missing"})
			return
		}

		identity, err := parser.ParseToken(token)
		if err != nil {
			if pkgAuth.IsInvalidToken(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

// StaffOnly rejects callers without staff role. Must run after AuthRequired.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Identity(c).IsStaff() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Unauthorized - Staff only"})
			return
		}
		c.Next()
	}
}

// Identity returns caller stored by AuthRequired or anonymous identity.
func Identity(c *gin.Context) model.Identity {
	val, ok := c.Get(IdentityContextKey)
	if !ok {
		return model.Identity{}
	}
	identity, _ := val.(model.Identity)
	return identity
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
