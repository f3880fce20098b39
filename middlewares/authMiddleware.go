package middlewares

import (
	"net/http"
	"strings"

	authUtils "ainamoi-portal-be/utils"

	"github.com/gin-gonic/gin"
)

// IdentityResolver resolves the caller's authenticated identity from the
// request, or reports that none resolves. Truth of authentication lives in
// the externally-verified cookie; the server keeps no session state.
type IdentityResolver func(c *gin.Context) (string, bool)

// CookieIdentity resolves the admin ID from the auth_token cookie, falling
// back to a bearer Authorization header.
func CookieIdentity(c *gin.Context) (string, bool) {
	tokenString := ""
	if cookie, err := c.Cookie("auth_token"); err == nil {
		tokenString = cookie
	} else if authHeader := c.Request.Header.Get("Authorization"); authHeader != "" {
		tokenString = authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[7:]
		}
	}
	if tokenString == "" {
		return "", false
	}

	userID, err := authUtils.ParseUserID(tokenString)
	if err != nil {
		return "", false
	}
	return userID, true
}

// AuthMiddleware rejects unauthenticated JSON API requests with 401
func AuthMiddleware(resolve IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolve(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
