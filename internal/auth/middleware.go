package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harryhartz/bimoodtracker/internal"
)

const userContextKey = "user"

// Middleware guards every resource route. It extracts the bearer token,
// resolves it through the injected provider, and attaches the user to the
// request context. Any failure ends the request with 401.
func Middleware(provider IdentityProvider, logger internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}
		user, err := provider.Resolve(c.Request.Context(), token)
		if err != nil {
			logger.Warnf("[request_id=%s] rejected token: %v", c.GetString("request_id"), err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity attached by Middleware. It panics if
// called from an unguarded route.
func CurrentUser(c *gin.Context) *internal.User {
	return c.MustGet(userContextKey).(*internal.User)
}
