package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"literacy_app_backend/auth"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session"

// Context keys set for authenticated requests.
const (
	ContextUserKey    = "user"
	ContextUserIDKey  = "userID"
	ContextSessionKey = "sessionToken"
)

// AuthMiddleware resolves the session cookie to a user and stores the
// identity in the request context. Requests with a missing, expired or
// orphaned session are rejected.
func AuthMiddleware(authService *auth.Service, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		user, err := authService.CurrentUser(token)
		if err != nil {
			if err != auth.ErrInvalidSession {
				log.Error("error resolving session", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
				c.Abort()
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextSessionKey, token)
		c.Next()
	}
}
