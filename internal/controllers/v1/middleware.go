package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goalbook/backend/internal/models"
	"github.com/goalbook/backend/internal/token"
)

const (
	// AuthCookie is the cookie carrying the session token.
	AuthCookie = "auth"

	contextUser    = "currentUser"
	contextSession = "currentSession"
)

// Authenticate verifies the session token from the auth cookie and puts the
// current user and session into the request context. Requests without a
// valid, unexpired session are rejected with HTTP 401.
func (co Controller) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(AuthCookie)
		if err != nil || tokenStr == "" {
			fail(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		claims, err := token.Parse(co.Config.Auth.JWTSecret, tokenStr)
		if err != nil {
			fail(c, http.StatusUnauthorized, "invalid session token")
			c.Abort()
			return
		}

		var session models.Session
		if err := co.DB.First(&session, "id = ?", claims.SessionID).Error; err != nil || !session.Valid(time.Now()) {
			fail(c, http.StatusUnauthorized, "session expired")
			c.Abort()
			return
		}

		var user models.User
		if err := co.DB.First(&user, "id = ?", claims.UserID).Error; err != nil {
			fail(c, http.StatusUnauthorized, "session expired")
			c.Abort()
			return
		}

		c.Set(contextUser, user)
		c.Set(contextSession, session)
		c.Next()
	}
}

// currentUser returns the authenticated user set by Authenticate.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}

func currentSession(c *gin.Context) models.Session {
	return c.MustGet(contextSession).(models.Session)
}
