package auth

import (
	"net/http"
	"strings"

	"staffing-dashboard/internal/logger"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// LoginPath is where unauthenticated page requests are sent
const LoginPath = "/login"

// AuthMiddleware guards routes behind a valid session cookie
type AuthMiddleware struct {
	sessions *SessionService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(sessions *SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireSession validates the session cookie and sets the session context.
// API requests get 401; page requests are redirected to the login page.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookieName)
		session, err := m.sessions.Validate(token)
		if err != nil {
			logger.WithContext(c).WithError(err).Debug("Session rejected")
			if isAPIRequest(c) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
				c.Abort()
				return
			}
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}

		c.Set(sessionContextKey, session)
		c.Set(logger.SessionIDKey, session.ID)

		c.Next()
	}
}

// GetSession is a helper function to extract the session from context
func GetSession(c *gin.Context) (*Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}

	session, ok := value.(*Session)
	return session, ok
}

func isAPIRequest(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}
