package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-simple/dto"
)

const (
	// SessionCookieName holds the signed session token
	SessionCookieName = "session"
	// ContextSessionKey is where Session stores the dto.Session for the request
	ContextSessionKey = "session"
	// LoginPath is where unauthenticated requests are sent
	LoginPath = "/login"
)

// SessionParser turns a cookie value back into a session
type SessionParser interface {
	ParseSession(token string) (dto.Session, error)
}

// Session reads the session cookie and stores the result in the request context.
// A missing, expired or tampered cookie yields a logged out session.
func Session(parser SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := dto.Session{}
		if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
			if parsed, err := parser.ParseSession(token); err == nil {
				session = parsed
			}
		}
		c.Set(ContextSessionKey, session)
		c.Next()
	}
}

// CurrentSession returns the session stored by Session
func CurrentSession(c *gin.Context) dto.Session {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return dto.Session{}
	}
	session, _ := value.(dto.Session)
	return session
}

// IsAuthenticated reports whether the request carries a logged in session
func IsAuthenticated(c *gin.Context) bool {
	return CurrentSession(c).LoggedIn
}

// RequireLogin redirects unauthenticated requests to the login page
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAuthenticated(c) {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
