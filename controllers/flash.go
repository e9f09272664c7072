package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	flashCookieName = "flash"
	secureCookieKey = "secureCookie"
)

// CookieOptions makes the flash cookie follow SESSION_SECURE_COOKIE like the session cookie
func CookieOptions(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(secureCookieKey, secure)
		c.Next()
	}
}

// SetFlash stores a one-shot message shown on the next rendered page.
// gin escapes the cookie value on write and unescapes it on read.
func SetFlash(c *gin.Context, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, message, 60, "/", "", c.GetBool(secureCookieKey), true)
}

// PopFlash returns the pending flash message and clears it
func PopFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookieName)
	if err != nil || message == "" {
		return ""
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, "", -1, "/", "", c.GetBool(secureCookieKey), true)
	return message
}
