package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// LimitRequestBody rejects bodies larger than maxBytes with 413.
// Declared lengths are checked up front; streamed bodies are capped with http.MaxBytesReader
// and the handler reports the failure through IsPayloadTooLarge.
func LimitRequestBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			AbortPayloadTooLarge(c, maxBytes)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// IsPayloadTooLarge reports whether err came from reading past the body limit
func IsPayloadTooLarge(err error) bool {
	if err == nil {
		return false
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	// multipart parsing does not always wrap the reader error
	return strings.Contains(err.Error(), "request body too large")
}

// AbortPayloadTooLarge writes the 413 response
func AbortPayloadTooLarge(c *gin.Context, maxBytes int64) {
	c.String(http.StatusRequestEntityTooLarge, fmt.Sprintf("Upload too large: the limit is %d bytes.", maxBytes))
	c.Abort()
}
