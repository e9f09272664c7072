package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-simple/middleware"
)

// render fills the keys every page expects and writes the template
func render(c *gin.Context, status int, name string, data gin.H) {
	page := gin.H{
		"Title":         "",
		"Error":         "",
		"Flash":         PopFlash(c),
		"Authenticated": middleware.IsAuthenticated(c),
	}
	for k, v := range data {
		page[k] = v
	}
	c.HTML(status, name, page)
}

// renderError writes the error page
func renderError(c *gin.Context, status int, message string) {
	render(c, status, "error.html", gin.H{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": message,
	})
}

// NotFound renders the 404 page for unknown routes and ids
func NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, "The page you requested does not exist.")
}
