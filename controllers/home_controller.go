package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home renders the landing page
func Home(c *gin.Context) {
	render(c, http.StatusOK, "index.html", gin.H{"Title": "Home"})
}
