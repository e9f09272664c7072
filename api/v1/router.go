package v1

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the public read-only v1 API
func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	// The gallery is public, so any origin may read it
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	// cors answers preflights before this handler runs
	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	router.GET("/health", h.HealthCheck)
	router.GET("/projects", h.ListProjects)
	router.GET("/projects/:id", h.GetProject)
}
