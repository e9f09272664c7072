package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthCheck reports service status and whether storage answers
func (h *Handler) HealthCheck(c *gin.Context) {
	count, err := h.projects.CountProjects()
	if err != nil {
		h.log.Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "storage unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "portfolio",
		"version":   h.version,
		"projects":  count,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
