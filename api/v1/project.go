package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-simple/dto"
	"github.com/portfolio-simple/services"
	"github.com/portfolio-simple/utils"
	"go.uber.org/zap"
)

// Handler serves the JSON view of the gallery
type Handler struct {
	projects     *services.ProjectService
	log          *zap.Logger
	version      string
	imageBaseURL string
}

// NewHandler creates the v1 API handler
func NewHandler(projects *services.ProjectService, log *zap.Logger, version, imageBaseURL string) *Handler {
	return &Handler{
		projects:     projects,
		log:          log,
		version:      version,
		imageBaseURL: imageBaseURL,
	}
}

// ListProjects returns every project in list order
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.projects.ListProjects()
	if err != nil {
		h.log.Error("failed to list projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve projects",
		})
		return
	}

	data := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		data = append(data, dto.NewProjectResponse(p, h.imageBaseURL))
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   data,
	})
}

// GetProject returns a single project
func (h *Handler) GetProject(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Project not found"})
		return
	}

	project, err := h.projects.GetProject(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Project not found"})
			return
		}
		h.log.Error("failed to load project", zap.Uint("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve project",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dto.NewProjectResponse(project, h.imageBaseURL),
	})
}
