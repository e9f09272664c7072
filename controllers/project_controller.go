package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-simple/dto"
	"github.com/portfolio-simple/middleware"
	"github.com/portfolio-simple/models"
	"github.com/portfolio-simple/services"
	"github.com/portfolio-simple/utils"
	"go.uber.org/zap"
)

// ProjectsPath is where successful mutations redirect to
const ProjectsPath = "/projects"

// ProjectController serves the gallery and the admin forms
type ProjectController struct {
	projects       *services.ProjectService
	log            *zap.Logger
	maxUploadBytes int64
}

// NewProjectController creates the page handlers for projects
func NewProjectController(projects *services.ProjectService, log *zap.Logger, maxUploadBytes int64) *ProjectController {
	return &ProjectController{
		projects:       projects,
		log:            log,
		maxUploadBytes: maxUploadBytes,
	}
}

// List renders every project
func (pc *ProjectController) List(c *gin.Context) {
	projects, err := pc.projects.ListProjects()
	if err != nil {
		pc.internalError(c, "failed to list projects", err)
		return
	}
	render(c, http.StatusOK, "projects.html", gin.H{
		"Title":    "Projects",
		"Projects": projects,
	})
}

// ShowUpload renders the empty upload form
func (pc *ProjectController) ShowUpload(c *gin.Context) {
	render(c, http.StatusOK, "upload.html", gin.H{
		"Title": "Upload",
		"Form":  dto.ProjectForm{},
	})
}

// Upload creates a project from the submitted form
func (pc *ProjectController) Upload(c *gin.Context) {
	form, file, ok := pc.bindForm(c, "upload.html", nil)
	if !ok {
		return
	}

	project, err := pc.projects.CreateProject(form.Input(file))
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			render(c, http.StatusBadRequest, "upload.html", gin.H{
				"Title": "Upload",
				"Form":  form,
				"Error": verr.Message,
			})
			return
		}
		pc.internalError(c, "failed to create project", err)
		return
	}

	SetFlash(c, "Project \""+project.Title+"\" added.")
	c.Redirect(http.StatusSeeOther, ProjectsPath)
}

// ShowEdit renders the edit form pre-filled with the stored project
func (pc *ProjectController) ShowEdit(c *gin.Context) {
	project, ok := pc.loadProject(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "edit.html", gin.H{
		"Title":   "Edit " + project.Title,
		"Project": project,
		"Form":    dto.FormFromProject(project),
	})
}

// Edit updates a project from the submitted form
func (pc *ProjectController) Edit(c *gin.Context) {
	project, ok := pc.loadProject(c)
	if !ok {
		return
	}

	form, file, ok := pc.bindForm(c, "edit.html", &project)
	if !ok {
		return
	}

	updated, err := pc.projects.UpdateProject(project.ID, form.Input(file))
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			render(c, http.StatusBadRequest, "edit.html", gin.H{
				"Title":   "Edit " + project.Title,
				"Project": project,
				"Form":    form,
				"Error":   verr.Message,
			})
		case errors.Is(err, services.ErrNotFound):
			NotFound(c)
		default:
			pc.internalError(c, "failed to update project", err)
		}
		return
	}

	SetFlash(c, "Project \""+updated.Title+"\" updated.")
	c.Redirect(http.StatusSeeOther, ProjectsPath)
}

// Delete removes a project
func (pc *ProjectController) Delete(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		NotFound(c)
		return
	}

	if err := pc.projects.DeleteProject(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			NotFound(c)
			return
		}
		pc.internalError(c, "failed to delete project", err)
		return
	}

	SetFlash(c, "Project deleted.")
	c.Redirect(http.StatusSeeOther, ProjectsPath)
}

// loadProject resolves the :id parameter, writing a 404 when it names no project
func (pc *ProjectController) loadProject(c *gin.Context) (models.Project, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		NotFound(c)
		return models.Project{}, false
	}

	project, err := pc.projects.GetProject(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			NotFound(c)
			return models.Project{}, false
		}
		pc.internalError(c, "failed to load project", err)
		return models.Project{}, false
	}
	return project, true
}

// bindForm parses the text fields and the optional image file.
// On failure the response has been written and ok is false.
func (pc *ProjectController) bindForm(c *gin.Context, page string, project *models.Project) (dto.ProjectForm, *multipart.FileHeader, bool) {
	var form dto.ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		if middleware.IsPayloadTooLarge(err) {
			middleware.AbortPayloadTooLarge(c, pc.maxUploadBytes)
			return form, nil, false
		}
		render(c, http.StatusBadRequest, page, gin.H{
			"Title":   "Invalid form",
			"Project": project,
			"Form":    form,
			"Error":   "Invalid form submission.",
		})
		return form, nil, false
	}

	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return form, nil, true
		}
		if middleware.IsPayloadTooLarge(err) {
			middleware.AbortPayloadTooLarge(c, pc.maxUploadBytes)
			return form, nil, false
		}
		render(c, http.StatusBadRequest, page, gin.H{
			"Title":   "Invalid form",
			"Project": project,
			"Form":    form,
			"Error":   "Invalid file upload.",
		})
		return form, nil, false
	}
	return form, file, true
}

func (pc *ProjectController) internalError(c *gin.Context, msg string, err error) {
	pc.log.Error(msg, zap.Error(err))
	_ = c.Error(err)
	renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
