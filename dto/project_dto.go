package dto

import (
	"io"
	"mime/multipart"

	"github.com/portfolio-simple/models"
)

// ProjectForm represents the text fields of the upload and edit forms
type ProjectForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Link        string `form:"link"`
}

// Upload is a file received with a form, opened lazily
type Upload struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// ProjectInput is the validated-at-the-boundary payload for create and update
type ProjectInput struct {
	Title       string
	Description string
	Link        string
	Image       *Upload // nil when no file was submitted
}

// Input combines the form fields with an optional uploaded file
func (f ProjectForm) Input(file *multipart.FileHeader) ProjectInput {
	return ProjectInput{
		Title:       f.Title,
		Description: f.Description,
		Link:        f.Link,
		Image:       UploadFromFileHeader(file),
	}
}

// UploadFromFileHeader wraps a multipart file; nil or nameless headers mean no file
func UploadFromFileHeader(fh *multipart.FileHeader) *Upload {
	if fh == nil || fh.Filename == "" {
		return nil
	}
	return &Upload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// FormFromProject pre-fills the edit form
func FormFromProject(p models.Project) ProjectForm {
	return ProjectForm{
		Title:       p.Title,
		Description: p.Description,
		Link:        p.Link,
	}
}

// ProjectResponse represents a project in the public JSON API
type ProjectResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Image       string `json:"image,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// NewProjectResponse maps a project to its API representation
func NewProjectResponse(p models.Project, imageBaseURL string) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Link:        p.Link,
	}
	if name := p.ImageName(); name != "" {
		resp.Image = name
		resp.ImageURL = imageBaseURL + "/" + name
	}
	return resp
}
