package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/portfolio-simple/dto"
	"github.com/portfolio-simple/lib/filestore"
	"github.com/portfolio-simple/metrics"
	"github.com/portfolio-simple/models"
	"github.com/portfolio-simple/repositories"
	"go.uber.org/zap"
)

// ProjectService handles business logic for projects.
// Authorization is enforced by the router before any mutating call.
type ProjectService struct {
	store   repositories.ProjectStore
	files   *filestore.Store
	log     *zap.Logger
	metrics *metrics.Metrics
}

// NewProjectService creates a new project service instance; m may be nil
func NewProjectService(store repositories.ProjectStore, files *filestore.Store, log *zap.Logger, m *metrics.Metrics) *ProjectService {
	return &ProjectService{
		store:   store,
		files:   files,
		log:     log,
		metrics: m,
	}
}

// ListProjects returns every project in the store's list order
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.store.FindAll()
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(id uint) (models.Project, error) {
	return s.store.FindByID(id)
}

// CountProjects returns the number of stored projects
func (s *ProjectService) CountProjects() (int64, error) {
	return s.store.Count()
}

// CreateProject validates the input, stores the image if one was supplied and
// persists the new project. Nothing is written when validation fails.
func (s *ProjectService) CreateProject(in dto.ProjectInput) (models.Project, error) {
	safeName, err := s.validate(in)
	if err != nil {
		s.metrics.ObserveProjectOperation("create", "invalid")
		return models.Project{}, err
	}

	var image *string
	if safeName != "" {
		stored, err := s.saveUpload(in.Image, safeName)
		if err != nil {
			s.metrics.ObserveProjectOperation("create", "error")
			return models.Project{}, err
		}
		image = &stored
	}

	project, err := s.store.Create(models.Project{
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
		Image:       image,
	})
	if err != nil {
		s.discardUpload(image)
		s.metrics.ObserveProjectOperation("create", "error")
		return models.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	s.metrics.ObserveProjectOperation("create", "ok")
	s.log.Info("project created", zap.Uint("id", project.ID), zap.String("image", project.ImageName()))
	return project, nil
}

// UpdateProject overwrites title, description and link, and the image only when
// a new valid file is supplied. On any validation failure the stored project is untouched.
func (s *ProjectService) UpdateProject(id uint, in dto.ProjectInput) (models.Project, error) {
	project, err := s.store.FindByID(id)
	if err != nil {
		s.metrics.ObserveProjectOperation("update", resultFor(err))
		return models.Project{}, err
	}

	safeName, err := s.validate(in)
	if err != nil {
		s.metrics.ObserveProjectOperation("update", "invalid")
		return models.Project{}, err
	}

	var image *string
	if safeName != "" {
		stored, err := s.saveUpload(in.Image, safeName)
		if err != nil {
			s.metrics.ObserveProjectOperation("update", "error")
			return models.Project{}, err
		}
		image = &stored
	}

	// the previous image file is kept on disk when replaced
	project.Title = in.Title
	project.Description = in.Description
	project.Link = in.Link
	if image != nil {
		project.Image = image
	}

	if err := s.store.Update(project); err != nil {
		s.discardUpload(image)
		s.metrics.ObserveProjectOperation("update", resultFor(err))
		if errors.Is(err, ErrNotFound) {
			return models.Project{}, err
		}
		return models.Project{}, fmt.Errorf("failed to update project %d: %w", id, err)
	}

	s.metrics.ObserveProjectOperation("update", "ok")
	s.log.Info("project updated", zap.Uint("id", id), zap.String("image", project.ImageName()))
	return s.store.FindByID(id)
}

// DeleteProject removes the project record. Its image file stays in the upload directory.
func (s *ProjectService) DeleteProject(id uint) error {
	if err := s.store.Delete(id); err != nil {
		s.metrics.ObserveProjectOperation("delete", resultFor(err))
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete project %d: %w", id, err)
	}

	s.metrics.ObserveProjectOperation("delete", "ok")
	s.log.Info("project deleted", zap.Uint("id", id))
	return nil
}

// validate checks the text fields against the column limits and, if a file was
// submitted, its type. It returns the sanitized filename to store, or "" when there is no file.
func (s *ProjectService) validate(in dto.ProjectInput) (string, error) {
	if strings.TrimSpace(in.Title) == "" {
		return "", &ValidationError{Message: MsgTitleRequired}
	}
	if utf8.RuneCountInString(in.Title) > models.TitleMaxLength {
		return "", &ValidationError{Message: MsgTitleTooLong}
	}
	if utf8.RuneCountInString(in.Link) > models.LinkMaxLength {
		return "", &ValidationError{Message: MsgLinkTooLong}
	}

	if in.Image == nil || in.Image.Filename == "" {
		return "", nil
	}

	if !s.files.IsAllowed(in.Image.Filename) {
		return "", &ValidationError{Message: MsgInvalidFileType}
	}
	// leave room for the collision suffix so the stored name always fits the column
	safeName := filestore.FitName(filestore.Sanitize(in.Image.Filename), models.ImageMaxLength-filestore.UniqueSuffixLength)
	if safeName == "" || !s.files.IsAllowed(safeName) {
		return "", &ValidationError{Message: MsgInvalidFileType}
	}
	return safeName, nil
}

func (s *ProjectService) saveUpload(upload *dto.Upload, safeName string) (string, error) {
	r, err := upload.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload %q: %w", upload.Filename, err)
	}
	defer r.Close()

	stored, err := s.files.Save(r, safeName)
	if err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	if stored != safeName {
		s.log.Info("upload renamed to avoid overwriting an existing file",
			zap.String("requested", safeName),
			zap.String("stored", stored),
		)
	}
	s.metrics.AddUploadedBytes(upload.Size)
	return stored, nil
}

// discardUpload removes a file whose project record could not be written
func (s *ProjectService) discardUpload(image *string) {
	if image == nil {
		return
	}
	if err := s.files.Remove(*image); err != nil {
		s.log.Warn("failed to remove orphaned upload", zap.String("image", *image), zap.Error(err))
	}
}

func resultFor(err error) string {
	if errors.Is(err, ErrNotFound) {
		return "not_found"
	}
	return "error"
}
