package repositories

import (
	"errors"

	"github.com/portfolio-simple/models"
)

// ErrNotFound is returned when no project has the requested id
var ErrNotFound = errors.New("project not found")

// ProjectStore is the persistence contract for projects
type ProjectStore interface {
	// Create assigns a new id and persists the project
	Create(project models.Project) (models.Project, error)
	// FindAll returns every project in the store's list order
	FindAll() ([]models.Project, error)
	FindByID(id uint) (models.Project, error)
	// Update overwrites title, description, link and image of an existing project
	Update(project models.Project) error
	Delete(id uint) error
	Count() (int64, error)
}
