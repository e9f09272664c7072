package repositories

import (
	"errors"

	"github.com/portfolio-simple/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindAll retrieves all projects, most recent first
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Order("id desc").Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id uint) (models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, ErrNotFound
	}
	return project, err
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	project.ID = 0
	result := r.db.Create(&project)
	return project, result.Error
}

// Update modifies an existing project.
// A map is used so empty strings and a nil image are written too.
func (r *ProjectRepository) Update(project models.Project) error {
	result := r.db.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"title":       project.Title,
			"description": project.Description,
			"link":        project.Link,
			"image":       project.Image,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a project from the database
func (r *ProjectRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored projects
func (r *ProjectRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.Project{}).Count(&count)
	return count, result.Error
}
