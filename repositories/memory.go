package repositories

import (
	"sync"
	"time"

	"github.com/portfolio-simple/models"
)

// MemoryProjectRepository keeps projects in process memory, in insertion order.
// Contents are lost when the process exits.
type MemoryProjectRepository struct {
	mu       sync.RWMutex
	projects []models.Project
	nextID   uint
}

// NewMemoryProjectRepository creates an empty in-memory store
func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{nextID: 1}
}

func (r *MemoryProjectRepository) FindAll() ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]models.Project, len(r.projects))
	for i, p := range r.projects {
		projects[i] = cloneProject(p)
	}
	return projects, nil
}

func (r *MemoryProjectRepository) FindByID(id uint) (models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Project{}, ErrNotFound
	}
	return cloneProject(r.projects[i]), nil
}

func (r *MemoryProjectRepository) Create(project models.Project) (models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	project.ID = r.nextID
	project.CreatedAt = now
	project.UpdatedAt = now
	r.nextID++

	stored := cloneProject(project)
	r.projects = append(r.projects, stored)
	return cloneProject(stored), nil
}

func (r *MemoryProjectRepository) Update(project models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(project.ID)
	if i < 0 {
		return ErrNotFound
	}

	existing := &r.projects[i]
	existing.Title = project.Title
	existing.Description = project.Description
	existing.Link = project.Link
	existing.Image = copyString(project.Image)
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *MemoryProjectRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.projects = append(r.projects[:i], r.projects[i+1:]...)
	return nil
}

func (r *MemoryProjectRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.projects)), nil
}

func (r *MemoryProjectRepository) indexOf(id uint) int {
	for i, p := range r.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// cloneProject keeps callers from mutating the stored image pointer
func cloneProject(p models.Project) models.Project {
	p.Image = copyString(p.Image)
	return p
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
