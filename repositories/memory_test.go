package repositories

import (
	"testing"

	"github.com/portfolio-simple/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestMemoryRepositoryInsertionOrder(t *testing.T) {
	repo := NewMemoryProjectRepository()

	a, err := repo.Create(models.Project{Title: "A"})
	require.NoError(t, err)
	b, err := repo.Create(models.Project{Title: "B"})
	require.NoError(t, err)

	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Title)
	assert.Equal(t, "B", all[1].Title)
}

func TestMemoryRepositoryIDsAreNotReused(t *testing.T) {
	repo := NewMemoryProjectRepository()

	a, _ := repo.Create(models.Project{Title: "A"})
	require.NoError(t, repo.Delete(a.ID))
	b, err := repo.Create(models.Project{Title: "B"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestMemoryRepositoryUpdateAndDelete(t *testing.T) {
	repo := NewMemoryProjectRepository()
	p, _ := repo.Create(models.Project{Title: "A", Image: strPtr("a.png")})

	p.Title = "A2"
	p.Image = nil
	require.NoError(t, repo.Update(p))

	got, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Title)
	assert.Nil(t, got.Image)

	require.NoError(t, repo.Delete(p.ID))
	_, err = repo.FindByID(p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(p.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Update(models.Project{ID: 99, Title: "x"}), ErrNotFound)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryProjectRepository()
	p, _ := repo.Create(models.Project{Title: "A", Image: strPtr("a.png")})

	*p.Image = "changed.png"

	got, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "a.png", got.ImageName())
}
