package repositories

import (
	"testing"

	"artizia_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActiveTopLevel(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository()

	root := models.Category{Name: "Root", Slug: "root", IsActive: true, SortOrder: 2}
	require.NoError(t, db.Create(&root).Error)

	first := models.Category{Name: "First", Slug: "first", IsActive: true, SortOrder: 1}
	require.NoError(t, db.Create(&first).Error)

	hidden := models.Category{Name: "Hidden", Slug: "hidden", IsActive: false}
	require.NoError(t, db.Create(&hidden).Error)

	child := models.Category{ParentID: &root.ID, Name: "Child", Slug: "child", IsActive: true}
	require.NoError(t, db.Create(&child).Error)

	hiddenChild := models.Category{ParentID: &root.ID, Name: "Hidden Child", Slug: "hidden-child", IsActive: false}
	require.NoError(t, db.Create(&hiddenChild).Error)

	categories, err := repo.ListActiveTopLevel(db, 0)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "First", categories[0].Name)
	assert.Equal(t, "Root", categories[1].Name)
	require.Len(t, categories[1].Children, 1)
	assert.Equal(t, "Child", categories[1].Children[0].Name)

	limited, err := repo.ListActiveTopLevel(db, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestFindActiveBySlugInactiveCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository()

	require.NoError(t, db.Create(&models.Category{
		Name: "Closed", Slug: "closed", IsActive: false,
	}).Error)

	_, err := repo.FindActiveBySlug(db, "closed")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestActiveProductCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository()

	counted := models.Category{Name: "Counted", Slug: "counted", IsActive: true}
	require.NoError(t, db.Create(&counted).Error)
	empty := models.Category{Name: "Empty", Slug: "empty", IsActive: true}
	require.NoError(t, db.Create(&empty).Error)

	seedProduct(t, db, models.Product{CategoryID: counted.ID, Name: "a", Price: 1, IsActive: true})
	seedProduct(t, db, models.Product{CategoryID: counted.ID, Name: "b", Price: 1, IsActive: true})
	seedProduct(t, db, models.Product{CategoryID: counted.ID, Name: "c", Price: 1, IsActive: false})

	counts, err := repo.ActiveProductCounts(db, []string{counted.ID, empty.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[counted.ID])
	assert.Equal(t, int64(0), counts[empty.ID])
}

func TestChildIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository()

	parent := models.Category{Name: "Parent", Slug: "parent", IsActive: true}
	require.NoError(t, db.Create(&parent).Error)
	childA := models.Category{ParentID: &parent.ID, Name: "A", Slug: "a", IsActive: true}
	require.NoError(t, db.Create(&childA).Error)
	childB := models.Category{ParentID: &parent.ID, Name: "B", Slug: "b", IsActive: false}
	require.NoError(t, db.Create(&childB).Error)

	ids, err := repo.ChildIDs(db, parent.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{childA.ID, childB.ID}, ids)
}

func TestCreatePersistsInactiveCategory(t *testing.T) {
	db := newTestDB(t)

	hidden := models.Category{Name: "Hidden", Slug: "hidden", IsActive: false}
	require.NoError(t, db.Create(&hidden).Error)

	var reloaded models.Category
	require.NoError(t, db.First(&reloaded, "id = ?", hidden.ID).Error)
	assert.False(t, reloaded.IsActive)
}
