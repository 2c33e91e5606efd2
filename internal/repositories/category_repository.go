package repositories

import (
	"errors"

	"artizia_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

type CategoryRepository interface {
	FindActiveBySlug(db *gorm.DB, slug string) (*models.Category, error)
	ListActiveTopLevel(db *gorm.DB, limit int) ([]models.Category, error)
	ChildIDs(db *gorm.DB, parentID string) ([]string, error)
	ActiveProductCounts(db *gorm.DB, categoryIDs []string) (map[string]int64, error)
	ExistsByID(db *gorm.DB, id string) (bool, error)
	CountAll(db *gorm.DB) (int64, error)
	Create(db *gorm.DB, category *models.Category) error
}

type categoryRepository struct{}

func NewCategoryRepository() CategoryRepository {
	return &categoryRepository{}
}

func (r *categoryRepository) FindActiveBySlug(db *gorm.DB, slug string) (*models.Category, error) {
	var category models.Category
	err := db.Preload("Children", "is_active = ?", true).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// ListActiveTopLevel returns active root categories ordered by sort_order,
// with their active children. limit <= 0 means no limit.
func (r *categoryRepository) ListActiveTopLevel(db *gorm.DB, limit int) ([]models.Category, error) {
	var categories []models.Category
	query := db.Preload("Children", func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true).Order("sort_order ASC")
	}).
		Where("parent_id IS NULL AND is_active = ?", true).
		Order("sort_order ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) ChildIDs(db *gorm.DB, parentID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.Category{}).
		Where("parent_id = ?", parentID).
		Pluck("id", &ids).Error
	return ids, err
}

// ActiveProductCounts returns the number of active products per category for
// the given category IDs.
func (r *categoryRepository) ActiveProductCounts(db *gorm.DB, categoryIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(categoryIDs))
	if len(categoryIDs) == 0 {
		return counts, nil
	}

	type row struct {
		CategoryID string
		Count      int64
	}

	var rows []row
	err := db.Model(&models.Product{}).
		Select("category_id, COUNT(*) as count").
		Where("category_id IN ? AND is_active = ?", categoryIDs, true).
		Group("category_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.CategoryID] = r.Count
	}
	return counts, nil
}

func (r *categoryRepository) ExistsByID(db *gorm.DB, id string) (bool, error) {
	var count int64
	err := db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *categoryRepository) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Category{}).Count(&count).Error
	return count, err
}

func (r *categoryRepository) Create(db *gorm.DB, category *models.Category) error {
	return db.Create(category).Error
}
