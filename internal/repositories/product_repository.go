package repositories

import (
	"errors"
	"strings"

	"artizia_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

type ProductRepository interface {
	FindWithFilter(db *gorm.DB, criteria ProductFilter) ([]models.Product, int64, error)
	FindActiveBySlug(db *gorm.DB, slug string) (*models.Product, error)
	FindByID(db *gorm.DB, id string) (*models.Product, error)

	// Storefront selections
	FindFeatured(db *gorm.DB, limit int) ([]models.Product, error)
	FindNewest(db *gorm.DB, limit int) ([]models.Product, error)
	FindRelated(db *gorm.DB, categoryID, excludeID string, limit int) ([]models.Product, error)
	FindMoreFromVendor(db *gorm.DB, userID, excludeID string, limit int) ([]models.Product, error)

	// Vendor dashboard selections
	FindRecentByVendor(db *gorm.DB, userID string, limit int) ([]models.Product, error)
	FindLowStockByVendor(db *gorm.DB, userID string, limit int) ([]models.Product, error)
	VendorCatalogStats(db *gorm.DB, userID string) (*VendorCatalogStats, error)
	VendorDashboardStats(db *gorm.DB, userID string) (*VendorDashboardStats, error)

	// Admin selections
	FindRecent(db *gorm.DB, limit int) ([]models.Product, error)
	CountAll(db *gorm.DB) (int64, error)
	CountActive(db *gorm.DB) (int64, error)

	// Mutations
	Create(db *gorm.DB, product *models.Product) error
	Update(db *gorm.DB, product *models.Product) error
	UpdateActive(db *gorm.DB, id string, isActive bool) error
	Delete(db *gorm.DB, product *models.Product) error

	// Uniqueness checks
	ExistsBySKU(db *gorm.DB, sku, excludeID string) (bool, error)
	ExistsBySlug(db *gorm.DB, slug, excludeID string) (bool, error)
}

// ProductFilter holds the conjunctive listing filters. Search matches
// name/description/short_description; NameSKUSearch matches name/sku
// (the vendor and admin listing shape).
type ProductFilter struct {
	CategoryID    string
	CategoryIDs   []string
	VendorID      string
	MinPrice      *float64
	MaxPrice      *float64
	Search        string
	NameSKUSearch string
	IsActive      *bool
	SortBy        string
	SortOrder     string
	Page          int
	PageSize      int
}

// VendorCatalogStats is shown on the public vendor page. Totals span all of
// the vendor's products regardless of active flag.
type VendorCatalogStats struct {
	TotalProducts   int64 `json:"total_products"`
	ActiveProducts  int64 `json:"active_products"`
	CategoriesCount int64 `json:"categories_count"`
}

type VendorDashboardStats struct {
	TotalProducts    int64 `json:"total_products"`
	ActiveProducts   int64 `json:"active_products"`
	OutOfStock       int64 `json:"out_of_stock"`
	FeaturedProducts int64 `json:"featured_products"`
}

type productRepository struct{}

func NewProductRepository() ProductRepository {
	return &productRepository{}
}

func (r *productRepository) FindWithFilter(db *gorm.DB, criteria ProductFilter) ([]models.Product, int64, error) {
	var products []models.Product
	query := db.Model(&models.Product{})

	if criteria.CategoryID != "" {
		query = query.Where("category_id = ?", criteria.CategoryID)
	}
	if len(criteria.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", criteria.CategoryIDs)
	}
	if criteria.VendorID != "" {
		query = query.Where("user_id = ?", criteria.VendorID)
	}
	if criteria.MinPrice != nil {
		query = query.Where("price >= ?", *criteria.MinPrice)
	}
	if criteria.MaxPrice != nil {
		query = query.Where("price <= ?", *criteria.MaxPrice)
	}
	if criteria.Search != "" {
		pattern := "%" + strings.ToLower(criteria.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(short_description) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if criteria.NameSKUSearch != "" {
		pattern := "%" + strings.ToLower(criteria.NameSKUSearch) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", pattern, pattern)
	}
	if criteria.IsActive != nil {
		query = query.Where("is_active = ?", *criteria.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applySort(query, criteria.SortBy, criteria.SortOrder)

	offset := (criteria.Page - 1) * criteria.PageSize
	err := query.Preload("Category").Preload("User").Preload("Images").
		Limit(criteria.PageSize).Offset(offset).Find(&products).Error

	return products, total, err
}

func applySort(query *gorm.DB, sortBy, sortOrder string) *gorm.DB {
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}

	switch sortBy {
	case "price_low":
		return query.Order("price ASC")
	case "price_high":
		return query.Order("price DESC")
	case "name":
		return query.Order("name " + direction)
	case "featured":
		return query.Order("is_featured DESC").Order("created_at DESC")
	case "price":
		return query.Order("price " + direction)
	case "created_at", "":
		return query.Order("created_at " + direction)
	default:
		// Unknown sort keys fall back to newest first.
		return query.Order("created_at DESC")
	}
}

func (r *productRepository) FindActiveBySlug(db *gorm.DB, slug string) (*models.Product, error) {
	var product models.Product
	err := db.Preload("Category").
		Preload("User").Preload("User.VendorProfile").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByID(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	err := db.Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Storefront selections

func (r *productRepository) FindFeatured(db *gorm.DB, limit int) ([]models.Product, error) {
	var products []models.Product
	err := db.Preload("Category").Preload("Images").
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepository) FindNewest(db *gorm.DB, limit int) ([]models.Product, error) {
	var products []models.Product
	err := db.Preload("Category").Preload("Images").
		Where("is_active = ?", true).
		Order("created_at DESC").Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepository) FindRelated(db *gorm.DB, categoryID, excludeID string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := db.Preload("Images").
		Where("category_id = ? AND is_active = ? AND id != ?", categoryID, true, excludeID).
		Order("created_at DESC").Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepository) FindMoreFromVendor(db *gorm.DB, userID, excludeID string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := db.Preload("Images").
		Where("user_id = ? AND is_active = ? AND id != ?", userID, true, excludeID).
		Order("created_at DESC").Limit(limit).Find(&products).Error
	return products, err
}

// Vendor dashboard selections

func (r *productRepository) FindRecentByVendor(db *gorm.DB, userID string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := db.Preload("Category").Preload("Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepository) FindLowStockByVendor(db *gorm.DB, userID string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := db.Preload("Category").
		Where("user_id = ? AND inventory_quantity > 0 AND inventory_quantity <= 10", userID).
		Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepository) VendorCatalogStats(db *gorm.DB, userID string) (*VendorCatalogStats, error) {
	var stats VendorCatalogStats

	if err := db.Model(&models.Product{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Product{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&stats.ActiveProducts).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Product{}).
		Where("user_id = ?", userID).
		Distinct("category_id").
		Count(&stats.CategoriesCount).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *productRepository) VendorDashboardStats(db *gorm.DB, userID string) (*VendorDashboardStats, error) {
	var stats VendorDashboardStats

	if err := db.Model(&models.Product{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Product{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&stats.ActiveProducts).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Product{}).
		Where("user_id = ? AND inventory_quantity = 0", userID).
		Count(&stats.OutOfStock).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Product{}).
		Where("user_id = ? AND is_featured = ?", userID, true).
		Count(&stats.FeaturedProducts).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// Admin selections

func (r *productRepository) FindRecent(db *gorm.DB, limit int) ([]models.Product, error) {
	var products []models.Product
	err := db.Preload("User").Preload("Category").
		Order("created_at DESC").Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepository) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepository) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Product{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// Mutations

func (r *productRepository) Create(db *gorm.DB, product *models.Product) error {
	return db.Create(product).Error
}

func (r *productRepository) Update(db *gorm.DB, product *models.Product) error {
	result := db.Save(product)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *productRepository) UpdateActive(db *gorm.DB, id string, isActive bool) error {
	result := db.Model(&models.Product{}).Where("id = ?", id).Update("is_active", isActive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *productRepository) Delete(db *gorm.DB, product *models.Product) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}

		result := tx.Delete(product)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
}

// Uniqueness checks

func (r *productRepository) ExistsBySKU(db *gorm.DB, sku, excludeID string) (bool, error) {
	query := db.Model(&models.Product{}).Where("sku = ?", sku)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *productRepository) ExistsBySlug(db *gorm.DB, slug, excludeID string) (bool, error) {
	query := db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
