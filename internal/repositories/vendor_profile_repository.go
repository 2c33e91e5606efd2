package repositories

import (
	"errors"
	"strings"
	"time"

	"artizia_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrVendorProfileNotFound = errors.New("vendor profile not found")
)

type VendorProfileRepository interface {
	Create(db *gorm.DB, profile *models.VendorProfile) error
	FindByID(db *gorm.DB, id string) (*models.VendorProfile, error)
	FindByUserID(db *gorm.DB, userID string) (*models.VendorProfile, error)
	Update(db *gorm.DB, profile *models.VendorProfile) error
	UpdateStatus(db *gorm.DB, id string, status models.VendorStatus, approvedAt *time.Time) error

	// Public catalog: approved vendors only
	FindApprovedByUserID(db *gorm.DB, userID string) (*models.VendorProfile, error)
	FindApproved(db *gorm.DB, search string, page, pageSize int) ([]models.VendorProfile, int64, error)

	// Admin operations
	FindWithFilter(db *gorm.DB, criteria VendorFilter) ([]models.VendorProfile, int64, error)
	FindRecentPending(db *gorm.DB, limit int) ([]models.VendorProfile, error)
	CountByStatus(db *gorm.DB, status models.VendorStatus) (int64, error)
}

type VendorFilter struct {
	Status   models.VendorStatus
	Search   string
	Page     int
	PageSize int
}

type vendorProfileRepository struct{}

func NewVendorProfileRepository() VendorProfileRepository {
	return &vendorProfileRepository{}
}

func (r *vendorProfileRepository) Create(db *gorm.DB, profile *models.VendorProfile) error {
	return db.Create(profile).Error
}

func (r *vendorProfileRepository) FindByID(db *gorm.DB, id string) (*models.VendorProfile, error) {
	var profile models.VendorProfile
	err := db.Preload("User").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *vendorProfileRepository) FindByUserID(db *gorm.DB, userID string) (*models.VendorProfile, error) {
	var profile models.VendorProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *vendorProfileRepository) Update(db *gorm.DB, profile *models.VendorProfile) error {
	result := db.Save(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVendorProfileNotFound
	}
	return nil
}

func (r *vendorProfileRepository) UpdateStatus(db *gorm.DB, id string, status models.VendorStatus, approvedAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if approvedAt != nil {
		updates["approved_at"] = approvedAt
	}

	result := db.Model(&models.VendorProfile{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVendorProfileNotFound
	}
	return nil
}

// Public catalog: approved vendors only

func (r *vendorProfileRepository) FindApprovedByUserID(db *gorm.DB, userID string) (*models.VendorProfile, error) {
	var profile models.VendorProfile
	err := db.Preload("User").
		Where("user_id = ? AND status = ?", userID, models.VendorStatusApproved).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *vendorProfileRepository) FindApproved(db *gorm.DB, search string, page, pageSize int) ([]models.VendorProfile, int64, error) {
	var profiles []models.VendorProfile
	query := db.Model(&models.VendorProfile{}).
		Joins("JOIN users ON users.id = vendor_profiles.user_id").
		Where("vendor_profiles.status = ?", models.VendorStatusApproved)

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(vendor_profiles.business_name) LIKE ? OR LOWER(vendor_profiles.business_description) LIKE ? OR LOWER(users.name) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("User").
		Order("vendor_profiles.created_at DESC").
		Limit(pageSize).Offset(offset).Find(&profiles).Error

	return profiles, total, err
}

// Admin operations

func (r *vendorProfileRepository) FindWithFilter(db *gorm.DB, criteria VendorFilter) ([]models.VendorProfile, int64, error) {
	var profiles []models.VendorProfile
	query := db.Model(&models.VendorProfile{}).
		Joins("JOIN users ON users.id = vendor_profiles.user_id")

	if criteria.Status != "" {
		query = query.Where("vendor_profiles.status = ?", criteria.Status)
	}
	if criteria.Search != "" {
		pattern := "%" + strings.ToLower(criteria.Search) + "%"
		query = query.Where(
			"LOWER(vendor_profiles.business_name) LIKE ? OR LOWER(users.name) LIKE ? OR LOWER(users.email) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (criteria.Page - 1) * criteria.PageSize
	err := query.Preload("User").
		Order("vendor_profiles.created_at DESC").
		Limit(criteria.PageSize).Offset(offset).Find(&profiles).Error

	return profiles, total, err
}

func (r *vendorProfileRepository) FindRecentPending(db *gorm.DB, limit int) ([]models.VendorProfile, error) {
	var profiles []models.VendorProfile
	err := db.Preload("User").
		Where("status = ?", models.VendorStatusPending).
		Order("created_at DESC").Limit(limit).Find(&profiles).Error
	return profiles, err
}

func (r *vendorProfileRepository) CountByStatus(db *gorm.DB, status models.VendorStatus) (int64, error) {
	var count int64
	err := db.Model(&models.VendorProfile{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
