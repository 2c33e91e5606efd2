package services

import (
	"time"

	"artizia_backend/internal/models"
	"artizia_backend/internal/repositories"
	"artizia_backend/internal/services/dto"
	"artizia_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	adminUserPageSize    = 15
	adminVendorPageSize  = 15
	adminProductPageSize = 20

	adminRecentCount = 5
)

// AdminService is the moderation surface: platform stats, user and vendor
// listings, vendor approval and product visibility.
type AdminService interface {
	Dashboard(db *gorm.DB) (*dto.AdminDashboardResponse, error)
	ListUsers(db *gorm.DB, query *dto.AdminUserListQuery, page int) (*dto.Paginated, error)
	ListVendors(db *gorm.DB, query *dto.AdminVendorListQuery, page int) (*dto.Paginated, error)
	ApproveVendor(db *gorm.DB, vendorID string) (*models.VendorProfile, error)
	RejectVendor(db *gorm.DB, vendorID string) (*models.VendorProfile, error)
	ListProducts(db *gorm.DB, query *dto.AdminProductListQuery, page int) (*dto.Paginated, error)
	ToggleProductStatus(db *gorm.DB, productID string) (*models.Product, string, error)
}

type adminService struct {
	userRepo     repositories.UserRepository
	vendorRepo   repositories.VendorProfileRepository
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	vendorRepo repositories.VendorProfileRepository,
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
) AdminService {
	return &adminService{
		userRepo:     userRepo,
		vendorRepo:   vendorRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *adminService) Dashboard(db *gorm.DB) (*dto.AdminDashboardResponse, error) {
	stats := &dto.AdminStats{}
	var err error

	if stats.TotalUsers, err = s.userRepo.CountAll(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalVendors, err = s.userRepo.CountByRole(db, models.RoleVendor); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalCustomers, err = s.userRepo.CountByRole(db, models.RoleCustomer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalProducts, err = s.productRepo.CountAll(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ActiveProducts, err = s.productRepo.CountActive(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalCategories, err = s.categoryRepo.CountAll(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PendingVendors, err = s.vendorRepo.CountByStatus(db, models.VendorStatusPending); err != nil {
		return nil, apperrors.InternalError(err)
	}

	recentUsers, err := s.userRepo.FindRecent(db, adminRecentCount)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	recentProducts, err := s.productRepo.FindRecent(db, adminRecentCount)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	pendingVendors, err := s.vendorRepo.FindRecentPending(db, adminRecentCount)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdminDashboardResponse{
		Stats:          stats,
		RecentUsers:    recentUsers,
		RecentProducts: recentProducts,
		PendingVendors: pendingVendors,
	}, nil
}

func (s *adminService) ListUsers(db *gorm.DB, query *dto.AdminUserListQuery, page int) (*dto.Paginated, error) {
	users, total, err := s.userRepo.FindWithFilter(db, repositories.UserFilter{
		Role:     models.RoleName(query.Role),
		Search:   query.Search,
		Page:     page,
		PageSize: adminUserPageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewPaginated(users, total, page, adminUserPageSize), nil
}

func (s *adminService) ListVendors(db *gorm.DB, query *dto.AdminVendorListQuery, page int) (*dto.Paginated, error) {
	vendors, total, err := s.vendorRepo.FindWithFilter(db, repositories.VendorFilter{
		Status:   models.VendorStatus(query.Status),
		Search:   query.Search,
		Page:     page,
		PageSize: adminVendorPageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewPaginated(vendors, total, page, adminVendorPageSize), nil
}

// ApproveVendor marks the profile approved and stamps approved_at. The
// transition is allowed from any status, matching the moderation UI which
// lets admins re-approve a rejected vendor.
func (s *adminService) ApproveVendor(db *gorm.DB, vendorID string) (*models.VendorProfile, error) {
	now := time.Now()
	if err := s.vendorRepo.UpdateStatus(db, vendorID, models.VendorStatusApproved, &now); err != nil {
		if apperrors.Is(err, repositories.ErrVendorProfileNotFound) {
			return nil, apperrors.ErrVendorProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return s.loadVendor(db, vendorID)
}

// RejectVendor sets status only; an earlier approved_at stays in place as an
// audit trace.
func (s *adminService) RejectVendor(db *gorm.DB, vendorID string) (*models.VendorProfile, error) {
	if err := s.vendorRepo.UpdateStatus(db, vendorID, models.VendorStatusRejected, nil); err != nil {
		if apperrors.Is(err, repositories.ErrVendorProfileNotFound) {
			return nil, apperrors.ErrVendorProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return s.loadVendor(db, vendorID)
}

func (s *adminService) ListProducts(db *gorm.DB, query *dto.AdminProductListQuery, page int) (*dto.Paginated, error) {
	criteria := repositories.ProductFilter{
		CategoryID:    query.Category,
		VendorID:      query.Vendor,
		NameSKUSearch: query.Search,
		Page:          page,
		PageSize:      adminProductPageSize,
	}

	if query.Status != "" {
		active := query.Status == "active"
		criteria.IsActive = &active
	}

	products, total, err := s.productRepo.FindWithFilter(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewPaginated(products, total, page, adminProductPageSize), nil
}

// ToggleProductStatus flips the active flag and returns the product with a
// human message describing the new state.
func (s *adminService) ToggleProductStatus(db *gorm.DB, productID string) (*models.Product, string, error) {
	product, err := s.productRepo.FindByID(db, productID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, "", apperrors.ErrProductNotFound
		}
		return nil, "", apperrors.InternalError(err)
	}

	newState := !product.IsActive
	if err := s.productRepo.UpdateActive(db, product.ID, newState); err != nil {
		return nil, "", apperrors.InternalError(err)
	}
	product.IsActive = newState

	message := "Product deactivated"
	if newState {
		message = "Product activated"
	}
	return product, message, nil
}

func (s *adminService) loadVendor(db *gorm.DB, vendorID string) (*models.VendorProfile, error) {
	vendor, err := s.vendorRepo.FindByID(db, vendorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return vendor, nil
}
