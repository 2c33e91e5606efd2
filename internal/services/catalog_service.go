package services

import (
	"artizia_backend/internal/models"
	"artizia_backend/internal/repositories"
	"artizia_backend/internal/services/dto"
	"artizia_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	productPageSize         = 20
	vendorPageSize          = 20
	vendorProductsPageSize  = 12
	categoryProductPageSize = 20

	dashboardFeaturedCount   = 8
	dashboardNewCount        = 8
	dashboardCategoriesCount = 6

	relatedProductsCount = 4
	vendorProductsCount  = 4
)

// CatalogService serves the public storefront: only active products and
// approved vendors are ever visible through it.
type CatalogService interface {
	Dashboard(db *gorm.DB) (*dto.CustomerDashboardResponse, error)
	ListProducts(db *gorm.DB, query *dto.ProductListQuery, page int) (*dto.Paginated, error)
	GetProduct(db *gorm.DB, slug string) (*dto.ProductDetailResponse, error)
	ListVendors(db *gorm.DB, search string, page int) (*dto.Paginated, error)
	GetVendor(db *gorm.DB, userID string, page int) (*dto.VendorDetailResponse, error)
	ListCategories(db *gorm.DB) ([]models.Category, error)
	GetCategory(db *gorm.DB, slug string, page int) (*dto.CategoryDetailResponse, error)
}

type catalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	vendorRepo   repositories.VendorProfileRepository
}

func NewCatalogService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	vendorRepo repositories.VendorProfileRepository,
) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		vendorRepo:   vendorRepo,
	}
}

func (s *catalogService) Dashboard(db *gorm.DB) (*dto.CustomerDashboardResponse, error) {
	featured, err := s.productRepo.FindFeatured(db, dashboardFeaturedCount)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	newest, err := s.productRepo.FindNewest(db, dashboardNewCount)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	categories, err := s.categoryRepo.ListActiveTopLevel(db, dashboardCategoriesCount)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.annotateProductCounts(db, categories); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CustomerDashboardResponse{
		FeaturedProducts: featured,
		NewProducts:      newest,
		Categories:       categories,
	}, nil
}

func (s *catalogService) ListProducts(db *gorm.DB, query *dto.ProductListQuery, page int) (*dto.Paginated, error) {
	active := true
	criteria := repositories.ProductFilter{
		CategoryID: query.Category,
		VendorID:   query.Vendor,
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		Search:     query.Search,
		IsActive:   &active,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
		Page:       page,
		PageSize:   productPageSize,
	}

	products, total, err := s.productRepo.FindWithFilter(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewPaginated(products, total, page, productPageSize), nil
}

func (s *catalogService) GetProduct(db *gorm.DB, slug string) (*dto.ProductDetailResponse, error) {
	product, err := s.productRepo.FindActiveBySlug(db, slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	related, err := s.productRepo.FindRelated(db, product.CategoryID, product.ID, relatedProductsCount)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	fromVendor, err := s.productRepo.FindMoreFromVendor(db, product.UserID, product.ID, vendorProductsCount)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProductDetailResponse{
		Product:         product,
		RelatedProducts: related,
		VendorProducts:  fromVendor,
	}, nil
}

func (s *catalogService) ListVendors(db *gorm.DB, search string, page int) (*dto.Paginated, error) {
	vendors, total, err := s.vendorRepo.FindApproved(db, search, page, vendorPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewPaginated(vendors, total, page, vendorPageSize), nil
}

func (s *catalogService) GetVendor(db *gorm.DB, userID string, page int) (*dto.VendorDetailResponse, error) {
	vendor, err := s.vendorRepo.FindApprovedByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVendorProfileNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	active := true
	products, total, err := s.productRepo.FindWithFilter(db, repositories.ProductFilter{
		VendorID: userID,
		IsActive: &active,
		Page:     page,
		PageSize: vendorProductsPageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats, err := s.productRepo.VendorCatalogStats(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.VendorDetailResponse{
		Vendor:   vendor,
		Products: dto.NewPaginated(products, total, page, vendorProductsPageSize),
		Stats:    stats,
	}, nil
}

func (s *catalogService) ListCategories(db *gorm.DB) ([]models.Category, error) {
	categories, err := s.categoryRepo.ListActiveTopLevel(db, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.annotateProductCounts(db, categories); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *catalogService) GetCategory(db *gorm.DB, slug string, page int) (*dto.CategoryDetailResponse, error) {
	category, err := s.categoryRepo.FindActiveBySlug(db, slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Products in the category itself or any of its direct children.
	childIDs, err := s.categoryRepo.ChildIDs(db, category.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	categoryIDs := append([]string{category.ID}, childIDs...)

	active := true
	products, total, err := s.productRepo.FindWithFilter(db, repositories.ProductFilter{
		CategoryIDs: categoryIDs,
		IsActive:    &active,
		Page:        page,
		PageSize:    categoryProductPageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CategoryDetailResponse{
		Category: category,
		Products: dto.NewPaginated(products, total, page, categoryProductPageSize),
	}, nil
}

// annotateProductCounts fills the transient ProductCount on the given
// categories and their preloaded children (active products only).
func (s *catalogService) annotateProductCounts(db *gorm.DB, categories []models.Category) error {
	ids := make([]string, 0, len(categories))
	for i := range categories {
		ids = append(ids, categories[i].ID)
		for j := range categories[i].Children {
			ids = append(ids, categories[i].Children[j].ID)
		}
	}

	counts, err := s.categoryRepo.ActiveProductCounts(db, ids)
	if err != nil {
		return err
	}

	for i := range categories {
		categories[i].ProductCount = counts[categories[i].ID]
		for j := range categories[i].Children {
			categories[i].Children[j].ProductCount = counts[categories[i].Children[j].ID]
		}
	}
	return nil
}
