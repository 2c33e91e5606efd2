package services

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"artizia_backend/internal/config"
	"artizia_backend/internal/logger"
	"artizia_backend/internal/models"
	"artizia_backend/internal/repositories"
	"artizia_backend/internal/services/dto"
	"artizia_backend/internal/storage"
	"artizia_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	vendorListPageSize = 20

	dashboardRecentCount   = 5
	dashboardLowStockCount = 5
)

// VendorService covers the authenticated vendor surface: dashboard, own
// catalog management and the business profile.
type VendorService interface {
	Dashboard(db *gorm.DB, userID string) (*dto.VendorDashboardResponse, error)
	ListProducts(db *gorm.DB, userID string, query *dto.VendorProductListQuery, page int) (*dto.Paginated, error)
	CreateProduct(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateProductRequest, images []*multipart.FileHeader) (*models.Product, error)
	GetProduct(db *gorm.DB, userID, productID string) (*models.Product, error)
	UpdateProduct(db *gorm.DB, userID, productID string, req *dto.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, db *gorm.DB, userID, productID string) error
	ListCategories(db *gorm.DB) ([]models.Category, error)
	GetProfile(db *gorm.DB, userID string) (*models.VendorProfile, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateVendorProfileRequest) (*models.VendorProfile, error)
}

type vendorService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	vendorRepo   repositories.VendorProfileRepository
	store        storage.Storage
}

func NewVendorService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	vendorRepo repositories.VendorProfileRepository,
	store storage.Storage,
) VendorService {
	return &vendorService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		vendorRepo:   vendorRepo,
		store:        store,
	}
}

func (s *vendorService) Dashboard(db *gorm.DB, userID string) (*dto.VendorDashboardResponse, error) {
	stats, err := s.productRepo.VendorDashboardStats(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	recent, err := s.productRepo.FindRecentByVendor(db, userID, dashboardRecentCount)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	lowStock, err := s.productRepo.FindLowStockByVendor(db, userID, dashboardLowStockCount)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.vendorRepo.FindByUserID(db, userID)
	if err != nil && !apperrors.Is(err, repositories.ErrVendorProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	return &dto.VendorDashboardResponse{
		Stats:            stats,
		RecentProducts:   recent,
		LowStockProducts: lowStock,
		VendorProfile:    profile,
	}, nil
}

func (s *vendorService) ListProducts(db *gorm.DB, userID string, query *dto.VendorProductListQuery, page int) (*dto.Paginated, error) {
	criteria := repositories.ProductFilter{
		VendorID:      userID,
		CategoryID:    query.Category,
		NameSKUSearch: query.Search,
		Page:          page,
		PageSize:      vendorListPageSize,
	}

	if query.Status != "" {
		active := query.Status == "active"
		criteria.IsActive = &active
	}

	products, total, err := s.productRepo.FindWithFilter(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewPaginated(products, total, page, vendorListPageSize), nil
}

func (s *vendorService) CreateProduct(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateProductRequest, images []*multipart.FileHeader) (*models.Product, error) {
	if err := s.checkCrossFieldRules(req.Price, req.ComparePrice, req.MinOrderQuantity, req.MaxOrderQuantity); err != nil {
		return nil, err
	}
	if err := s.checkCategory(db, req.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkSKU(db, req.SKU, ""); err != nil {
		return nil, err
	}
	if err := s.checkImages(images); err != nil {
		return nil, err
	}

	productSlug, err := s.uniqueSlug(db, req.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	minQty := 1
	if req.MinOrderQuantity != nil {
		minQty = *req.MinOrderQuantity
	}

	product := &models.Product{
		UserID:            userID,
		CategoryID:        req.CategoryID,
		Name:              req.Name,
		Slug:              productSlug,
		Description:       req.Description,
		ShortDescription:  req.ShortDescription,
		Price:             req.Price,
		ComparePrice:      req.ComparePrice,
		SKU:               normalizeSKU(req.SKU),
		InventoryQuantity: req.InventoryQuantity,
		MinOrderQuantity:  minQty,
		MaxOrderQuantity:  req.MaxOrderQuantity,
		Weight:            req.Weight,
		Dimensions:        encodeDimensions(req.DimensionLength, req.DimensionWidth, req.DimensionHeight),
		IsActive:          true,
		IsFeatured:        req.IsFeatured,
		MetaTitle:         req.MetaTitle,
		MetaDescription:   req.MetaDescription,
	}

	// Files land in storage first; the rows follow in one transaction. A
	// failed transaction leaves orphan files behind, which is acceptable for
	// uploads (they are unreachable without rows).
	imageRows, err := s.storeImages(ctx, req.Name, images)
	if err != nil {
		return nil, err
	}
	product.Images = imageRows

	if err := s.productRepo.Create(db, product); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.productRepo.FindByID(db, product.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return created, nil
}

func (s *vendorService) GetProduct(db *gorm.DB, userID, productID string) (*models.Product, error) {
	return s.findOwnedProduct(db, userID, productID)
}

func (s *vendorService) UpdateProduct(db *gorm.DB, userID, productID string, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.findOwnedProduct(db, userID, productID)
	if err != nil {
		return nil, err
	}

	if err := s.checkCrossFieldRules(req.Price, req.ComparePrice, req.MinOrderQuantity, req.MaxOrderQuantity); err != nil {
		return nil, err
	}
	if err := s.checkCategory(db, req.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkSKU(db, req.SKU, product.ID); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.CategoryID = req.CategoryID
	product.Description = req.Description
	product.ShortDescription = req.ShortDescription
	product.Price = req.Price
	product.ComparePrice = req.ComparePrice
	product.SKU = normalizeSKU(req.SKU)
	product.InventoryQuantity = req.InventoryQuantity
	if req.MinOrderQuantity != nil {
		product.MinOrderQuantity = *req.MinOrderQuantity
	}
	product.MaxOrderQuantity = req.MaxOrderQuantity
	product.Weight = req.Weight
	if req.Dimensions != nil {
		product.Dimensions = encodeDimensions(req.Dimensions.Length, req.Dimensions.Width, req.Dimensions.Height)
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	product.MetaTitle = req.MetaTitle
	product.MetaDescription = req.MetaDescription

	if err := s.productRepo.Update(db, product); err != nil {
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.productRepo.FindByID(db, product.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *vendorService) DeleteProduct(ctx context.Context, db *gorm.DB, userID, productID string) error {
	product, err := s.findOwnedProduct(db, userID, productID)
	if err != nil {
		return err
	}

	// Stored files go first, best effort; a leftover file is harmless once
	// the rows are gone.
	for _, image := range product.Images {
		if err := s.store.Delete(ctx, image.ImagePath); err != nil {
			logger.CtxWarn(ctx, "failed to delete product image file",
				"path", image.ImagePath, "error", err.Error())
		}
	}

	if err := s.productRepo.Delete(db, product); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *vendorService) ListCategories(db *gorm.DB) ([]models.Category, error) {
	categories, err := s.categoryRepo.ListActiveTopLevel(db, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *vendorService) GetProfile(db *gorm.DB, userID string) (*models.VendorProfile, error) {
	profile, err := s.vendorRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVendorProfileNotFound) {
			return nil, apperrors.ErrVendorProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *vendorService) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateVendorProfileRequest) (*models.VendorProfile, error) {
	profile, err := s.vendorRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVendorProfileNotFound) {
			return nil, apperrors.ErrVendorProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	profile.BusinessName = req.BusinessName
	profile.BusinessDescription = req.BusinessDescription
	profile.BusinessAddress = req.BusinessAddress
	profile.BusinessPhone = req.BusinessPhone
	profile.BusinessEmail = req.BusinessEmail

	if err := s.vendorRepo.Update(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// --- Helpers ---

// findOwnedProduct loads the product and enforces ownership: a missing id is
// 404, someone else's product is 403.
func (s *vendorService) findOwnedProduct(db *gorm.DB, userID, productID string) (*models.Product, error) {
	product, err := s.productRepo.FindByID(db, productID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if product.UserID != userID {
		return nil, apperrors.ErrProductNotOwned
	}
	return product, nil
}

func (s *vendorService) checkCrossFieldRules(price float64, comparePrice *float64, minQty, maxQty *int) error {
	details := make(map[string]string)

	if comparePrice != nil && *comparePrice <= price {
		details["compare_price"] = "Must be greater than price"
	}

	effectiveMin := 1
	if minQty != nil {
		effectiveMin = *minQty
	}
	if maxQty != nil && *maxQty <= effectiveMin {
		details["max_order_quantity"] = "Must be greater than min_order_quantity"
	}

	if len(details) > 0 {
		return apperrors.ValidationError(details)
	}
	return nil
}

func (s *vendorService) checkCategory(db *gorm.DB, categoryID string) error {
	exists, err := s.categoryRepo.ExistsByID(db, categoryID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !exists {
		return apperrors.ValidationError(map[string]string{
			"category_id": "The selected category does not exist",
		})
	}
	return nil
}

func (s *vendorService) checkSKU(db *gorm.DB, sku *string, excludeID string) error {
	normalized := normalizeSKU(sku)
	if normalized == nil {
		return nil
	}

	taken, err := s.productRepo.ExistsBySKU(db, *normalized, excludeID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if taken {
		return apperrors.ErrSKUAlreadyExists
	}
	return nil
}

func (s *vendorService) checkImages(images []*multipart.FileHeader) error {
	cfg := config.GetConfig()

	if len(images) > cfg.Upload.MaxImages {
		return apperrors.ErrTooManyImages
	}

	for _, header := range images {
		if header.Size > cfg.Upload.MaxSize {
			return apperrors.ErrImageTooLarge
		}
		if !allowedImageType(header.Header.Get("Content-Type"), cfg.Upload.AllowedTypes) {
			return apperrors.ErrInvalidImageType
		}
	}
	return nil
}

func allowedImageType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.EqualFold(contentType, t) {
			return true
		}
	}
	return false
}

// storeImages uploads the files and returns the rows to attach. First image
// becomes primary, sort order follows upload order, alt text is the product
// name (matching the storefront expectations).
func (s *vendorService) storeImages(ctx context.Context, productName string, images []*multipart.FileHeader) ([]models.ProductImage, error) {
	rows := make([]models.ProductImage, 0, len(images))

	for index, header := range images {
		file, err := header.Open()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		ext := strings.ToLower(filepath.Ext(header.Filename))
		path := fmt.Sprintf("products/%s%s", uuid.NewString(), ext)

		err = s.store.Save(ctx, path, file, header.Header.Get("Content-Type"))
		file.Close()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		rows = append(rows, models.ProductImage{
			ImagePath: path,
			AltText:   productName,
			SortOrder: index,
			IsPrimary: index == 0,
		})
	}

	return rows, nil
}

// uniqueSlug derives a URL slug from the name, suffixing -2, -3, ... until
// it is free.
func (s *vendorService) uniqueSlug(db *gorm.DB, name string) (string, error) {
	base := slug.Make(name)
	candidate := base

	for i := 2; ; i++ {
		taken, err := s.productRepo.ExistsBySlug(db, candidate, "")
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func normalizeSKU(sku *string) *string {
	if sku == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*sku)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func encodeDimensions(length, width, height *float64) datatypes.JSON {
	if length == nil && width == nil && height == nil {
		return nil
	}

	payload := map[string]*float64{
		"length": length,
		"width":  width,
		"height": height,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
