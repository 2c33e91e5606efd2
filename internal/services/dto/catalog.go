package dto

import (
	"artizia_backend/internal/models"
	"artizia_backend/internal/repositories"
)

type ProductListQuery struct {
	Category  string   `form:"category"`
	Vendor    string   `form:"vendor"`
	MinPrice  *float64 `form:"min_price" validate:"omitempty,gte=0"`
	MaxPrice  *float64 `form:"max_price" validate:"omitempty,gte=0"`
	Search    string   `form:"search"`
	SortBy    string   `form:"sort_by"`
	SortOrder string   `form:"sort_order" validate:"omitempty,oneof=asc desc"`
}

type VendorListQuery struct {
	Search string `form:"search"`
}

// CustomerDashboardResponse is the storefront landing payload.
type CustomerDashboardResponse struct {
	FeaturedProducts []models.Product  `json:"featured_products"`
	NewProducts      []models.Product  `json:"new_products"`
	Categories       []models.Category `json:"categories"`
}

type ProductDetailResponse struct {
	Product         *models.Product  `json:"product"`
	RelatedProducts []models.Product `json:"related_products"`
	VendorProducts  []models.Product `json:"vendor_products"`
}

type VendorDetailResponse struct {
	Vendor   *models.VendorProfile            `json:"vendor"`
	Products *Paginated                       `json:"products"`
	Stats    *repositories.VendorCatalogStats `json:"stats"`
}

type CategoryDetailResponse struct {
	Category *models.Category `json:"category"`
	Products *Paginated       `json:"products"`
}
