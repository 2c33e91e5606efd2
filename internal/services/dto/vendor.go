package dto

import (
	"artizia_backend/internal/models"
	"artizia_backend/internal/repositories"
)

type UpdateVendorProfileRequest struct {
	BusinessName        string `json:"business_name" validate:"required,max=255"`
	BusinessDescription string `json:"business_description"`
	BusinessAddress     string `json:"business_address"`
	BusinessPhone       string `json:"business_phone" validate:"omitempty,max=20"`
	BusinessEmail       string `json:"business_email" validate:"omitempty,email,max=255"`
}

type VendorDashboardResponse struct {
	Stats            *repositories.VendorDashboardStats `json:"stats"`
	RecentProducts   []models.Product                   `json:"recent_products"`
	LowStockProducts []models.Product                   `json:"low_stock_products"`
	VendorProfile    *models.VendorProfile              `json:"vendor_profile"`
}
