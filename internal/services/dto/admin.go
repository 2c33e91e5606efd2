package dto

import "artizia_backend/internal/models"

type AdminStats struct {
	TotalUsers      int64 `json:"total_users"`
	TotalVendors    int64 `json:"total_vendors"`
	TotalCustomers  int64 `json:"total_customers"`
	TotalProducts   int64 `json:"total_products"`
	ActiveProducts  int64 `json:"active_products"`
	TotalCategories int64 `json:"total_categories"`
	PendingVendors  int64 `json:"pending_vendors"`
}

type AdminDashboardResponse struct {
	Stats          *AdminStats            `json:"stats"`
	RecentUsers    []models.User          `json:"recent_users"`
	RecentProducts []models.Product       `json:"recent_products"`
	PendingVendors []models.VendorProfile `json:"pending_vendors"`
}

type AdminUserListQuery struct {
	Role   string `form:"role" validate:"omitempty,oneof=admin vendor customer"`
	Search string `form:"search"`
}

type AdminVendorListQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=pending approved rejected"`
	Search string `form:"search"`
}

type AdminProductListQuery struct {
	Category string `form:"category"`
	Vendor   string `form:"vendor"`
	Status   string `form:"status" validate:"omitempty,oneof=active inactive"`
	Search   string `form:"search"`
}
