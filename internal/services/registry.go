package services

// ServiceContainer bundles the service layer for wiring in internal/app.
type ServiceContainer struct {
	AuthService    AuthService
	CatalogService CatalogService
	VendorService  VendorService
	AdminService   AdminService
}
