package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	CatalogHandler *CatalogHandler
	VendorHandler  *VendorHandler
	AdminHandler   *AdminHandler
	FileHandler    *FileHandler
}
