package routes

import (
	"net/http"

	"artizia_backend/internal/handlers"
	"artizia_backend/internal/middleware"
	"artizia_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts all HTTP routes. The surface lives at the root: the
// public storefront and auth endpoints are open, the role surfaces sit behind
// token + role middleware.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := router.Group("")
	{
		appHandlers.AuthHandler.RegisterPublicRoutes(root)
		appHandlers.CatalogHandler.RegisterPublicRoutes(root)
		appHandlers.FileHandler.RegisterRoutes(root)
	}

	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		appHandlers.AuthHandler.RegisterProtectedRoutes(authed)
	}

	customer := router.Group("/customer")
	customer.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleCustomer))
	{
		appHandlers.CatalogHandler.RegisterCustomerRoutes(customer)
	}

	vendor := router.Group("/vendor")
	vendor.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleVendor))
	{
		appHandlers.VendorHandler.RegisterRoutes(vendor)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
	{
		appHandlers.AdminHandler.RegisterRoutes(admin)
	}
}
