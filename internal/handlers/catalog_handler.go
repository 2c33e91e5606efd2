package handlers

import (
	"net/http"

	"artizia_backend/internal/services"
	"artizia_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public storefront plus the authenticated
// customer dashboard.
type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:slug", h.GetProduct)
	rg.GET("/vendors", h.ListVendors)
	rg.GET("/vendors/:id", h.GetVendor)
	rg.GET("/categories", h.ListCategories)
	rg.GET("/categories/:slug", h.GetCategory)
}

func (h *CatalogHandler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
}

func (h *CatalogHandler) Dashboard(c *gin.Context) {
	resp, err := h.catalogService.Dashboard(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var query dto.ProductListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.catalogService.ListProducts(h.GetDB(c), &query, ParsePage(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	resp, err := h.catalogService.GetProduct(h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ListVendors(c *gin.Context) {
	var query dto.VendorListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.catalogService.ListVendors(h.GetDB(c), query.Search, ParsePage(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetVendor(c *gin.Context) {
	resp, err := h.catalogService.GetVendor(h.GetDB(c), c.Param("id"), ParsePage(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	resp, err := h.catalogService.GetCategory(h.GetDB(c), c.Param("slug"), ParsePage(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
