package handlers

import (
	"net/http"

	"artizia_backend/internal/services"
	"artizia_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler is the moderation surface.
type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
	rg.GET("/users", h.ListUsers)
	rg.GET("/vendors", h.ListVendors)
	rg.POST("/vendors/:id/approve", h.ApproveVendor)
	rg.POST("/vendors/:id/reject", h.RejectVendor)
	rg.GET("/products", h.ListProducts)
	rg.POST("/products/:id/toggle-status", h.ToggleProductStatus)
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	resp, err := h.adminService.Dashboard(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.AdminUserListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.adminService.ListUsers(h.GetDB(c), &query, ParsePage(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListVendors(c *gin.Context) {
	var query dto.AdminVendorListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.adminService.ListVendors(h.GetDB(c), &query, ParsePage(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ApproveVendor(c *gin.Context) {
	vendor, err := h.adminService.ApproveVendor(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vendor approved successfully",
		"vendor":  vendor,
	})
}

func (h *AdminHandler) RejectVendor(c *gin.Context) {
	vendor, err := h.adminService.RejectVendor(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vendor rejected",
		"vendor":  vendor,
	})
}

func (h *AdminHandler) ListProducts(c *gin.Context) {
	var query dto.AdminProductListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.adminService.ListProducts(h.GetDB(c), &query, ParsePage(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ToggleProductStatus(c *gin.Context) {
	product, message, err := h.adminService.ToggleProductStatus(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"product": product,
	})
}
