package handlers

import (
	"net/http"
	"strconv"

	"adey-market-backend/internal/middleware"
	"adey-market-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	approvalService *services.ApprovalService
}

func NewAdminHandler(approvalService *services.ApprovalService) *AdminHandler {
	return &AdminHandler{
		approvalService: approvalService,
	}
}

// RegisterRoutes registers the routes for customer approval management
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	admin := router.Group("/admin/customers", authMiddleware.AuthRequired(), authMiddleware.AdminRequired())
	{
		admin.GET("", h.ListCustomers)
		admin.POST("/:id/approve", h.ApproveCustomer)
		admin.POST("/:id/reject", h.RejectCustomer)
	}
}

// ListCustomers godoc
// @Summary List business customers
// @Description List customer applications, filtered by approval status
// @Tags admin
// @Accept json
// @Produce json
// @Param status query string false "Approval status" default(pending)
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} services.CustomerListResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/customers [get]
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	status := c.DefaultQuery("status", "pending")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	resp, err := h.approvalService.ListCustomers(c.Request.Context(), status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list customers",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ApproveCustomer godoc
// @Summary Approve a customer
// @Description Approve a pending business customer and notify them by email
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 404 {object} ErrorResponse
// @Router /admin/customers/{id}/approve [post]
func (h *AdminHandler) ApproveCustomer(c *gin.Context) {
	adminID := middleware.GetUserID(c)

	customer, err := h.approvalService.Approve(c.Request.Context(), c.Param("id"), adminID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Failed to approve customer",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// RejectCustomer godoc
// @Summary Reject a customer
// @Description Reject a pending business customer application
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 404 {object} ErrorResponse
// @Router /admin/customers/{id}/reject [post]
func (h *AdminHandler) RejectCustomer(c *gin.Context) {
	adminID := middleware.GetUserID(c)

	customer, err := h.approvalService.Reject(c.Request.Context(), c.Param("id"), adminID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Failed to reject customer",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, customer)
}
