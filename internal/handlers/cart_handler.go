package handlers

import (
	"net/http"

	"adey-market-backend/internal/middleware"
	"adey-market-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService CartServiceInterface
}

func NewCartHandler(cartService CartServiceInterface) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// RegisterRoutes registers the routes for cart management
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	// Cart routes require authentication and an approved business account
	cart := router.Group("/cart", authMiddleware.AuthRequired(), authMiddleware.ApprovedCustomerRequired())
	{
		// Get the user's cart
		cart.GET("", h.GetCart)
		// Add item to cart
		cart.POST("/items", h.AddItem)
		// Update cart item quantity
		cart.PUT("/items/:product_id", h.UpdateQuantity)
		// Remove item from cart
		cart.DELETE("/items/:product_id", h.RemoveItem)
		// Clear cart
		cart.DELETE("", h.ClearCart)
		// Get bill summary
		cart.GET("/bill-summary", h.GetBillSummary)
		// Checkout cart
		cart.POST("/checkout", h.Checkout)
	}
}

// GetCart godoc
// @Summary Get user's cart
// @Description Get current user's cart with line items and totals
// @Tags cart
// @Accept json
// @Produce json
// @Success 200 {object} services.CartResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	c.JSON(http.StatusOK, h.cartService.GetCart(c.Request.Context(), userID))
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add a catalog product to the cart, merging with an existing line
// @Tags cart
// @Accept json
// @Produce json
// @Param item body services.AddItemRequest true "Cart item data"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req services.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Failed to add item to cart",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// UpdateQuantity godoc
// @Summary Update cart item quantity
// @Description Set the quantity of a cart line; zero or negative removes it
// @Tags cart
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Param item body services.UpdateItemRequest true "Update item data"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{product_id} [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID := c.Param("product_id")

	var req services.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	cart := h.cartService.UpdateQuantity(c.Request.Context(), userID, productID, req.Quantity)
	c.JSON(http.StatusOK, cart)
}

// RemoveItem godoc
// @Summary Remove item from cart
// @Description Remove a product's line from the cart; absent products are a no-op
// @Tags cart
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} services.CartResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Param("product_id")

	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	cart := h.cartService.RemoveItem(c.Request.Context(), userID, productID)
	c.JSON(http.StatusOK, cart)
}

// ClearCart godoc
// @Summary Clear user's cart
// @Description Remove all items from user's cart
// @Tags cart
// @Accept json
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	h.cartService.ClearCart(c.Request.Context(), userID)
	c.Status(http.StatusNoContent)
}

// GetBillSummary godoc
// @Summary Get bill summary for cart
// @Description Get the cart subtotal with estimated tax and order total
// @Tags cart
// @Accept json
// @Produce json
// @Success 200 {object} services.BillSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/bill-summary [get]
func (h *CartHandler) GetBillSummary(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	billSummary, err := h.cartService.GetBillSummary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Failed to get bill summary",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, billSummary)
}

// Checkout godoc
// @Summary Checkout cart
// @Description Create order and payment records for the cart; clears it on success
// @Tags cart
// @Accept json
// @Produce json
// @Success 200 {object} services.CheckoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	checkoutResponse, err := h.cartService.Checkout(c.Request.Context(), userID)
	if err != nil {
		if err.Error() == "cart is empty" {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Failed to checkout",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to checkout",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, checkoutResponse)
}
