package handlers

import (
	"context"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PaymentIntentCreator is satisfied by services.StripeService.
type PaymentIntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amountMinor int64) (string, error)
}

type PaymentHandler struct {
	stripeService PaymentIntentCreator
}

func NewPaymentHandler(stripeService PaymentIntentCreator) *PaymentHandler {
	return &PaymentHandler{
		stripeService: stripeService,
	}
}

// RegisterRoutes registers the payment intent endpoint. The storefront calls
// it at the server root, outside the versioned API group.
func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/create-payment-intent", h.CreatePaymentIntent)
}

type createPaymentIntentRequest struct {
	Amount *float64 `json:"amount"`
}

// CreatePaymentIntent godoc
// @Summary Create a Stripe payment intent
// @Description Register a card payment for the given amount in cents and return the client secret
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body createPaymentIntentRequest true "Amount in cents"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req createPaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount == nil || *req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	clientSecret, err := h.stripeService.CreatePaymentIntent(c.Request.Context(), int64(math.Round(*req.Amount)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
