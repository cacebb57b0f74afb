package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// EmailSender is satisfied by email.EmailService.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) (map[string]interface{}, error)
}

type EmailHandler struct {
	emailService EmailSender
}

func NewEmailHandler(emailService EmailSender) *EmailHandler {
	return &EmailHandler{
		emailService: emailService,
	}
}

// RegisterRoutes registers the registration notification endpoint. The
// storefront calls it at the server root, outside the versioned API group.
func (h *EmailHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/email-veri", h.SendRegistrationNotification)
}

type emailVerificationRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// SendRegistrationNotification godoc
// @Summary Send a registration confirmation email
// @Description Email a new business customer that their application was received
// @Tags email
// @Accept json
// @Produce json
// @Param request body emailVerificationRequest true "Recipient data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /email-veri [post]
func (h *EmailHandler) SendRegistrationNotification(c *gin.Context) {
	var req emailVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or full_name"})
		return
	}

	subject := "Welcome to Adey International Market"
	html := fmt.Sprintf(`<p>Dear %s,</p>
<p>Thank you for registering your business with Adey International Market.
Your application is being reviewed; we will notify you as soon as your
account is approved for ordering.</p>
<p>Warm regards,<br/>The Adey International Market team</p>`, req.FullName)

	data, err := h.emailService.Send(c.Request.Context(), req.Email, subject, html)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
