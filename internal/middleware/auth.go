package middleware

import (
	"context"
	"net/http"
	"strings"

	"adey-market-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// ApprovalChecker answers whether a user's business account has been
// approved. Implemented by services.ApprovalService.
type ApprovalChecker interface {
	IsApproved(ctx context.Context, userID string) (bool, error)
}

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	approvals  ApprovalChecker
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, approvals ApprovalChecker) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager, approvals: approvals}
}

// AuthRequired middleware validates JWT token
func (a *AuthMiddleware) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := a.jwtManager.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		// Set user information in context
		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// ApprovedCustomerRequired ensures the business account behind the token has
// been approved by an admin. Admins pass through; pending and rejected
// customers are turned away before any cart or checkout route runs.
func (a *AuthMiddleware) ApprovedCustomerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) == "admin" {
			c.Next()
			return
		}

		userID := GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found"})
			c.Abort()
			return
		}

		approved, err := a.approvals.IsApproved(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify account status"})
			c.Abort()
			return
		}
		if !approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account pending approval"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RoleRequired middleware checks if user has required role
func (a *AuthMiddleware) RoleRequired(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role information missing"})
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, requiredRole := range requiredRoles {
			if userRole == requiredRole {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		c.Abort()
	}
}

// AdminRequired middleware ensures user is an admin
func (a *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return a.RoleRequired("admin")
}

// GetUserID helper function to extract user ID from context
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get("user_id"); exists {
		return userID.(string)
	}
	return ""
}

// GetUserRole helper function to extract user role from context
func GetUserRole(c *gin.Context) string {
	if role, exists := c.Get("role"); exists {
		return role.(string)
	}
	return ""
}
