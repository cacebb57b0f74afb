package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"adey-market-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubApprovals struct {
	approved map[string]bool
}

func (s *stubApprovals) IsApproved(ctx context.Context, userID string) (bool, error) {
	return s.approved[userID], nil
}

func newGateRouter(t *testing.T) (*gin.Engine, *auth.JWTManager, *stubApprovals) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := auth.NewJWTManager("test-secret", 1, 30)
	approvals := &stubApprovals{approved: make(map[string]bool)}
	mw := NewAuthMiddleware(jwtManager, approvals)

	router := gin.New()
	router.GET("/cart", mw.AuthRequired(), mw.ApprovedCustomerRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})
	router.GET("/admin", mw.AuthRequired(), mw.AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, jwtManager, approvals
}

func doGet(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	router, _, _ := newGateRouter(t)

	assert.Equal(t, http.StatusUnauthorized, doGet(router, "/cart", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(router, "/cart", "not-a-jwt").Code)
}

func TestApprovedCustomerRequired(t *testing.T) {
	router, jwtManager, approvals := newGateRouter(t)

	userID := "8f14e45f-ceea-467f-a1d9-6c5c1e2f0001"
	pair, err := jwtManager.GenerateTokenPair(userID, "customer", "owner@habesha-market.com")
	require.NoError(t, err)

	// Pending customers are turned away before the handler runs
	assert.Equal(t, http.StatusForbidden, doGet(router, "/cart", pair.AccessToken).Code)

	approvals.approved[userID] = true
	assert.Equal(t, http.StatusOK, doGet(router, "/cart", pair.AccessToken).Code)
}

func TestAdminBypassesApprovalGate(t *testing.T) {
	router, jwtManager, _ := newGateRouter(t)

	pair, err := jwtManager.GenerateTokenPair("admin-1", "admin", "admin@adeymarket.com")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doGet(router, "/cart", pair.AccessToken).Code)
	assert.Equal(t, http.StatusOK, doGet(router, "/admin", pair.AccessToken).Code)
}

func TestAdminRequiredRejectsCustomers(t *testing.T) {
	router, jwtManager, approvals := newGateRouter(t)

	userID := "8f14e45f-ceea-467f-a1d9-6c5c1e2f0002"
	approvals.approved[userID] = true
	pair, err := jwtManager.GenerateTokenPair(userID, "customer", "owner@habesha-market.com")
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doGet(router, "/admin", pair.AccessToken).Code)
}
