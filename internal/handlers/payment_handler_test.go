package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIntentCreator struct {
	clientSecret string
	err          error
	amounts      []int64
}

func (s *stubIntentCreator) CreatePaymentIntent(ctx context.Context, amountMinor int64) (string, error) {
	s.amounts = append(s.amounts, amountMinor)
	if s.err != nil {
		return "", s.err
	}
	return s.clientSecret, nil
}

func newPaymentRouter(creator PaymentIntentCreator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewPaymentHandler(creator).RegisterRoutes(router.Group(""))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreatePaymentIntentEndpoint(t *testing.T) {
	creator := &stubIntentCreator{clientSecret: "pi_123_secret_456"}
	router := newPaymentRouter(creator)

	w := postJSON(t, router, "/create-payment-intent", `{"amount": 2500}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_123_secret_456", resp["clientSecret"])
	require.Len(t, creator.amounts, 1)
	assert.Equal(t, int64(2500), creator.amounts[0])
}

func TestCreatePaymentIntentInvalidAmount(t *testing.T) {
	creator := &stubIntentCreator{clientSecret: "unused"}
	router := newPaymentRouter(creator)

	for _, body := range []string{
		`{}`,
		`{"amount": 0}`,
		`{"amount": -5}`,
		`{"amount": "abc"}`,
		`not json`,
	} {
		w := postJSON(t, router, "/create-payment-intent", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid amount", resp["error"])
	}
	assert.Empty(t, creator.amounts, "invalid requests must not reach the provider")
}

func TestCreatePaymentIntentProviderFailure(t *testing.T) {
	creator := &stubIntentCreator{err: errors.New("Your card was declined.")}
	router := newPaymentRouter(creator)

	w := postJSON(t, router, "/create-payment-intent", `{"amount": 2500}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Your card was declined.", resp["error"])
}

func TestCreatePaymentIntentRoundsFractionalCents(t *testing.T) {
	creator := &stubIntentCreator{clientSecret: "pi_1_secret"}
	router := newPaymentRouter(creator)

	w := postJSON(t, router, "/create-payment-intent", `{"amount": 2499.6}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, creator.amounts, 1)
	assert.Equal(t, int64(2500), creator.amounts[0])
}
