package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmailSender struct {
	data map[string]interface{}
	err  error
	sent []string
}

func (s *stubEmailSender) Send(ctx context.Context, to, subject, html string) (map[string]interface{}, error) {
	s.sent = append(s.sent, to)
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func newEmailRouter(sender EmailSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewEmailHandler(sender).RegisterRoutes(router.Group(""))
	return router
}

func TestEmailVerificationEndpoint(t *testing.T) {
	sender := &stubEmailSender{data: map[string]interface{}{"id": "email_123"}}
	router := newEmailRouter(sender)

	w := postJSON(t, router, "/email-veri", `{"email":"owner@habesha-market.com","full_name":"Almaz Bekele"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "email_123", data["id"])

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "owner@habesha-market.com", sender.sent[0])
}

func TestEmailVerificationMissingFields(t *testing.T) {
	sender := &stubEmailSender{}
	router := newEmailRouter(sender)

	for _, body := range []string{
		`{}`,
		`{"email":"owner@habesha-market.com"}`,
		`{"full_name":"Almaz Bekele"}`,
		`{"email":"","full_name":""}`,
		`not json`,
	} {
		w := postJSON(t, router, "/email-veri", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Missing email or full_name", resp["error"])
	}
	assert.Empty(t, sender.sent, "invalid requests must not reach the provider")
}

func TestEmailVerificationProviderFailure(t *testing.T) {
	sender := &stubEmailSender{err: errors.New("provider unreachable")}
	router := newEmailRouter(sender)

	w := postJSON(t, router, "/email-veri", `{"email":"owner@habesha-market.com","full_name":"Almaz Bekele"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to send email", resp["error"])
}
