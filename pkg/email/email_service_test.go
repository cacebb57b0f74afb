package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))

		var req SendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Adey <no-reply@adeymarket.com>", req.From)
		assert.Equal(t, []string{"owner@habesha-market.com"}, req.To)
		assert.Equal(t, "Welcome", req.Subject)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer server.Close()

	svc := NewEmailService("re_test_key", "Adey <no-reply@adeymarket.com>", server.URL)

	data, err := svc.Send(context.Background(), "owner@habesha-market.com", "Welcome", "<p>Hello</p>")
	require.NoError(t, err)
	assert.Equal(t, "email_123", data["id"])
}

func TestSendProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer server.Close()

	svc := NewEmailService("bad_key", "Adey <no-reply@adeymarket.com>", server.URL)

	_, err := svc.Send(context.Background(), "owner@habesha-market.com", "Welcome", "<p>Hello</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSendEmptyResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewEmailService("re_test_key", "Adey <no-reply@adeymarket.com>", server.URL)

	data, err := svc.Send(context.Background(), "owner@habesha-market.com", "Welcome", "<p>Hello</p>")
	require.NoError(t, err)
	assert.Empty(t, data)
}
