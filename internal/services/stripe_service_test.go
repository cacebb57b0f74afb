package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment_intents", r.URL.Path)

		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "sk_test_key", user)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "2500", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_456"}`))
	}))
	defer server.Close()

	svc := NewStripeService("sk_test_key", server.URL)

	secret, err := svc.CreatePaymentIntent(context.Background(), 2500)
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", secret)
}

func TestCreatePaymentIntentProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer server.Close()

	svc := NewStripeService("sk_test_key", server.URL)

	_, err := svc.CreatePaymentIntent(context.Background(), 2500)
	require.Error(t, err)
	assert.Equal(t, "Your card was declined.", err.Error())
}

func TestCreatePaymentIntentRejectsNonPositiveAmount(t *testing.T) {
	svc := NewStripeService("sk_test_key", "http://localhost:0")

	_, err := svc.CreatePaymentIntent(context.Background(), 0)
	require.Error(t, err)

	_, err = svc.CreatePaymentIntent(context.Background(), -100)
	require.Error(t, err)
}

func TestCreatePaymentIntentMissingClientSecret(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123"}`))
	}))
	defer server.Close()

	svc := NewStripeService("sk_test_key", server.URL)

	_, err := svc.CreatePaymentIntent(context.Background(), 2500)
	require.Error(t, err)
}
