package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StripeService creates payment intents against the Stripe HTTP API. The
// returned client secret is handed to the browser, which confirms the
// payment with Stripe directly.
type StripeService struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewStripeService(secretKey, baseURL string) *StripeService {
	return &StripeService{
		secretKey: secretKey,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type paymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentIntent registers a card payment for the given amount in the
// currency's minor unit (cents) and returns the intent's client secret.
func (s *StripeService) CreatePaymentIntent(ctx context.Context, amountMinor int64) (string, error) {
	if amountMinor <= 0 {
		return "", errors.New("amount must be positive")
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", "usd")
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(s.secretKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach payment provider: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read payment provider response: %v", err)
	}

	var intent paymentIntentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return "", fmt.Errorf("unexpected payment provider response: %s", string(body))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if intent.Error != nil && intent.Error.Message != "" {
			return "", errors.New(intent.Error.Message)
		}
		return "", fmt.Errorf("payment provider returned %d", resp.StatusCode)
	}

	if intent.ClientSecret == "" {
		return "", errors.New("payment provider returned no client secret")
	}

	return intent.ClientSecret, nil
}
