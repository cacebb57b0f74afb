package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// EmailService delivers transactional mail through the Resend HTTP API.
type EmailService struct {
	apiKey      string
	fromAddress string
	baseURL     string
	client      *http.Client
}

type SendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func NewEmailService(apiKey, fromAddress, baseURL string) *EmailService {
	return &EmailService{
		apiKey:      apiKey,
		fromAddress: fromAddress,
		baseURL:     baseURL,
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Send posts a message to the provider and returns the provider's response
// body (typically {"id": "..."}), so callers can surface it to the admin UI.
func (s *EmailService) Send(ctx context.Context, to, subject, html string) (map[string]interface{}, error) {
	payload := SendRequest{
		From:    s.fromAddress,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read email response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("email provider returned %d: %s", resp.StatusCode, string(respBody))
	}

	var data map[string]interface{}
	if err := json.Unmarshal(respBody, &data); err != nil {
		// Some providers return an empty body on success.
		data = map[string]interface{}{}
	}

	return data, nil
}

// SendApprovalNotification emails a business customer that their account has
// been approved for wholesale ordering.
func (s *EmailService) SendApprovalNotification(ctx context.Context, to, fullName string) (map[string]interface{}, error) {
	subject := "Your Adey International Market account has been approved"
	html := fmt.Sprintf(`<p>Dear %s,</p>
<p>Your business account at Adey International Market has been approved.
You can now sign in, browse our catalog of Ethiopian heritage products and place orders.</p>
<p>Welcome aboard,<br/>The Adey International Market team</p>`, fullName)

	return s.Send(ctx, to, subject, html)
}
